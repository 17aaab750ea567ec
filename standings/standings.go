// Package standings folds completed matches into a ranked table.
package standings

import (
	"sort"

	"github.com/Dosada05/tournament-league/models"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// Compute returns one Standing per distinct id in entityIDs, ranked by points, then
// goal difference, then goals scored. Remaining ties keep the order in which ids first
// appear in entityIDs; repeated ids are ignored.
//
// Only completed matches whose sides belong to mode and reference two different known
// ids are counted; anything else is skipped. Neither argument is modified.
func Compute(mode models.Mode, entityIDs []string, matches []models.Match) []models.Standing {
	table := make([]models.Standing, 0, len(entityIDs))
	index := make(map[string]int, len(entityIDs))
	for _, id := range entityIDs {
		if _, dup := index[id]; dup {
			continue
		}
		index[id] = len(table)
		table = append(table, models.Standing{ID: id})
	}

	for _, match := range matches {
		if !match.Completed || match.Result == nil || match.Sides == nil || match.Sides.Mode() != mode {
			continue
		}
		side1ID, side2ID := match.Sides.IDs()
		if side1ID == "" || side2ID == "" || side1ID == side2ID {
			continue
		}
		i1, ok1 := index[side1ID]
		i2, ok2 := index[side2ID]
		if !ok1 || !ok2 {
			continue
		}
		record(&table[i1], &table[i2], match.Result.Score1, match.Result.Score2)
	}

	for i := range table {
		table[i].GoalDifference = table[i].GoalsFor - table[i].GoalsAgainst
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})

	return table
}

func record(side1, side2 *models.Standing, score1, score2 int) {
	side1.MatchesPlayed++
	side2.MatchesPlayed++

	side1.GoalsFor += score1
	side1.GoalsAgainst += score2
	side2.GoalsFor += score2
	side2.GoalsAgainst += score1

	switch {
	case score1 > score2:
		side1.Wins++
		side1.Points += pointsForWin
		side2.Losses++
	case score1 < score2:
		side2.Wins++
		side2.Points += pointsForWin
		side1.Losses++
	default:
		side1.Draws++
		side1.Points += pointsForDraw
		side2.Draws++
		side2.Points += pointsForDraw
	}
}

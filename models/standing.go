package models

// Standing is the aggregate record of one competitor or team.
type Standing struct {
	ID             string `json:"id"`
	Points         int    `json:"points"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	MatchesPlayed  int    `json:"matchesPlayed"`
}

// WinRate is wins per match played, 0 when nothing was played.
func (s Standing) WinRate() float64 {
	return perMatch(s.Wins, s.MatchesPlayed)
}

func (s Standing) GoalsPerGame() float64 {
	return perMatch(s.GoalsFor, s.MatchesPlayed)
}

func (s Standing) ConcededPerGame() float64 {
	return perMatch(s.GoalsAgainst, s.MatchesPlayed)
}

func perMatch(value, played int) float64 {
	if played == 0 {
		return 0
	}
	return float64(value) / float64(played)
}

package services

import (
	"context"

	"github.com/Dosada05/tournament-league/models"
)

// Overview is everything a scoreboard needs in one response.
type Overview struct {
	Tournament  TournamentView      `json:"tournament"`
	Competitors []models.Competitor `json:"competitors"`
	Teams       []TeamView          `json:"teams"`
	Matches     []MatchView         `json:"matches"`
	Standings   []StandingView      `json:"standings"`
}

func (s *tournamentService) Standings() []StandingView {
	snapshot := s.read()
	return newStandingViews(snapshot, newNameIndex(snapshot))
}

func (s *tournamentService) Progress() models.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.NewProgress(s.state.Config.Matches)
}

// Overview builds every view from the same snapshot.
func (s *tournamentService) Overview(ctx context.Context) (*Overview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapshot := s.read()
	names := newNameIndex(snapshot)

	matches := make([]MatchView, len(snapshot.Config.Matches))
	for i, m := range snapshot.Config.Matches {
		matches[i] = names.matchView(m)
	}
	overview := &Overview{
		Tournament:  newTournamentView(snapshot),
		Competitors: snapshot.Roster,
		Teams:       newTeamViews(snapshot.Config.Teams, names),
		Matches:     matches,
		Standings:   newStandingViews(snapshot, names),
	}
	if snapshot.Config.Created {
		overview.Competitors = snapshot.Config.Roster
	}
	return overview, nil
}

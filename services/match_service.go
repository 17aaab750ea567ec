package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-league/models"
)

type RecordResultInput struct {
	Score1 *int `json:"score1"`
	Score2 *int `json:"score2"`
}

// ListMatches returns the schedule with resolved names. Round 0 means every round.
func (s *tournamentService) ListMatches(round int) ([]MatchView, error) {
	snapshot := s.read()
	cfg := snapshot.Config
	if round < 0 || (cfg.Created && round > cfg.RoundCount) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRound, round)
	}

	names := newNameIndex(snapshot)
	views := make([]MatchView, 0, len(cfg.Matches))
	for _, m := range cfg.Matches {
		if round != 0 && m.Round != round {
			continue
		}
		views = append(views, names.matchView(m))
	}
	return views, nil
}

// RecordResult sets both scores of a match at once. Entering a result again replaces
// the previous one.
func (s *tournamentService) RecordResult(ctx context.Context, matchID int, input RecordResultInput) (*MatchView, error) {
	if input.Score1 == nil || input.Score2 == nil {
		return nil, ErrScoresRequired
	}
	if *input.Score1 < 0 || *input.Score2 < 0 {
		return nil, fmt.Errorf("%w: got %d and %d", ErrInvalidScore, *input.Score1, *input.Score2)
	}

	var updated models.Match
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if !next.Config.Created {
			return ErrTournamentNotCreated
		}
		idx, ok := next.Config.FindMatch(matchID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrMatchNotFound, matchID)
		}
		updated = next.Config.Matches[idx].WithResult(*input.Score1, *input.Score2)
		next.Config.Matches[idx] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := newNameIndex(next)
	view := names.matchView(updated)
	s.logger.InfoContext(ctx, "Match result recorded",
		slog.Int("match_id", matchID),
		slog.Int("score1", *input.Score1),
		slog.Int("score2", *input.Score2),
	)
	s.events.Publish(EventMatchUpdated, MatchUpdatedPayload{
		Match:     view,
		Standings: newStandingViews(next, names),
		Progress:  models.NewProgress(next.Config.Matches),
	})
	return &view, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Dosada05/tournament-league/models"
)

type AddCompetitorInput struct {
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}

func (s *tournamentService) ListCompetitors() []models.Competitor {
	return s.read().Roster
}

func (s *tournamentService) AddCompetitor(ctx context.Context, input AddCompetitorInput) (*models.Competitor, error) {
	displayName := strings.TrimSpace(input.DisplayName)
	fullName := strings.TrimSpace(input.FullName)
	if displayName == "" || fullName == "" {
		return nil, fmt.Errorf("%w: display name and full name are required", ErrValidationFailed)
	}

	competitor := models.Competitor{
		ID:          s.newID(),
		DisplayName: displayName,
		FullName:    fullName,
	}
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if err := requireNotCreated(next.Config); err != nil {
			return err
		}
		next.Roster = append(next.Roster, competitor)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Competitor registered", slog.String("competitor_id", competitor.ID))
	s.events.Publish(EventCompetitorsUpdated, next.Roster)
	return &competitor, nil
}

// RemoveCompetitor unregisters a competitor together with any team it belongs to.
func (s *tournamentService) RemoveCompetitor(ctx context.Context, competitorID string) error {
	var droppedTeams int
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if err := requireNotCreated(next.Config); err != nil {
			return err
		}
		idx := slices.IndexFunc(next.Roster, func(c models.Competitor) bool { return c.ID == competitorID })
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrCompetitorNotFound, competitorID)
		}
		next.Roster = slices.Delete(next.Roster, idx, idx+1)

		before := len(next.Config.Teams)
		next.Config.Teams = slices.DeleteFunc(next.Config.Teams, func(t models.Team) bool {
			return t.HasMember(competitorID)
		})
		droppedTeams = before - len(next.Config.Teams)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Competitor removed",
		slog.String("competitor_id", competitorID),
		slog.Int("dropped_teams", droppedTeams),
	)
	s.events.Publish(EventCompetitorsUpdated, next.Roster)
	if droppedTeams > 0 {
		s.events.Publish(EventTeamsUpdated, newTeamViews(next.Config.Teams, newNameIndex(next)))
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Dosada05/tournament-league/models"
)

type AddTeamInput struct {
	Name    string `json:"name"`
	MemberA string `json:"memberA"`
	MemberB string `json:"memberB"`
}

func (s *tournamentService) ListTeams() []TeamView {
	snapshot := s.read()
	return newTeamViews(snapshot.Config.Teams, newNameIndex(snapshot))
}

func (s *tournamentService) AddTeam(ctx context.Context, input AddTeamInput) (*TeamView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.MemberA == "" || input.MemberB == "" {
		return nil, fmt.Errorf("%w: team name and both members are required", ErrValidationFailed)
	}
	if input.MemberA == input.MemberB {
		return nil, ErrSameTeamMembers
	}

	team := models.Team{
		ID:      s.newID(),
		Name:    name,
		MemberA: input.MemberA,
		MemberB: input.MemberB,
	}
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if err := requireNotCreated(next.Config); err != nil {
			return err
		}
		for _, memberID := range []string{team.MemberA, team.MemberB} {
			if !slices.ContainsFunc(next.Roster, func(c models.Competitor) bool { return c.ID == memberID }) {
				return fmt.Errorf("%w: %s", ErrCompetitorNotFound, memberID)
			}
			if slices.ContainsFunc(next.Config.Teams, func(t models.Team) bool { return t.HasMember(memberID) }) {
				return fmt.Errorf("%w: %s", ErrCompetitorAlreadyInTeam, memberID)
			}
		}
		next.Config.Teams = append(next.Config.Teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := newNameIndex(next)
	s.logger.InfoContext(ctx, "Team added", slog.String("team_id", team.ID))
	s.events.Publish(EventTeamsUpdated, newTeamViews(next.Config.Teams, names))
	view := names.teamView(team)
	return &view, nil
}

func (s *tournamentService) RemoveTeam(ctx context.Context, teamID string) error {
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if err := requireNotCreated(next.Config); err != nil {
			return err
		}
		idx := slices.IndexFunc(next.Config.Teams, func(t models.Team) bool { return t.ID == teamID })
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
		}
		next.Config.Teams = slices.Delete(next.Config.Teams, idx, idx+1)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Team removed", slog.String("team_id", teamID))
	s.events.Publish(EventTeamsUpdated, newTeamViews(next.Config.Teams, newNameIndex(next)))
	return nil
}

// GenerateRandomTeams draws teams from the current roster, replacing any earlier teams.
func (s *tournamentService) GenerateRandomTeams(ctx context.Context) ([]TeamView, error) {
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if err := requireNotCreated(next.Config); err != nil {
			return err
		}
		if err := validateRandomDrawSize(len(next.Roster)); err != nil {
			return err
		}
		teams, err := s.drawTeams(next.Roster)
		if err != nil {
			return err
		}
		next.Config.Teams = teams
		return nil
	})
	if err != nil {
		return nil, err
	}

	views := newTeamViews(next.Config.Teams, newNameIndex(next))
	s.logger.InfoContext(ctx, "Random teams drawn", slog.Int("teams", len(views)))
	s.events.Publish(EventTeamsUpdated, views)
	return views, nil
}

// validateTeamSet checks that every member is registered and appears in one team only.
func validateTeamSet(teams []models.Team, roster []models.Competitor) error {
	err := models.ValidateTeams(teams, roster)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrTeamSameMembers):
		return fmt.Errorf("%w: %w", ErrSameTeamMembers, err)
	case errors.Is(err, models.ErrTeamUnknownMember):
		return fmt.Errorf("%w: %w", ErrCompetitorNotFound, err)
	case errors.Is(err, models.ErrTeamSharedMember):
		return fmt.Errorf("%w: %w", ErrCompetitorAlreadyInTeam, err)
	default:
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
}

// teamsCoverRoster reports whether teams pair up every registered competitor exactly once.
func teamsCoverRoster(teams []models.Team, roster []models.Competitor) bool {
	if len(teams)*2 != len(roster) {
		return false
	}
	return validateTeamSet(teams, roster) == nil
}

package models

import (
	"errors"
	"fmt"
)

var (
	ErrTeamSameMembers   = errors.New("team members must be different")
	ErrTeamUnknownMember = errors.New("team member is not registered")
	ErrTeamSharedMember  = errors.New("competitor is in more than one team")
	ErrTeamDuplicateID   = errors.New("team id is used more than once")
)

// Team is a doubles pair. MemberA and MemberB are Competitor ids and never equal.
type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	MemberA string `json:"memberA"`
	MemberB string `json:"memberB"`
}

func (t Team) HasMember(competitorID string) bool {
	return t.MemberA == competitorID || t.MemberB == competitorID
}

// ValidateTeams checks that team ids are unique, that both members of every team are
// distinct registered competitors and that nobody plays in two teams.
func ValidateTeams(teams []Team, roster []Competitor) error {
	registered := make(map[string]struct{}, len(roster))
	for _, c := range roster {
		registered[c.ID] = struct{}{}
	}
	ids := make(map[string]struct{}, len(teams))
	seen := make(map[string]string, len(teams)*2)
	for _, t := range teams {
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("%w: %s", ErrTeamDuplicateID, t.ID)
		}
		ids[t.ID] = struct{}{}

		if t.MemberA == t.MemberB {
			return fmt.Errorf("%w: team %s", ErrTeamSameMembers, t.ID)
		}
		for _, memberID := range []string{t.MemberA, t.MemberB} {
			if _, ok := registered[memberID]; !ok {
				return fmt.Errorf("%w: %s in team %s", ErrTeamUnknownMember, memberID, t.ID)
			}
			if other, dup := seen[memberID]; dup {
				return fmt.Errorf("%w: %s is in teams %s and %s", ErrTeamSharedMember, memberID, other, t.ID)
			}
			seen[memberID] = t.ID
		}
	}
	return nil
}

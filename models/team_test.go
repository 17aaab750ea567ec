package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTeams(t *testing.T) {
	roster := []Competitor{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	tests := []struct {
		name    string
		teams   []Team
		wantErr error
	}{
		{"no teams", nil, nil},
		{"two pairs", []Team{{ID: "t1", MemberA: "a", MemberB: "b"}, {ID: "t2", MemberA: "c", MemberB: "d"}}, nil},
		{"same member twice", []Team{{ID: "t1", MemberA: "a", MemberB: "a"}}, ErrTeamSameMembers},
		{"unregistered member", []Team{{ID: "t1", MemberA: "a", MemberB: "zed"}}, ErrTeamUnknownMember},
		{"member in two teams", []Team{{ID: "t1", MemberA: "a", MemberB: "b"}, {ID: "t2", MemberA: "c", MemberB: "a"}}, ErrTeamSharedMember},
		{"repeated team id", []Team{{ID: "t1", MemberA: "a", MemberB: "b"}, {ID: "t1", MemberA: "c", MemberB: "d"}}, ErrTeamDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeams(tt.teams, roster)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

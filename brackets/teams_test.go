package brackets

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-league/models"
)

func competitors(n int) []models.Competitor {
	out := make([]models.Competitor, n)
	for i := range out {
		out[i] = models.Competitor{
			ID:          fmt.Sprintf("c%d", i+1),
			DisplayName: fmt.Sprintf("Player %d", i+1),
			FullName:    fmt.Sprintf("Player Number %d", i+1),
		}
	}
	return out
}

func TestRandomTeams_SixCompetitors(t *testing.T) {
	roster := competitors(6)
	original := competitors(6)

	teams, err := RandomTeams(roster, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	require.Len(t, teams, 3)

	members := make(map[string]int)
	for i, team := range teams {
		assert.Equal(t, fmt.Sprintf("team-%d", i+1), team.ID)
		assert.Equal(t, fmt.Sprintf("Team %d", i+1), team.Name)
		assert.NotEqual(t, team.MemberA, team.MemberB)
		members[team.MemberA]++
		members[team.MemberB]++
	}

	assert.Len(t, members, 6)
	for _, c := range roster {
		assert.Equal(t, 1, members[c.ID], "competitor %s", c.ID)
	}
	assert.Equal(t, original, roster, "roster was reordered in place")
}

func TestRandomTeams_DeterministicForSeed(t *testing.T) {
	roster := competitors(8)

	first, err := RandomTeams(roster, rand.New(rand.NewPCG(42, 7)))
	require.NoError(t, err)
	second, err := RandomTeams(roster, rand.New(rand.NewPCG(42, 7)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRandomTeams_Rejects(t *testing.T) {
	for _, n := range []int{0, 2, 3, 5, 7} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			teams, err := RandomTeams(competitors(n), rand.New(rand.NewPCG(1, 1)))
			assert.ErrorIs(t, err, ErrOddCompetitorCount)
			assert.Nil(t, teams)
		})
	}
}

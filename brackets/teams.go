package brackets

import (
	"fmt"
	"math/rand/v2"

	"github.com/Dosada05/tournament-league/models"
)

// RandomTeams shuffles a copy of competitors with rng and pairs them up in order:
// (0,1), (2,3), ... Teams are named "Team N" and get the id "team-N", N starting at 1.
func RandomTeams(competitors []models.Competitor, rng *rand.Rand) ([]models.Team, error) {
	n := len(competitors)
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("%w (found %d)", ErrOddCompetitorCount, n)
	}

	shuffled := make([]models.Competitor, n)
	copy(shuffled, competitors)
	rng.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	teams := make([]models.Team, 0, n/2)
	for i := 0; i < n; i += 2 {
		number := i/2 + 1
		teams = append(teams, models.Team{
			ID:      fmt.Sprintf("team-%d", number),
			Name:    fmt.Sprintf("Team %d", number),
			MemberA: shuffled[i].ID,
			MemberB: shuffled[i+1].ID,
		})
	}
	return teams, nil
}

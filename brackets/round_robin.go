package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-league/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateFixtures builds the whole schedule. Every round pairs each entity with every
// entity after it in roster order; the round-trip format adds the reversed leg right
// after the first one, in the same round. Match ids count up from 1 across all rounds.
func (g *RoundRobinGenerator) GenerateFixtures(params GenerateFixturesParams) ([]models.Match, error) {
	ids := params.EntityIDs
	n := len(ids)

	if n < 2 {
		return nil, fmt.Errorf("RoundRobinGenerator: %w (found %d)", ErrNotEnoughEntities, n)
	}
	if params.RoundCount < 1 {
		return nil, fmt.Errorf("RoundRobinGenerator: %w (got %d)", ErrInvalidRoundCount, params.RoundCount)
	}
	if !params.MatchFormat.Valid() {
		return nil, fmt.Errorf("RoundRobinGenerator: %w %q", ErrInvalidMatchFormat, params.MatchFormat)
	}
	if !params.Mode.Valid() {
		return nil, fmt.Errorf("RoundRobinGenerator: %w %q", ErrInvalidMode, params.Mode)
	}
	size, err := ScheduleSize(n, params.RoundCount, params.MatchFormat)
	if err != nil {
		return nil, fmt.Errorf("RoundRobinGenerator: %w", err)
	}
	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("RoundRobinGenerator: %w (%q repeated)", ErrDuplicateEntity, id)
		}
		seen[id] = struct{}{}
	}

	matches := make([]models.Match, 0, size)
	matchID := 0

	for round := 1; round <= params.RoundCount; round++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				matchID++
				matches = append(matches, models.Match{
					ID:    matchID,
					Round: round,
					Sides: newSides(params.Mode, ids[i], ids[j]),
				})

				if params.MatchFormat == models.MatchFormatRoundTrip {
					matchID++
					matches = append(matches, models.Match{
						ID:    matchID,
						Round: round,
						Sides: newSides(params.Mode, ids[j], ids[i]),
					})
				}
			}
		}
	}

	return matches, nil
}

// ExpectedMatchCount is the closed-form schedule length for n entities. It is 0 when
// GenerateFixtures would reject the request for its size.
func ExpectedMatchCount(n, roundCount int, format models.MatchFormat) int {
	size, err := ScheduleSize(n, roundCount, format)
	if err != nil {
		return 0
	}
	return size
}

// ScheduleSize returns n(n-1)/2 pairings times legs times rounds, or ErrTooManyMatches
// when that exceeds MaxMatchCount. The product is never computed past the limit.
func ScheduleSize(n, roundCount int, format models.MatchFormat) (int, error) {
	if n < 2 || roundCount < 1 {
		return 0, nil
	}
	if n-1 > MaxMatchCount {
		return 0, fmt.Errorf("%w: %d entities", ErrTooManyMatches, n)
	}
	perRound := uint64(n) * uint64(n-1) / 2 * uint64(format.LegsPerPairing())
	if perRound > MaxMatchCount || uint64(roundCount) > MaxMatchCount/perRound {
		return 0, fmt.Errorf("%w: %d entities over %d rounds, limit %d", ErrTooManyMatches, n, roundCount, MaxMatchCount)
	}
	return int(perRound) * roundCount, nil
}

func newSides(mode models.Mode, side1, side2 string) models.MatchSides {
	if mode == models.ModeDoubles {
		return models.TeamSides{Team1: side1, Team2: side2}
	}
	return models.IndividualSides{Competitor1: side1, Competitor2: side2}
}

package brackets

import (
	"errors"

	"github.com/Dosada05/tournament-league/models"
)

var (
	ErrNotEnoughEntities  = errors.New("at least two competitors or teams are required")
	ErrInvalidRoundCount  = errors.New("round count must be at least 1")
	ErrInvalidMatchFormat = errors.New("unknown match format")
	ErrInvalidMode        = errors.New("unknown tournament mode")
	ErrOddCompetitorCount = errors.New("random teams need an even number of competitors, at least four")
	ErrDuplicateEntity    = errors.New("entity ids must be unique")
	ErrTooManyMatches     = errors.New("schedule would exceed the match limit")
)

// MaxMatchCount caps the length of one schedule.
const MaxMatchCount = 50_000

// GenerateFixturesParams describes one schedule request. EntityIDs are competitor ids in
// individual mode and team ids in doubles mode, in roster order.
type GenerateFixturesParams struct {
	EntityIDs   []string
	RoundCount  int
	MatchFormat models.MatchFormat
	Mode        models.Mode
}

type FixtureGenerator interface {
	GenerateFixtures(params GenerateFixturesParams) ([]models.Match, error)

	GetName() string
}

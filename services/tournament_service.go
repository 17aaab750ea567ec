package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/tournament-league/brackets"
	"github.com/Dosada05/tournament-league/models"
	"github.com/Dosada05/tournament-league/storage"
)

type TournamentService interface {
	Load(ctx context.Context) error

	Tournament() TournamentView
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*TournamentView, error)
	CreateTournament(ctx context.Context) (*TournamentView, error)
	Reset(ctx context.Context) error
	PreviewMatchCount() int

	ListCompetitors() []models.Competitor
	AddCompetitor(ctx context.Context, input AddCompetitorInput) (*models.Competitor, error)
	RemoveCompetitor(ctx context.Context, competitorID string) error

	ListTeams() []TeamView
	AddTeam(ctx context.Context, input AddTeamInput) (*TeamView, error)
	RemoveTeam(ctx context.Context, teamID string) error
	GenerateRandomTeams(ctx context.Context) ([]TeamView, error)

	ListMatches(round int) ([]MatchView, error)
	RecordResult(ctx context.Context, matchID int, input RecordResultInput) (*MatchView, error)

	Standings() []StandingView
	Progress() models.Progress
	Overview(ctx context.Context) (*Overview, error)

	Export(ctx context.Context) (*ExportFile, error)
	ArchiveExport(ctx context.Context) (*storage.UploadResult, error)
	Import(ctx context.Context, data []byte) (*TournamentView, error)
}

type UpdateSettingsInput struct {
	RoundCount         *int                       `json:"roundCount"`
	Mode               *models.Mode               `json:"mode"`
	TeamAssignmentMode *models.TeamAssignmentMode `json:"teamAssignmentMode"`
	MatchFormat        *models.MatchFormat        `json:"matchFormat"`
}

type tournamentService struct {
	mu    sync.RWMutex
	state models.Snapshot

	store     storage.SnapshotStore
	uploader  storage.FileUploader
	generator brackets.FixtureGenerator
	events    EventPublisher
	rng       *rand.Rand
	logger    *slog.Logger

	newID func() string
	now   func() time.Time
}

// NewTournamentService wires the service. uploader may be nil, in which case export
// archiving is unavailable; events may be nil.
func NewTournamentService(
	store storage.SnapshotStore,
	uploader storage.FileUploader,
	events EventPublisher,
	rng *rand.Rand,
	logger *slog.Logger,
) TournamentService {
	if events == nil {
		events = noopPublisher{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		state:     models.NewSnapshot(),
		store:     store,
		uploader:  uploader,
		generator: brackets.NewRoundRobinGenerator(),
		events:    events,
		rng:       rng,
		logger:    logger.With("component", "tournament_service"),
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Load replaces the in-memory state with the stored snapshot. A store without a
// snapshot leaves the initial state in place.
func (s *tournamentService) Load(ctx context.Context) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			s.logger.InfoContext(ctx, "No stored snapshot, starting empty")
			return nil
		}
		return fmt.Errorf("failed to load tournament state: %w", err)
	}

	s.mu.Lock()
	s.state = snapshot
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Tournament state loaded",
		slog.Int("competitors", len(snapshot.Roster)),
		slog.Bool("created", snapshot.Config.Created),
		slog.Int("matches", len(snapshot.Config.Matches)),
	)
	return nil
}

// read returns a private copy of the current state.
func (s *tournamentService) read() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// mutate applies fn to a copy of the state, persists the copy and only then makes it
// current. When fn or the store fails the current state is left as it was.
func (s *tournamentService) mutate(ctx context.Context, fn func(next *models.Snapshot) error) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist snapshot", slog.Any("error", err))
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	s.state = next
	return next.Clone(), nil
}

func requireNotCreated(cfg models.TournamentConfig) error {
	if cfg.Created {
		return ErrTournamentAlreadyCreated
	}
	return nil
}

func (s *tournamentService) Tournament() TournamentView {
	return newTournamentView(s.read())
}

func (s *tournamentService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*TournamentView, error) {
	if input.RoundCount != nil && (*input.RoundCount < 1 || *input.RoundCount > models.MaxRoundCount) {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidRoundCount, models.MaxRoundCount, *input.RoundCount)
	}
	if input.Mode != nil && !input.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, *input.Mode)
	}
	if input.TeamAssignmentMode != nil && !input.TeamAssignmentMode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTeamAssignmentMode, *input.TeamAssignmentMode)
	}
	if input.MatchFormat != nil && !input.MatchFormat.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMatchFormat, *input.MatchFormat)
	}

	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		if err := requireNotCreated(next.Config); err != nil {
			return err
		}
		if input.RoundCount != nil {
			next.Config.RoundCount = *input.RoundCount
		}
		if input.Mode != nil {
			next.Config.Mode = *input.Mode
		}
		if input.TeamAssignmentMode != nil {
			next.Config.TeamAssignmentMode = *input.TeamAssignmentMode
		}
		if input.MatchFormat != nil {
			next.Config.MatchFormat = *input.MatchFormat
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := newTournamentView(next)
	s.events.Publish(EventSettingsUpdated, view)
	return &view, nil
}

// CreateTournament freezes the roster and teams and generates the full schedule.
func (s *tournamentService) CreateTournament(ctx context.Context) (*TournamentView, error) {
	next, err := s.mutate(ctx, func(next *models.Snapshot) error {
		cfg := &next.Config
		if err := requireNotCreated(*cfg); err != nil {
			return err
		}

		roster := next.Roster
		teams := cfg.Teams
		if cfg.Mode == models.ModeDoubles {
			var err error
			teams, err = s.teamsForCreation(*next)
			if err != nil {
				return err
			}
		} else if len(roster) < 2 {
			return fmt.Errorf("%w: individual mode needs at least 2, found %d", ErrNotEnoughCompetitors, len(roster))
		}

		cfg.Roster = roster
		cfg.Teams = teams
		matches, err := s.generator.GenerateFixtures(brackets.GenerateFixturesParams{
			EntityIDs:   cfg.EntityIDs(),
			RoundCount:  cfg.RoundCount,
			MatchFormat: cfg.MatchFormat,
			Mode:        cfg.Mode,
		})
		if errors.Is(err, brackets.ErrTooManyMatches) {
			return fmt.Errorf("%w: %w", ErrScheduleTooLarge, err)
		}
		if err != nil {
			return fmt.Errorf("failed to generate fixtures with %s: %w", s.generator.GetName(), err)
		}
		cfg.Matches = matches
		cfg.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Tournament created",
		slog.String("mode", string(next.Config.Mode)),
		slog.String("match_format", string(next.Config.MatchFormat)),
		slog.Int("round_count", next.Config.RoundCount),
		slog.Int("matches", len(next.Config.Matches)),
	)
	view := newTournamentView(next)
	s.events.Publish(EventTournamentCreated, view)
	return &view, nil
}

// teamsForCreation returns the team list a doubles tournament starts with. Random mode
// reuses an earlier draw only when it still covers the whole roster; otherwise it draws.
func (s *tournamentService) teamsForCreation(snapshot models.Snapshot) ([]models.Team, error) {
	cfg := snapshot.Config
	if cfg.TeamAssignmentMode == models.TeamAssignmentPredefined {
		if len(cfg.Teams) < 2 {
			return nil, fmt.Errorf("%w: found %d", ErrNotEnoughTeams, len(cfg.Teams))
		}
		if err := validateTeamSet(cfg.Teams, snapshot.Roster); err != nil {
			return nil, err
		}
		return cfg.Teams, nil
	}

	if err := validateRandomDrawSize(len(snapshot.Roster)); err != nil {
		return nil, err
	}
	if len(cfg.Teams) > 0 && teamsCoverRoster(cfg.Teams, snapshot.Roster) {
		return cfg.Teams, nil
	}
	return s.drawTeams(snapshot.Roster)
}

func (s *tournamentService) drawTeams(roster []models.Competitor) ([]models.Team, error) {
	teams, err := brackets.RandomTeams(roster, s.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOddCompetitorCount, err)
	}
	return teams, nil
}

func validateRandomDrawSize(n int) error {
	if n < 4 {
		return fmt.Errorf("%w: random doubles need at least 4, found %d", ErrNotEnoughCompetitors, n)
	}
	if n%2 != 0 {
		return fmt.Errorf("%w: found %d", ErrOddCompetitorCount, n)
	}
	return nil
}

func (s *tournamentService) Reset(ctx context.Context) error {
	_, err := s.mutate(ctx, func(next *models.Snapshot) error {
		*next = models.NewSnapshot()
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Tournament reset")
	s.events.Publish(EventTournamentReset, nil)
	return nil
}

func (s *tournamentService) PreviewMatchCount() int {
	return previewMatchCount(s.read())
}

// previewMatchCount is the number of matches CreateTournament would generate with the
// current registrations, or 0 when creation would be rejected. Once created it is the
// length of the schedule.
func previewMatchCount(snapshot models.Snapshot) int {
	cfg := snapshot.Config
	if cfg.Created {
		return len(cfg.Matches)
	}

	n := len(snapshot.Roster)
	if cfg.Mode == models.ModeDoubles {
		if cfg.TeamAssignmentMode == models.TeamAssignmentPredefined {
			n = len(cfg.Teams)
		} else {
			if validateRandomDrawSize(n) != nil {
				return 0
			}
			n /= 2
		}
	}
	return brackets.ExpectedMatchCount(n, cfg.RoundCount, cfg.MatchFormat)
}

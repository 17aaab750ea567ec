package services

import "errors"

// Errors shared by the services and mapped to HTTP statuses by the handlers.
var (
	// Validation and business rules
	ErrValidationFailed          = errors.New("validation failed")
	ErrNotEnoughCompetitors      = errors.New("not enough competitors")
	ErrOddCompetitorCount        = errors.New("an even number of competitors, at least four, is required for doubles")
	ErrNotEnoughTeams            = errors.New("at least two teams are required")
	ErrCompetitorAlreadyInTeam   = errors.New("competitor is already in another team")
	ErrSameTeamMembers           = errors.New("team members must be different")
	ErrScoresRequired            = errors.New("both scores are required")
	ErrInvalidScore              = errors.New("scores must be non-negative whole numbers")
	ErrInvalidRoundCount         = errors.New("round count is out of range")
	ErrInvalidMode               = errors.New("unknown tournament mode")
	ErrInvalidMatchFormat        = errors.New("unknown match format")
	ErrInvalidTeamAssignmentMode = errors.New("unknown team assignment mode")
	ErrInvalidRound              = errors.New("round is outside the tournament")
	ErrScheduleTooLarge          = errors.New("schedule has too many matches")

	// State conflicts
	ErrTournamentAlreadyCreated = errors.New("tournament has already been created")
	ErrTournamentNotCreated     = errors.New("tournament has not been created yet")

	// Lookups
	ErrMatchNotFound      = errors.New("match not found")
	ErrCompetitorNotFound = errors.New("competitor not found")
	ErrTeamNotFound       = errors.New("team not found")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid name or password")

	// Infrastructure
	ErrPersistenceFailed  = errors.New("failed to persist tournament state")
	ErrArchiveUnavailable = errors.New("export archive storage is not configured")
)

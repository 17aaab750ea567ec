package models

// Mode selects what competes in a tournament: single competitors or two-person teams.
type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeDoubles    Mode = "doubles"
)

func (m Mode) Valid() bool {
	return m == ModeIndividual || m == ModeDoubles
}

// TeamAssignmentMode says how doubles teams are formed.
type TeamAssignmentMode string

const (
	TeamAssignmentRandom     TeamAssignmentMode = "random"
	TeamAssignmentPredefined TeamAssignmentMode = "predefined"
)

func (m TeamAssignmentMode) Valid() bool {
	return m == TeamAssignmentRandom || m == TeamAssignmentPredefined
}

// MatchFormat defines how many legs every pairing plays inside one round.
type MatchFormat string

const (
	MatchFormatSingle    MatchFormat = "single"    // one match per pairing
	MatchFormatRoundTrip MatchFormat = "roundTrip" // home and away legs
)

func (f MatchFormat) Valid() bool {
	return f == MatchFormatSingle || f == MatchFormatRoundTrip
}

// LegsPerPairing returns 2 for round-trip and 1 otherwise.
func (f MatchFormat) LegsPerPairing() int {
	if f == MatchFormatRoundTrip {
		return 2
	}
	return 1
}

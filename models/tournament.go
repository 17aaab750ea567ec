package models

import "slices"

// MaxRoundCount is the largest RoundCount a tournament accepts.
const MaxRoundCount = 100

// TournamentConfig is the tournament setup. Once Created is true the roster, teams and
// match list are frozen; only match results change until a reset.
type TournamentConfig struct {
	RoundCount         int                `json:"roundCount"`
	Mode               Mode               `json:"mode"`
	TeamAssignmentMode TeamAssignmentMode `json:"teamAssignmentMode"`
	MatchFormat        MatchFormat        `json:"matchFormat"`
	Created            bool               `json:"created"`

	Roster  []Competitor `json:"roster"` // frozen copy taken at creation
	Teams   []Team       `json:"teams"`
	Matches []Match      `json:"matches"`
}

// Snapshot is everything that gets persisted: the live registration list and the config.
type Snapshot struct {
	Roster []Competitor     `json:"roster"`
	Config TournamentConfig `json:"config"`
}

func DefaultConfig() TournamentConfig {
	return TournamentConfig{
		RoundCount:         1,
		Mode:               ModeIndividual,
		TeamAssignmentMode: TeamAssignmentRandom,
		MatchFormat:        MatchFormatRoundTrip,
		Roster:             []Competitor{},
		Teams:              []Team{},
		Matches:            []Match{},
	}
}

func NewSnapshot() Snapshot {
	return Snapshot{Roster: []Competitor{}, Config: DefaultConfig()}
}

// Clone copies every slice so the result can be modified without touching s.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Roster = cloneSlice(s.Roster)
	out.Config.Roster = cloneSlice(s.Config.Roster)
	out.Config.Teams = cloneSlice(s.Config.Teams)
	out.Config.Matches = cloneSlice(s.Config.Matches)
	return out
}

// EntityIDs returns the ids that compete under the configured mode, in roster order.
func (c TournamentConfig) EntityIDs() []string {
	if c.Mode == ModeDoubles {
		ids := make([]string, len(c.Teams))
		for i, t := range c.Teams {
			ids[i] = t.ID
		}
		return ids
	}
	ids := make([]string, len(c.Roster))
	for i, p := range c.Roster {
		ids[i] = p.ID
	}
	return ids
}

func (c TournamentConfig) FindMatch(id int) (int, bool) {
	idx := slices.IndexFunc(c.Matches, func(m Match) bool { return m.ID == id })
	return idx, idx >= 0
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

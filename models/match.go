package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMatch is returned when a match record breaks the model rules while decoding.
var ErrInvalidMatch = errors.New("invalid match record")

// MatchSides identifies the two opponents of a match. The concrete type is
// IndividualSides or TeamSides depending on the tournament mode.
type MatchSides interface {
	Mode() Mode
	IDs() (side1, side2 string)
}

type IndividualSides struct {
	Competitor1 string
	Competitor2 string
}

func (s IndividualSides) Mode() Mode { return ModeIndividual }
func (s IndividualSides) IDs() (string, string) { return s.Competitor1, s.Competitor2 }

type TeamSides struct {
	Team1 string
	Team2 string
}

func (s TeamSides) Mode() Mode { return ModeDoubles }
func (s TeamSides) IDs() (string, string) { return s.Team1, s.Team2 }

// MatchResult holds both scores. It is replaced as a whole and never mutated in place,
// so matches copied by value can share it.
type MatchResult struct {
	Score1 int
	Score2 int
}

type Match struct {
	ID        int
	Round     int
	Sides     MatchSides
	Result    *MatchResult
	Completed bool
}

// WithResult returns a completed copy of m carrying the given scores.
func (m Match) WithResult(score1, score2 int) Match {
	m.Result = &MatchResult{Score1: score1, Score2: score2}
	m.Completed = true
	return m
}

type matchJSON struct {
	ID        int    `json:"id"`
	Round     int    `json:"round"`
	Player1ID string `json:"player1Id,omitempty"`
	Player2ID string `json:"player2Id,omitempty"`
	Team1ID   string `json:"team1Id,omitempty"`
	Team2ID   string `json:"team2Id,omitempty"`
	Score1    *int   `json:"score1,omitempty"`
	Score2    *int   `json:"score2,omitempty"`
	Completed bool   `json:"completed"`
}

func (m Match) MarshalJSON() ([]byte, error) {
	out := matchJSON{ID: m.ID, Round: m.Round, Completed: m.Completed}
	switch s := m.Sides.(type) {
	case IndividualSides:
		out.Player1ID, out.Player2ID = s.Competitor1, s.Competitor2
	case TeamSides:
		out.Team1ID, out.Team2ID = s.Team1, s.Team2
	case nil:
	default:
		return nil, fmt.Errorf("match %d: unsupported sides type %T", m.ID, m.Sides)
	}
	if m.Result != nil {
		s1, s2 := m.Result.Score1, m.Result.Score2
		out.Score1, out.Score2 = &s1, &s2
	}
	return json.Marshal(out)
}

func (m *Match) UnmarshalJSON(data []byte) error {
	var in matchJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	hasPlayers := in.Player1ID != "" || in.Player2ID != ""
	hasTeams := in.Team1ID != "" || in.Team2ID != ""

	var sides MatchSides
	switch {
	case hasPlayers && hasTeams:
		return fmt.Errorf("%w: match %d references both players and teams", ErrInvalidMatch, in.ID)
	case hasPlayers:
		sides = IndividualSides{Competitor1: in.Player1ID, Competitor2: in.Player2ID}
	case hasTeams:
		sides = TeamSides{Team1: in.Team1ID, Team2: in.Team2ID}
	default:
		return fmt.Errorf("%w: match %d has no sides", ErrInvalidMatch, in.ID)
	}

	if (in.Score1 == nil) != (in.Score2 == nil) {
		return fmt.Errorf("%w: match %d has only one score", ErrInvalidMatch, in.ID)
	}

	var result *MatchResult
	if in.Score1 != nil {
		if *in.Score1 < 0 || *in.Score2 < 0 {
			return fmt.Errorf("%w: match %d has a negative score", ErrInvalidMatch, in.ID)
		}
		if !in.Completed {
			return fmt.Errorf("%w: match %d has scores but is not completed", ErrInvalidMatch, in.ID)
		}
		result = &MatchResult{Score1: *in.Score1, Score2: *in.Score2}
	} else if in.Completed {
		return fmt.Errorf("%w: match %d is completed without scores", ErrInvalidMatch, in.ID)
	}

	*m = Match{
		ID:        in.ID,
		Round:     in.Round,
		Sides:     sides,
		Result:    result,
		Completed: in.Completed,
	}
	return nil
}

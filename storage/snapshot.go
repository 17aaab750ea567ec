package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Dosada05/tournament-league/brackets"
	"github.com/Dosada05/tournament-league/models"
)

// FormatVersion tags every exported document.
const FormatVersion = "1.0"

var (
	ErrInvalidSnapshot   = errors.New("invalid file: format not recognized")
	ErrMalformedSnapshot = errors.New("malformed file: content is not valid JSON")
)

// Document is the portable form of a snapshot.
type Document struct {
	Roster     []models.Competitor     `json:"roster"`
	Config     models.TournamentConfig `json:"config"`
	ExportedAt time.Time               `json:"exportedAt"`
	Version    string                  `json:"version"`
}

// Encode wraps the snapshot into an indented Document stamped with at.
func Encode(s models.Snapshot, at time.Time) ([]byte, error) {
	s = s.Clone()
	doc := Document{
		Roster:     s.Roster,
		Config:     s.Config,
		ExportedAt: at.UTC(),
		Version:    FormatVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a Document. A body that is not JSON yields ErrMalformedSnapshot; a JSON
// body without both roster and config, or with unknown settings, yields ErrInvalidSnapshot.
func Decode(data []byte) (models.Snapshot, error) {
	var doc struct {
		Roster *[]models.Competitor     `json:"roster"`
		Config *models.TournamentConfig `json:"config"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if doc.Roster == nil || doc.Config == nil {
		return models.Snapshot{}, fmt.Errorf("%w: roster and config are required", ErrInvalidSnapshot)
	}

	s := models.Snapshot{Roster: *doc.Roster, Config: *doc.Config}
	if err := validateSnapshot(s); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return s.Clone(), nil
}

// ExportFileName is the suggested download name for an export taken at the given time.
func ExportFileName(at time.Time) string {
	return fmt.Sprintf("tournament_%s.json", at.UTC().Format(time.DateOnly))
}

func validateSnapshot(s models.Snapshot) error {
	cfg := s.Config
	if cfg.RoundCount < 1 || cfg.RoundCount > models.MaxRoundCount {
		return fmt.Errorf("round count must be between 1 and %d, got %d", models.MaxRoundCount, cfg.RoundCount)
	}
	if !cfg.Mode.Valid() {
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if !cfg.TeamAssignmentMode.Valid() {
		return fmt.Errorf("unknown team assignment mode %q", cfg.TeamAssignmentMode)
	}
	if !cfg.MatchFormat.Valid() {
		return fmt.Errorf("unknown match format %q", cfg.MatchFormat)
	}
	if err := uniqueCompetitors(s.Roster); err != nil {
		return err
	}
	if err := uniqueCompetitors(cfg.Roster); err != nil {
		return err
	}

	roster := s.Roster
	if cfg.Created {
		roster = cfg.Roster
	}
	if err := models.ValidateTeams(cfg.Teams, roster); err != nil {
		return err
	}
	return validateMatches(cfg)
}

func uniqueCompetitors(roster []models.Competitor) error {
	seen := make(map[string]struct{}, len(roster))
	for _, c := range roster {
		if c.ID == "" {
			return errors.New("competitor without id")
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("competitor %s is listed twice", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// validateMatches requires unique ids, two different sides that exist in the frozen
// roster or teams and rounds inside the tournament. A tournament that was not created
// has no matches.
func validateMatches(cfg models.TournamentConfig) error {
	if !cfg.Created {
		if len(cfg.Matches) > 0 {
			return fmt.Errorf("%d matches in a tournament that was not created", len(cfg.Matches))
		}
		return nil
	}
	if len(cfg.Matches) > brackets.MaxMatchCount {
		return fmt.Errorf("%d matches exceed the limit of %d", len(cfg.Matches), brackets.MaxMatchCount)
	}

	entities := make(map[string]struct{})
	for _, id := range cfg.EntityIDs() {
		entities[id] = struct{}{}
	}
	ids := make(map[int]struct{}, len(cfg.Matches))
	for _, m := range cfg.Matches {
		if m.ID < 1 {
			return fmt.Errorf("match id must be positive, got %d", m.ID)
		}
		if _, dup := ids[m.ID]; dup {
			return fmt.Errorf("match id %d is used more than once", m.ID)
		}
		ids[m.ID] = struct{}{}

		if m.Sides.Mode() != cfg.Mode {
			return fmt.Errorf("match %d does not belong to %s mode", m.ID, cfg.Mode)
		}
		if m.Round < 1 || m.Round > cfg.RoundCount {
			return fmt.Errorf("match %d is in round %d, outside 1..%d", m.ID, m.Round, cfg.RoundCount)
		}
		side1, side2 := m.Sides.IDs()
		if side1 == side2 {
			return fmt.Errorf("match %d has %s on both sides", m.ID, side1)
		}
		for _, id := range []string{side1, side2} {
			if _, ok := entities[id]; !ok {
				return fmt.Errorf("match %d references unknown %s", m.ID, id)
			}
		}
	}
	return nil
}

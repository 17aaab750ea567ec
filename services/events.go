package services

import "github.com/Dosada05/tournament-league/models"

// Event types pushed to live clients after a successful change.
const (
	EventCompetitorsUpdated = "COMPETITORS_UPDATED"
	EventTeamsUpdated       = "TEAMS_UPDATED"
	EventSettingsUpdated    = "SETTINGS_UPDATED"
	EventTournamentCreated  = "TOURNAMENT_CREATED"
	EventMatchUpdated       = "MATCH_UPDATED"
	EventTournamentReset    = "TOURNAMENT_RESET"
	EventTournamentImported = "TOURNAMENT_IMPORTED"
)

// EventPublisher delivers events to whoever is listening. Publish must not block.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

// MatchUpdatedPayload accompanies EventMatchUpdated.
type MatchUpdatedPayload struct {
	Match     MatchView       `json:"match"`
	Standings []StandingView  `json:"standings"`
	Progress  models.Progress `json:"progress"`
}

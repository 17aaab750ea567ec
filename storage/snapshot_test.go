package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-league/models"
)

func sampleSnapshot() models.Snapshot {
	s := models.NewSnapshot()
	s.Roster = []models.Competitor{
		{ID: "a", DisplayName: "Ace", FullName: "Alice Ace"},
		{ID: "b", DisplayName: "Bolt", FullName: "Bob Bolt"},
	}
	s.Config.Roster = s.Roster
	s.Config.Created = true
	s.Config.MatchFormat = models.MatchFormatSingle
	s.Config.Matches = []models.Match{
		models.Match{ID: 1, Round: 1, Sides: models.IndividualSides{Competitor1: "a", Competitor2: "b"}}.WithResult(3, 1),
	}
	return s
}

const fourCompetitors = `[{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"}]`

// createdIndividual is a created single-round individual tournament with the given matches.
func createdIndividual(matches ...string) string {
	return `{"roster": ` + fourCompetitors + `, "config": {"roundCount": 1, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single", "created": true, "roster": ` + fourCompetitors + `, "matches": [` + strings.Join(matches, ", ") + `]}}`
}

// doublesTeams is an open predefined doubles tournament with the given teams.
func doublesTeams(teams ...string) string {
	return `{"roster": ` + fourCompetitors + `, "config": {"roundCount": 1, "mode": "doubles", "teamAssignmentMode": "predefined", "matchFormat": "single", "teams": [` + strings.Join(teams, ", ") + `]}}`
}

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	data, err := Encode(sampleSnapshot(), at)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `"1.0"`, string(doc["version"]))
	assert.JSONEq(t, `"2026-03-14T09:30:00Z"`, string(doc["exportedAt"]))

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), back)
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"not json", `this is not json`, ErrMalformedSnapshot},
		{"truncated", `{"roster": [`, ErrMalformedSnapshot},
		{"empty", ``, ErrMalformedSnapshot},
		{"missing config", `{"roster": []}`, ErrInvalidSnapshot},
		{"missing roster", `{"config": {"roundCount": 1, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single"}}`, ErrInvalidSnapshot},
		{"null", `null`, ErrInvalidSnapshot},
		{"wrong type", `{"roster": "everyone", "config": {}}`, ErrInvalidSnapshot},
		{"unknown mode", `{"roster": [], "config": {"roundCount": 1, "mode": "trios", "teamAssignmentMode": "random", "matchFormat": "single"}}`, ErrInvalidSnapshot},
		{"zero rounds", `{"roster": [], "config": {"roundCount": 0, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single"}}`, ErrInvalidSnapshot},
		{"bad match", `{"roster": [], "config": {"roundCount": 1, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single", "matches": [{"id": 1, "round": 1, "completed": false}]}}`, ErrInvalidSnapshot},
		{"match of other mode", createdIndividual(`{"id": 1, "round": 1, "team1Id": "a", "team2Id": "b", "completed": false}`), ErrInvalidSnapshot},
		{"match round out of range", createdIndividual(`{"id": 1, "round": 2, "player1Id": "a", "player2Id": "b", "completed": false}`), ErrInvalidSnapshot},
		{"duplicate match ids", createdIndividual(
			`{"id": 1, "round": 1, "player1Id": "a", "player2Id": "b", "completed": false}`,
			`{"id": 1, "round": 1, "player1Id": "a", "player2Id": "c", "completed": false}`,
		), ErrInvalidSnapshot},
		{"match id zero", createdIndividual(`{"id": 0, "round": 1, "player1Id": "a", "player2Id": "b", "completed": false}`), ErrInvalidSnapshot},
		{"unresolved side", createdIndividual(`{"id": 1, "round": 1, "player1Id": "a", "player2Id": "ghost", "completed": false}`), ErrInvalidSnapshot},
		{"side plays itself", createdIndividual(`{"id": 1, "round": 1, "player1Id": "a", "player2Id": "a", "score1": 1, "score2": 1, "completed": true}`), ErrInvalidSnapshot},
		{"matches before creation", `{"roster": [{"id": "a"}, {"id": "b"}], "config": {"roundCount": 1, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single", "matches": [{"id": 1, "round": 1, "player1Id": "a", "player2Id": "b", "completed": false}]}}`, ErrInvalidSnapshot},
		{"too many rounds", `{"roster": [], "config": {"roundCount": 101, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single"}}`, ErrInvalidSnapshot},
		{"huge round count", `{"roster": [], "config": {"roundCount": 4611686018427387904, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single"}}`, ErrInvalidSnapshot},
		{"duplicate competitor", `{"roster": [{"id": "a"}, {"id": "a"}], "config": {"roundCount": 1, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single"}}`, ErrInvalidSnapshot},
		{"team with one member twice", doublesTeams(`{"id": "t1", "name": "Reds", "memberA": "a", "memberB": "a"}`), ErrInvalidSnapshot},
		{"competitor in two teams", doublesTeams(
			`{"id": "t1", "name": "Reds", "memberA": "a", "memberB": "b"}`,
			`{"id": "t2", "name": "Blues", "memberA": "b", "memberB": "c"}`,
		), ErrInvalidSnapshot},
		{"team member not registered", doublesTeams(`{"id": "t1", "name": "Reds", "memberA": "a", "memberB": "zed"}`), ErrInvalidSnapshot},
		{"duplicate team ids", doublesTeams(
			`{"id": "t1", "name": "Reds", "memberA": "a", "memberB": "b"}`,
			`{"id": "t1", "name": "Blues", "memberA": "c", "memberB": "d"}`,
		), ErrInvalidSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_FillsMissingSlices(t *testing.T) {
	s, err := Decode([]byte(`{"roster": [], "config": {"roundCount": 2, "mode": "doubles", "teamAssignmentMode": "predefined", "matchFormat": "roundTrip"}}`))
	require.NoError(t, err)

	assert.NotNil(t, s.Config.Teams)
	assert.NotNil(t, s.Config.Matches)
	assert.NotNil(t, s.Config.Roster)
	assert.Equal(t, models.ModeDoubles, s.Config.Mode)
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "tournament_2026-10-18.json", ExportFileName(at))
}

func TestDecode_AcceptsConsistentDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"created individual", createdIndividual(
			`{"id": 1, "round": 1, "player1Id": "a", "player2Id": "b", "score1": 2, "score2": 0, "completed": true}`,
			`{"id": 2, "round": 1, "player1Id": "c", "player2Id": "d", "completed": false}`,
		)},
		{"open doubles", doublesTeams(
			`{"id": "t1", "name": "Reds", "memberA": "a", "memberB": "b"}`,
			`{"id": "t2", "name": "Blues", "memberA": "c", "memberB": "d"}`,
		)},
		{"round count at the limit", `{"roster": [], "config": {"roundCount": 100, "mode": "individual", "teamAssignmentMode": "random", "matchFormat": "single"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.NoError(t, err)
		})
	}
}

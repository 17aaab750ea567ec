package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dosada05/tournament-league/services"
	"github.com/Dosada05/tournament-league/storage"
)

type testServer struct {
	router  chi.Router
	service services.TournamentService
	store   *storage.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := storage.NewMemoryStore()
	service := services.NewTournamentService(store, nil, nil, rand.New(rand.NewPCG(1, 2)), nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := NewAuthHandler(services.NewAuthService("organizer", string(hash)), "test-secret", time.Hour)
	tournament := NewTournamentHandler(service)
	participants := NewParticipantHandler(service)
	teams := NewTeamHandler(service)
	dashboard := NewDashboardHandler(service)
	transfer := NewTransferHandler(service)

	r := chi.NewRouter()
	r.Post("/auth/login", auth.Login)
	r.Get("/tournament", tournament.GetTournament)
	r.Patch("/tournament/settings", tournament.UpdateSettings)
	r.Post("/tournament/create", tournament.CreateTournament)
	r.Post("/tournament/reset", tournament.ResetTournament)
	r.Get("/tournament/preview", tournament.PreviewMatchCount)
	r.Get("/tournament/overview", dashboard.Overview)
	r.Get("/competitors", participants.ListCompetitors)
	r.Post("/competitors", participants.AddCompetitor)
	r.Delete("/competitors/{competitorID}", participants.RemoveCompetitor)
	r.Get("/teams", teams.ListTeams)
	r.Post("/teams", teams.AddTeam)
	r.Post("/teams/draw", teams.DrawTeams)
	r.Delete("/teams/{teamID}", teams.RemoveTeam)
	r.Get("/matches", tournament.ListMatches)
	r.Put("/matches/{matchID}/result", tournament.RecordResult)
	r.Get("/standings", dashboard.Standings)
	r.Get("/export", transfer.Export)
	r.Post("/export/archive", transfer.ArchiveExport)
	r.Post("/import", transfer.Import)

	return &testServer{router: r, service: service, store: store}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *testServer) addCompetitors(t *testing.T, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		rec := s.do(t, http.MethodPost, "/competitors", `{"displayName":"`+name+`","fullName":"`+name+` Full"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var competitor struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec)["competitor"], &competitor))
		ids = append(ids, competitor.ID)
	}
	return ids
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"organizer","password":"s3cret"}`, http.StatusOK},
		{"wrong password", `{"name":"organizer","password":"nope"}`, http.StatusUnauthorized},
		{"wrong name", `{"name":"guest","password":"s3cret"}`, http.StatusUnauthorized},
		{"missing password", `{"name":"organizer"}`, http.StatusBadRequest},
		{"unknown field", `{"name":"organizer","password":"s3cret","admin":true}`, http.StatusBadRequest},
		{"not json", `name=organizer`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(t, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				body := decode(t, rec)
				assert.Contains(t, body, "token")
				assert.JSONEq(t, "3600", string(body["expiresIn"]))
			}
		})
	}
}

func TestCompetitors_AddListRemove(t *testing.T) {
	s := newTestServer(t)
	ids := s.addCompetitors(t, "Ana", "Bia")

	rec := s.do(t, http.MethodGet, "/competitors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var competitors []map[string]string
	require.NoError(t, json.Unmarshal(decode(t, rec)["competitors"], &competitors))
	require.Len(t, competitors, 2)
	assert.Equal(t, "Ana", competitors[0]["displayName"])

	rec = s.do(t, http.MethodDelete, "/competitors/"+ids[0], "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodDelete, "/competitors/"+ids[0], "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/competitors", `{"displayName":"  ","fullName":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeams_AddAndDraw(t *testing.T) {
	s := newTestServer(t)
	ids := s.addCompetitors(t, "A", "B", "C", "D")

	rec := s.do(t, http.MethodPost, "/teams", `{"name":"Reds","memberA":"`+ids[0]+`","memberB":"`+ids[0]+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/teams", `{"name":"Reds","memberA":"`+ids[0]+`","memberB":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/teams", `{"name":"Reds","memberA":"`+ids[0]+`","memberB":"`+ids[1]+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var team map[string]string
	require.NoError(t, json.Unmarshal(decode(t, rec)["team"], &team))
	assert.Equal(t, "Reds (A + B)", team["label"])

	rec = s.do(t, http.MethodPost, "/teams", `{"name":"Blues","memberA":"`+ids[1]+`","memberB":"`+ids[2]+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/teams/draw", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var teams []map[string]string
	require.NoError(t, json.Unmarshal(decode(t, rec)["teams"], &teams))
	assert.Len(t, teams, 2)

	rec = s.do(t, http.MethodDelete, "/teams/team-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTournamentFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/tournament/create", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "create without competitors")

	s.addCompetitors(t, "A", "B", "C")

	rec = s.do(t, http.MethodPatch, "/tournament/settings", `{"roundCount":2,"matchFormat":"single"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPatch, "/tournament/settings", `{"roundCount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/tournament/settings", `{"roundCount":4611686018427387904}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/tournament/preview", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "6", string(decode(t, rec)["matchCount"]))

	rec = s.do(t, http.MethodPost, "/tournament/create", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/tournament/create", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/competitors", `{"displayName":"Late","fullName":"Late Comer"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, "/matches?round=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []services.MatchView
	require.NoError(t, json.Unmarshal(decode(t, rec)["matches"], &matches))
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Equal(t, 2, m.Round)
	}

	for _, target := range []string{"/matches?round=abc", "/matches?round=0", "/matches?round=3"} {
		rec = s.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	rec = s.do(t, http.MethodPut, "/matches/1/result", `{"score1":3,"score2":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var match services.MatchView
	require.NoError(t, json.Unmarshal(decode(t, rec)["match"], &match))
	assert.True(t, match.Completed)
	require.NotNil(t, match.Score1)
	assert.Equal(t, 3, *match.Score1)

	rec = s.do(t, http.MethodPut, "/matches/1/result", `{"score1":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodPut, "/matches/1/result", `{"score1":-1,"score2":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodPut, "/matches/99/result", `{"score1":1,"score2":0}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodPut, "/matches/abc/result", `{"score1":1,"score2":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/standings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	var table []services.StandingView
	require.NoError(t, json.Unmarshal(body["standings"], &table))
	require.Len(t, table, 3)
	assert.Equal(t, "A", table[0].Name)
	assert.Equal(t, 3, table[0].Points)
	assert.JSONEq(t, `{"completed":1,"total":6,"percent":17}`, string(body["progress"]))

	rec = s.do(t, http.MethodGet, "/tournament/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode(t, rec)
	for _, key := range []string{"tournament", "competitors", "teams", "matches", "standings"} {
		assert.Contains(t, overview, key)
	}

	rec = s.do(t, http.MethodPost, "/tournament/reset", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/tournament", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view services.TournamentView
	require.NoError(t, json.Unmarshal(decode(t, rec)["tournament"], &view))
	assert.False(t, view.Created)
	assert.Zero(t, view.CompetitorCount)
}

func TestRecordResult_BeforeCreate(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPut, "/matches/1/result", `{"score1":1,"score2":0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExportImport(t *testing.T) {
	s := newTestServer(t)
	s.addCompetitors(t, "A", "B")
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/tournament/create", "").Code)

	rec := s.do(t, http.MethodGet, "/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="tournament_`)
	exported := rec.Body.Bytes()

	other := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/import", bytes.NewReader(exported))
	rec = httptest.NewRecorder()
	other.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, other.service.ListCompetitors(), 2)
	assert.True(t, other.service.Tournament().Created)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"roster": [`},
		{"missing config", `{"roster": []}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := other.do(t, http.MethodPost, "/import", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.True(t, other.service.Tournament().Created, "state kept after failed import")
		})
	}
}

func TestArchiveExport_WithoutUploader(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/export/archive", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

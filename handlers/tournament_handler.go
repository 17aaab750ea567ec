package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-league/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// GetTournament godoc
// @Summary Current tournament settings and progress
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tournament [get]
func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": h.tournamentService.Tournament()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateSettings godoc
// @Summary Change settings before the tournament is created
// @Tags tournament
// @Accept json
// @Produce json
// @Param body body services.UpdateSettingsInput true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /tournament/settings [patch]
func (h *TournamentHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateSettingsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.tournamentService.UpdateSettings(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateTournament godoc
// @Summary Freeze registrations and generate the round-robin schedule
// @Tags tournament
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /tournament/create [post]
func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	view, err := h.tournamentService.CreateTournament(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetTournament godoc
// @Summary Clear every registration, match and setting
// @Tags tournament
// @Success 204
// @Security BearerAuth
// @Router /tournament/reset [post]
func (h *TournamentHandler) ResetTournament(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Reset(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "Tournament reset requested", slog.String("organizer", organizerName(r)))
	w.WriteHeader(http.StatusNoContent)
}

// PreviewMatchCount godoc
// @Summary Number of matches the current registrations would produce
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]int
// @Router /tournament/preview [get]
func (h *TournamentHandler) PreviewMatchCount(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matchCount": h.tournamentService.PreviewMatchCount()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

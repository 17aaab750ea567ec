package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-league/services"
)

type DashboardHandler struct {
	tournamentService services.TournamentService
}

func NewDashboardHandler(ts services.TournamentService) *DashboardHandler {
	return &DashboardHandler{tournamentService: ts}
}

// Standings godoc
// @Summary Ranked table with derived rates
// @Tags standings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /standings [get]
func (h *DashboardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{
		"standings": h.tournamentService.Standings(),
		"progress":  h.tournamentService.Progress(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Overview godoc
// @Summary Tournament, registrations, schedule and standings in one response
// @Tags tournament
// @Produce json
// @Success 200 {object} services.Overview
// @Router /tournament/overview [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tournamentService.Overview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-league/services"
)

type ParticipantHandler struct {
	tournamentService services.TournamentService
}

func NewParticipantHandler(ts services.TournamentService) *ParticipantHandler {
	return &ParticipantHandler{tournamentService: ts}
}

// ListCompetitors godoc
// @Summary Registered competitors
// @Tags competitors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /competitors [get]
func (h *ParticipantHandler) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitors": h.tournamentService.ListCompetitors()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddCompetitor godoc
// @Summary Register a competitor
// @Tags competitors
// @Accept json
// @Produce json
// @Param body body services.AddCompetitorInput true "Names"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /competitors [post]
func (h *ParticipantHandler) AddCompetitor(w http.ResponseWriter, r *http.Request) {
	var input services.AddCompetitorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitor, err := h.tournamentService.AddCompetitor(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competitor": competitor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RemoveCompetitor godoc
// @Summary Unregister a competitor and drop its teams
// @Tags competitors
// @Param competitorID path string true "Competitor ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /competitors/{competitorID} [delete]
func (h *ParticipantHandler) RemoveCompetitor(w http.ResponseWriter, r *http.Request) {
	competitorID, err := getKeyFromURL(r, "competitorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentService.RemoveCompetitor(r.Context(), competitorID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-league/services"
)

type TeamHandler struct {
	tournamentService services.TournamentService
}

func NewTeamHandler(ts services.TournamentService) *TeamHandler {
	return &TeamHandler{tournamentService: ts}
}

// ListTeams godoc
// @Summary Doubles teams
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": h.tournamentService.ListTeams()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddTeam godoc
// @Summary Declare a team of two registered competitors
// @Tags teams
// @Accept json
// @Produce json
// @Param body body services.AddTeamInput true "Team"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var input services.AddTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.tournamentService.AddTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RemoveTeam godoc
// @Summary Remove a team
// @Tags teams
// @Param teamID path string true "Team ID"
// @Success 204
// @Security BearerAuth
// @Router /teams/{teamID} [delete]
func (h *TeamHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getKeyFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentService.RemoveTeam(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DrawTeams godoc
// @Summary Pair all competitors into random teams
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /teams/draw [post]
func (h *TeamHandler) DrawTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.tournamentService.GenerateRandomTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

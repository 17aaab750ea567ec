package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-league/services"
)

const maxImportBytes = 5 << 20

type TransferHandler struct {
	tournamentService services.TournamentService
}

func NewTransferHandler(ts services.TournamentService) *TransferHandler {
	return &TransferHandler{tournamentService: ts}
}

// Export godoc
// @Summary Download the tournament as a JSON document
// @Tags transfer
// @Produce json
// @Success 200 {file} file
// @Router /export [get]
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.tournamentService.Export(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}

// ArchiveExport godoc
// @Summary Store an export in object storage
// @Tags transfer
// @Produce json
// @Success 201 {object} storage.UploadResult
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /export/archive [post]
func (h *TransferHandler) ArchiveExport(w http.ResponseWriter, r *http.Request) {
	result, err := h.tournamentService.ArchiveExport(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"archive": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Import godoc
// @Summary Replace the tournament with an exported document
// @Tags transfer
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /import [post]
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			badRequestResponse(w, r, fmt.Errorf("file must not be larger than %d bytes", maxBytesError.Limit))
			return
		}
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.tournamentService.Import(r.Context(), data)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "Snapshot imported over HTTP",
		slog.String("organizer", organizerName(r)),
		slog.Int("bytes", len(data)),
	)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

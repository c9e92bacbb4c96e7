package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kiliclub/clubdesk/internal/api/response"
	"github.com/kiliclub/clubdesk/internal/services/export"
)

// maxImportSize bounds uploaded CSV files
const maxImportSize = 10 << 20 // 10 MiB

// ExportHandler handles player CSV import/export endpoints
type ExportHandler struct {
	export *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(svc *export.Service) *ExportHandler {
	return &ExportHandler{export: svc}
}

// ExportPlayers handles GET /api/v1/players/export
func (h *ExportHandler) ExportPlayers(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("Players_Export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.export.ExportPlayers(r.Context(), w); err != nil {
		// Headers are already out; nothing useful left to send
		return
	}
}

// Template handles GET /api/v1/players/import/template
func (h *ExportHandler) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="Player_Import_Template.csv"`)

	_ = h.export.WriteTemplate(w)
}

// ImportPlayers handles POST /api/v1/players/import
func (h *ExportHandler) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxImportSize)

	imported, err := h.export.ImportPlayers(r.Context(), body)
	if err != nil {
		WriteError(w, NewInvalidRequestError("could not parse import file"))
		return
	}

	response.JSON(w, http.StatusOK, response.ImportResult{Imported: imported})
}

package handler

import (
	"context"
	"net/http"

	"deli-admin/internal/importer"
	"deli-admin/internal/service"

	"github.com/rs/zerolog"
)

// ImportHandler handles bulk CSV import requests.
type ImportHandler struct {
	service      service.ImportService
	maxFileBytes int64
	logger       zerolog.Logger
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service service.ImportService, maxFileBytes int64, logger zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		service:      service,
		maxFileBytes: maxFileBytes,
		logger:       logger.With().Str("handler", "import").Logger(),
	}
}

// importResponse reports the outcome of one import.
type importResponse struct {
	Imported int             `json:"imported"`
	Status   importer.Status `json:"status"`
}

// Import handles POST /api/imports requests carrying a multipart "file" field.
// The batch runs to completion even if the client goes away.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(w, r, "file", h.maxFileBytes)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	defer file.Close()

	h.logger.Info().
		Str("filename", header.Filename).
		Int64("size", header.Size).
		Msg("csv import received")

	count, err := h.service.Import(context.WithoutCancel(r.Context()), file)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{Imported: count, Status: h.service.Status()})
}

// Status handles GET /api/imports/status requests.
func (h *ImportHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Status())
}

package handler

import (
	"net/http"

	"deli-admin/internal/model"
	"deli-admin/internal/service"

	"github.com/rs/zerolog"
)

// SettingsHandler handles the announcement banner.
type SettingsHandler struct {
	service service.SettingsService
	logger  zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger.With().Str("handler", "settings").Logger(),
	}
}

// GetAnnouncement handles GET /api/settings/announcement requests.
func (h *SettingsHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.Announcement(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.AnnouncementRequest{Text: text})
}

// SetAnnouncement handles PUT /api/settings/announcement requests.
func (h *SettingsHandler) SetAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req model.AnnouncementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.SetAnnouncement(r.Context(), req.Text); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

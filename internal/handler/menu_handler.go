package handler

import (
	"context"
	"net/http"
	"strings"

	"deli-admin/internal/catalog"
	"deli-admin/internal/model"
	"deli-admin/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-item HTTP requests.
type MenuHandler struct {
	service        service.MenuService
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewMenuHandler creates a new menu handler. Image uploads larger than
// maxUploadBytes are rejected.
func NewMenuHandler(service service.MenuService, maxUploadBytes int64, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With().Str("handler", "menu").Logger(),
	}
}

// sectionsResponse describes the editor schema to the console.
type sectionsResponse struct {
	Sections    []catalog.SectionConfig `json:"sections"`
	DietaryTags []string                `json:"dietary_tags"`
}

// List handles GET /api/menu-items requests, optionally filtered by ?section=.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	var section *model.Section
	if raw := strings.TrimSpace(r.URL.Query().Get("section")); raw != "" {
		s := model.Section(strings.ToLower(raw))
		section = &s
	}

	items, err := h.service.List(r.Context(), section)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Stats handles GET /api/menu-items/stats requests.
func (h *MenuHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetByID handles GET /api/menu-items/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/menu-items requests. Fields left out of the body
// keep their new-item defaults.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Create(r.Context(), h.fillDraft(w, r))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/menu-items/{id} requests. Fields left out of the
// body keep their stored values.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.Update(r.Context(), id, h.fillDraft(w, r))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu-items/{id} requests.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles POST /api/menu-items/images requests and returns the
// URL of the stored image without linking it to an item.
func (h *MenuHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, _, err := formFile(w, r, "image", h.maxUploadBytes)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(context.WithoutCancel(r.Context()), file)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// SetImage handles PUT /api/menu-items/{id}/image requests.
func (h *MenuHandler) SetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	file, _, err := formFile(w, r, "image", h.maxUploadBytes)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	defer file.Close()

	item, err := h.service.SetImage(context.WithoutCancel(r.Context()), id, file)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Sections handles GET /api/sections requests.
func (h *MenuHandler) Sections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sectionsResponse{
		Sections:    catalog.OrderedConfigs(),
		DietaryTags: catalog.DietaryTags,
	})
}

// fillDraft decodes the request body over the draft the editor opened.
// Category entry mode is re-derived afterwards since the body may move the
// draft to another section.
func (h *MenuHandler) fillDraft(w http.ResponseWriter, r *http.Request) service.DraftFunc {
	return func(d *catalog.Draft) error {
		if err := decodeJSON(w, r, d); err != nil {
			return err
		}
		d.Section = model.Section(strings.ToLower(strings.TrimSpace(string(d.Section))))
		d.SetCategory(d.Category, d.CustomCategory)
		return nil
	}
}

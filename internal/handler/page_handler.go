package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"deli-admin/internal/model"
	"deli-admin/internal/service"

	"github.com/rs/zerolog"
)

// PageHandler handles page content and gallery requests.
type PageHandler struct {
	service        service.PageService
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(service service.PageService, maxUploadBytes int64, logger zerolog.Logger) *PageHandler {
	return &PageHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With().Str("handler", "page").Logger(),
	}
}

type galleryUploadResponse struct {
	URL  string             `json:"url"`
	Page *model.PageContent `json:"page"`
}

// Get handles GET /api/pages requests.
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Publish handles PUT /api/pages/{gallery} requests.
func (h *PageHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req model.PageSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	page, err := h.service.Publish(r.Context(), model.Gallery(r.PathValue("gallery")), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// AddImage handles POST /api/pages/{gallery}/images requests.
func (h *PageHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	gallery := model.Gallery(r.PathValue("gallery"))
	if !gallery.Valid() {
		writeError(w, model.ErrInvalidGallery, h.logger)
		return
	}

	file, _, err := formFile(w, r, "image", h.maxUploadBytes)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	defer file.Close()

	page, url, err := h.service.AddImage(context.WithoutCancel(r.Context()), gallery, file)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, galleryUploadResponse{URL: url, Page: page})
}

// RemoveImage handles DELETE /api/pages/{gallery}/images/{index} requests.
func (h *PageHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", model.ErrGalleryIndex, err), h.logger)
		return
	}

	page, err := h.service.RemoveImage(r.Context(), model.Gallery(r.PathValue("gallery")), index)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

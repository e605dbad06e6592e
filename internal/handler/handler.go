package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"deli-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxJSONBytes bounds every JSON request body.
const maxJSONBytes = 1 << 20

// errorStatuses maps domain errors to HTTP status codes. Order matters: the
// first sentinel found in the error chain decides the response.
var errorStatuses = []struct {
	err    *model.DomainError
	status int
}{
	{model.ErrInvalidJSON, http.StatusBadRequest},
	{model.ErrInvalidID, http.StatusBadRequest},
	{model.ErrMissingField, http.StatusBadRequest},
	{model.ErrInvalidSection, http.StatusBadRequest},
	{model.ErrInvalidTag, http.StatusBadRequest},
	{model.ErrInvalidGallery, http.StatusBadRequest},
	{model.ErrGalleryIndex, http.StatusBadRequest},
	{model.ErrImageDecode, http.StatusBadRequest},
	{model.ErrImportParse, http.StatusBadRequest},
	{model.ErrMissingFile, http.StatusBadRequest},
	{model.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{model.ErrInvalidCredentials, http.StatusUnauthorized},
	{model.ErrUnauthorised, http.StatusUnauthorized},
	{model.ErrMenuItemNotFound, http.StatusNotFound},
	{model.ErrGalleryFull, http.StatusConflict},
	{model.ErrImportInProgress, http.StatusConflict},
	{model.ErrEditorNotOpen, http.StatusConflict},
	{model.ErrUploadFailed, http.StatusBadGateway},
	{model.ErrPersistFailed, http.StatusInternalServerError},
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError maps err to a status code and writes the standard error body.
// Errors without a domain sentinel are reported as internal errors.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status := http.StatusInternalServerError
	body := model.ErrorResponse{Error: model.ErrCodeInternalError, Message: "internal server error"}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			status = e.status
			body = model.ErrorResponse{Error: e.err.Code, Message: e.err.Message}
			break
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("handler error")
	} else {
		logger.Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, body)
}

// decodeJSON decodes a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", model.ErrInvalidID, err)
	}
	return id, nil
}

// formFile returns the multipart file in field, reading at most limit bytes
// of request body.
func formFile(w http.ResponseWriter, r *http.Request, field string, limit int64) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	file, header, err := r.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w: limit %d bytes", model.ErrFileTooLarge, tooLarge.Limit)
		}
		return nil, nil, fmt.Errorf("%w: %v", model.ErrMissingFile, err)
	}
	return file, header, nil
}

package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeMissingFile        = "MISSING_FILE"
	ErrCodeFileTooLarge       = "FILE_TOO_LARGE"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidSection     = "INVALID_SECTION"
	ErrCodeInvalidTag         = "INVALID_TAG"
	ErrCodeInvalidGallery     = "INVALID_GALLERY"
	ErrCodeMenuItemNotFound   = "MENU_ITEM_NOT_FOUND"
	ErrCodePersistFailed      = "PERSIST_FAILED"
	ErrCodeUploadFailed       = "UPLOAD_FAILED"
	ErrCodeImageDecode        = "IMAGE_DECODE_FAILED"
	ErrCodeImportParse        = "IMPORT_PARSE_FAILED"
	ErrCodeImportInProgress   = "IMPORT_IN_PROGRESS"
	ErrCodeGalleryFull        = "GALLERY_FULL"
	ErrCodeGalleryIndex       = "GALLERY_INDEX_OUT_OF_RANGE"
	ErrCodeEditorState        = "EDITOR_STATE"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidJSON        = NewDomainError(ErrCodeInvalidJSON, "Request body is not valid JSON")
	ErrInvalidID          = NewDomainError(ErrCodeInvalidID, "Invalid menu item ID format")
	ErrMissingFile        = NewDomainError(ErrCodeMissingFile, "No file was uploaded")
	ErrFileTooLarge       = NewDomainError(ErrCodeFileTooLarge, "File is too large")
	ErrMissingField       = NewDomainError(ErrCodeMissingField, "Name and price are required")
	ErrInvalidSection     = NewDomainError(ErrCodeInvalidSection, "Section must be cafe, deli or catering")
	ErrInvalidTag         = NewDomainError(ErrCodeInvalidTag, "Tag is not part of the dietary vocabulary")
	ErrInvalidGallery     = NewDomainError(ErrCodeInvalidGallery, "Gallery must be general or bread")
	ErrMenuItemNotFound   = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrPersistFailed      = NewDomainError(ErrCodePersistFailed, "Could not save to the catalog store")
	ErrUploadFailed       = NewDomainError(ErrCodeUploadFailed, "Upload failed, please try again")
	ErrImageDecode        = NewDomainError(ErrCodeImageDecode, "File is not a readable image")
	ErrImportParse        = NewDomainError(ErrCodeImportParse, "Check your column headers and try again")
	ErrImportInProgress   = NewDomainError(ErrCodeImportInProgress, "An import is already running")
	ErrGalleryFull        = NewDomainError(ErrCodeGalleryFull, "Maximum 6 images allowed")
	ErrGalleryIndex       = NewDomainError(ErrCodeGalleryIndex, "Gallery image index out of range")
	ErrEditorNotOpen      = NewDomainError(ErrCodeEditorState, "Editor is not open")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrUnauthorised       = NewDomainError(ErrCodeUnauthorised, "Session is missing, expired or revoked")
)

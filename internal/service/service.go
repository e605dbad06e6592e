package service

import (
	"context"
	"io"

	"deli-admin/internal/catalog"
	"deli-admin/internal/imaging"
	"deli-admin/internal/importer"
	"deli-admin/internal/model"

	"github.com/google/uuid"
)

// DraftFunc fills a draft before it is submitted. It receives the defaults
// for a new item, or a copy of the stored item when updating.
type DraftFunc func(d *catalog.Draft) error

// ImageIngester compresses and uploads one image and returns its public URL.
type ImageIngester interface {
	Ingest(ctx context.Context, target imaging.Target, r io.Reader) (string, error)
}

// MenuService defines operations on the menu catalog.
type MenuService interface {
	// List retrieves items newest first, optionally for one section.
	List(ctx context.Context, section *model.Section) ([]model.MenuItem, error)

	// GetByID retrieves a single item.
	GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)

	// Create opens an editor on a fresh draft, applies fill and submits it.
	Create(ctx context.Context, fill DraftFunc) (*model.MenuItem, error)

	// Update opens an editor on the stored item, applies fill and submits it.
	Update(ctx context.Context, id uuid.UUID, fill DraftFunc) (*model.MenuItem, error)

	// Delete removes an item.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats returns the number of items per section.
	Stats(ctx context.Context) (model.SectionStats, error)

	// UploadImage ingests an item image and returns its URL without linking it.
	UploadImage(ctx context.Context, r io.Reader) (string, error)

	// SetImage ingests an image and links it to an existing item.
	SetImage(ctx context.Context, id uuid.UUID, r io.Reader) (*model.MenuItem, error)
}

// ImportService defines the bulk CSV import operations.
type ImportService interface {
	// Import parses r and inserts every row as one batch.
	Import(ctx context.Context, r io.Reader) (int, error)

	// Status returns the importer's current state.
	Status() importer.Status
}

// PageService defines operations on the page text and its galleries.
type PageService interface {
	// Get retrieves the page content.
	Get(ctx context.Context) (*model.PageContent, error)

	// Publish replaces the text and image list of one gallery.
	Publish(ctx context.Context, g model.Gallery, req *model.PageSectionRequest) (*model.PageContent, error)

	// AddImage uploads an image into a gallery and appends its URL.
	AddImage(ctx context.Context, g model.Gallery, r io.Reader) (*model.PageContent, string, error)

	// RemoveImage drops the URL at index from a gallery. The blob is kept.
	RemoveImage(ctx context.Context, g model.Gallery, index int) (*model.PageContent, error)
}

// SettingsService defines operations on the settings collection.
type SettingsService interface {
	// Announcement returns the banner copy, or "" when unset.
	Announcement(ctx context.Context) (string, error)

	// SetAnnouncement replaces the banner copy.
	SetAnnouncement(ctx context.Context, text string) error
}

// AuthService defines operator sign-in and session checks.
type AuthService interface {
	// Login checks credentials and opens a session.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// Authenticate resolves a bearer token to a live session.
	Authenticate(ctx context.Context, token string) (*model.Session, error)

	// Logout revokes a session.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// PurgeExpired removes sessions past their expiry.
	PurgeExpired(ctx context.Context) (int64, error)
}

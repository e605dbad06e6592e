package repository

import (
	"context"
	"time"

	"deli-admin/internal/model"

	"github.com/google/uuid"
)

// MenuItemRepository defines the interface for menu item data access operations.
type MenuItemRepository interface {
	// Insert persists a new item and fills in its ID and timestamps.
	Insert(ctx context.Context, item *model.MenuItem) error

	// InsertBatch inserts all items in one transaction. Either every row is
	// stored or none is.
	InsertBatch(ctx context.Context, items []model.MenuItem) error

	// Update replaces every editable field of the item with the given id.
	// Returns model.ErrMenuItemNotFound when no row matches.
	Update(ctx context.Context, id uuid.UUID, item *model.MenuItem) error

	// Delete removes an item. Returns model.ErrMenuItemNotFound when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID retrieves a single item. Returns nil, nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)

	// List retrieves items newest first, optionally for one section.
	List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error)

	// CountBySection returns the number of items per section. Known sections
	// are always present, with zero when empty.
	CountBySection(ctx context.Context) (model.SectionStats, error)
}

// PageRepository defines access to the single page content record.
type PageRepository interface {
	// Get retrieves the page content record.
	Get(ctx context.Context) (*model.PageContent, error)

	// Save overwrites the page content record.
	Save(ctx context.Context, page *model.PageContent) error
}

// SettingsRepository defines access to the key/value settings collection.
type SettingsRepository interface {
	// Get retrieves a setting. Returns nil, nil when the key is not set.
	Get(ctx context.Context, key string) (*model.Setting, error)

	// Upsert creates or replaces a setting.
	Upsert(ctx context.Context, key, value string) error
}

// AdminRepository defines access to console operators.
type AdminRepository interface {
	// GetByUsername retrieves an operator. Returns nil, nil when not found.
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)

	// Upsert creates the operator or replaces their password hash.
	Upsert(ctx context.Context, username, passwordHash string) (*model.AdminUser, error)
}

// SessionRepository defines access to server-side login sessions.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *model.Session) error

	// Get retrieves a session. Returns nil, nil when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)

	// Delete revokes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions that expired before now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

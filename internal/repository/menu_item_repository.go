package repository

import (
	"context"
	"errors"
	"fmt"

	"deli-admin/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const menuItemColumns = `
	id, name, description, ingredients, price, deal_price, section, category,
	tags, portions, is_deal, is_featured, sort_order, number_items, image_url,
	created_at, updated_at`

const insertMenuItemQuery = `
	INSERT INTO menu_items (
		name, description, ingredients, price, deal_price, section, category,
		tags, portions, is_deal, is_featured, sort_order, number_items, image_url
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING id, created_at, updated_at`

// menuItemRepository implements the MenuItemRepository interface using PostgreSQL.
type menuItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

func insertArgs(item *model.MenuItem) []any {
	return []any{
		item.Name, item.Description, item.Ingredients, item.Price, item.DealPrice,
		string(item.Section), item.Category, emptyIfNil(item.Tags), item.Portions,
		item.IsDeal, item.IsFeatured, item.SortOrder, item.NumberItems, item.ImageURL,
	}
}

// emptyIfNil keeps a nil slice from being written as NULL into a NOT NULL array column.
func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanMenuItem(row pgx.Row) (model.MenuItem, error) {
	var item model.MenuItem
	var section string
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Ingredients, &item.Price,
		&item.DealPrice, &section, &item.Category, &item.Tags, &item.Portions,
		&item.IsDeal, &item.IsFeatured, &item.SortOrder, &item.NumberItems,
		&item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
	)
	item.Section = model.Section(section)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item, err
}

// Insert persists a new item and fills in its ID and timestamps.
func (r *menuItemRepository) Insert(ctx context.Context, item *model.MenuItem) error {
	err := r.pool.QueryRow(ctx, insertMenuItemQuery, insertArgs(item)...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to insert menu item")
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	r.logger.Debug().Str("item_id", item.ID.String()).Msg("menu item inserted")
	return nil
}

// InsertBatch inserts all items in one transaction.
func (r *menuItemRepository) InsertBatch(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.sendBatch(ctx, tx, items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int("count", len(items)).Msg("failed to commit menu item batch")
		return fmt.Errorf("failed to commit menu item batch: %w", err)
	}

	r.logger.Info().Int("count", len(items)).Msg("menu item batch inserted")
	return nil
}

func (r *menuItemRepository) sendBatch(ctx context.Context, tx pgx.Tx, items []model.MenuItem) error {
	batch := &pgx.Batch{}
	for i := range items {
		batch.Queue(insertMenuItemQuery, insertArgs(&items[i])...)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if err := results.QueryRow().Scan(&items[i].ID, &items[i].CreatedAt, &items[i].UpdatedAt); err != nil {
			r.logger.Error().
				Err(err).
				Int("row", i+1).
				Str("name", items[i].Name).
				Msg("failed to insert menu item in batch")
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	return nil
}

// Update replaces every editable field of the item with the given id.
func (r *menuItemRepository) Update(ctx context.Context, id uuid.UUID, item *model.MenuItem) error {
	query := `
		UPDATE menu_items SET
			name = $2, description = $3, ingredients = $4, price = $5, deal_price = $6,
			section = $7, category = $8, tags = $9, portions = $10, is_deal = $11,
			is_featured = $12, sort_order = $13, number_items = $14, image_url = $15,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	args := append([]any{id}, insertArgs(item)...)
	err := r.pool.QueryRow(ctx, query, args...).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("item_id", id.String()).Msg("menu item not found for update")
			return model.ErrMenuItemNotFound
		}
		r.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to update menu item")
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	item.ID = id
	return nil
}

// Delete removes an item.
func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to delete menu item")
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMenuItemNotFound
	}
	return nil
}

// GetByID retrieves a single item.
func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("item_id", id.String()).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// List retrieves items newest first, optionally for one section.
func (r *menuItemRepository) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	var args []any
	if filter.Section != nil {
		query += ` WHERE section = $1`
		args = append(args, string(*filter.Section))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// CountBySection returns the number of items per section.
func (r *menuItemRepository) CountBySection(ctx context.Context) (model.SectionStats, error) {
	rows, err := r.pool.Query(ctx, `SELECT section, COUNT(*) FROM menu_items GROUP BY section`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count menu items")
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}
	defer rows.Close()

	stats := model.SectionStats{}
	for _, s := range model.Sections {
		stats[s] = 0
	}

	for rows.Next() {
		var section string
		var count int
		if err := rows.Scan(&section, &count); err != nil {
			return nil, fmt.Errorf("failed to scan section count: %w", err)
		}
		stats[model.Section(section)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section counts: %w", err)
	}

	return stats, nil
}

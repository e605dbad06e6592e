package repository

import (
	"context"
	"errors"
	"fmt"

	"deli-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pageRepository implements PageRepository on the fixed page_content row.
type pageRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPageRepository creates a new PostgreSQL-backed page repository.
func NewPageRepository(pool *pgxpool.Pool, logger zerolog.Logger) PageRepository {
	return &pageRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "page_content").Logger(),
	}
}

// Get retrieves the page content record. A missing row reads as empty content.
func (r *pageRepository) Get(ctx context.Context) (*model.PageContent, error) {
	query := `
		SELECT id, content, image_urls, bread_content, bread_image_urls, updated_at
		FROM page_content
		WHERE id = $1
	`

	var page model.PageContent
	err := r.pool.QueryRow(ctx, query, model.PageContentID).Scan(
		&page.ID,
		&page.Content,
		&page.ImageURLs,
		&page.BreadContent,
		&page.BreadImageURLs,
		&page.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn().Msg("page content row missing, returning empty content")
			return &model.PageContent{
				ID:             model.PageContentID,
				ImageURLs:      []string{},
				BreadImageURLs: []string{},
			}, nil
		}
		r.logger.Error().Err(err).Msg("failed to query page content")
		return nil, fmt.Errorf("failed to query page content: %w", err)
	}

	if page.ImageURLs == nil {
		page.ImageURLs = []string{}
	}
	if page.BreadImageURLs == nil {
		page.BreadImageURLs = []string{}
	}

	return &page, nil
}

// Save overwrites the page content record.
func (r *pageRepository) Save(ctx context.Context, page *model.PageContent) error {
	query := `
		INSERT INTO page_content (id, content, image_urls, bread_content, bread_image_urls, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			image_urls = EXCLUDED.image_urls,
			bread_content = EXCLUDED.bread_content,
			bread_image_urls = EXCLUDED.bread_image_urls,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	page.ID = model.PageContentID
	err := r.pool.QueryRow(ctx, query,
		page.ID,
		page.Content,
		emptyIfNil(page.ImageURLs),
		page.BreadContent,
		emptyIfNil(page.BreadImageURLs),
	).Scan(&page.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to save page content")
		return fmt.Errorf("failed to save page content: %w", err)
	}

	r.logger.Debug().
		Int("images", len(page.ImageURLs)).
		Int("bread_images", len(page.BreadImageURLs)).
		Msg("page content saved")

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"deli-admin/internal/catalog"
	"deli-admin/internal/imaging"
	"deli-admin/internal/model"
	"deli-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	itemRepo repository.MenuItemRepository
	images   ImageIngester
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(itemRepo repository.MenuItemRepository, images ImageIngester, logger zerolog.Logger) MenuService {
	return &menuService{
		itemRepo: itemRepo,
		images:   images,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// List retrieves items newest first, optionally for one section.
func (s *menuService) List(ctx context.Context, section *model.Section) ([]model.MenuItem, error) {
	if section != nil && !section.Valid() {
		return nil, model.ErrInvalidSection
	}

	items, err := s.itemRepo.List(ctx, model.MenuItemFilter{Section: section})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")
	return items, nil
}

// GetByID retrieves a single item.
func (s *menuService) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}
	return item, nil
}

// Create opens an editor on a fresh draft, applies fill and submits it.
func (s *menuService) Create(ctx context.Context, fill DraftFunc) (*model.MenuItem, error) {
	editor := catalog.NewEditor(s.itemRepo, nil, s.logger)
	editor.OpenNew()
	return s.submit(ctx, editor, fill)
}

// Update opens an editor on the stored item, applies fill and submits it.
func (s *menuService) Update(ctx context.Context, id uuid.UUID, fill DraftFunc) (*model.MenuItem, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	editor := catalog.NewEditor(s.itemRepo, nil, s.logger)
	editor.OpenExisting(*existing)
	return s.submit(ctx, editor, fill)
}

func (s *menuService) submit(ctx context.Context, editor *catalog.Editor, fill DraftFunc) (*model.MenuItem, error) {
	if fill != nil {
		if err := fill(editor.Draft()); err != nil {
			return nil, err
		}
	}
	return editor.Submit(ctx)
}

// Delete removes an item.
func (s *menuService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrMenuItemNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to delete menu item")
		return fmt.Errorf("%w: %w", model.ErrPersistFailed, err)
	}

	s.logger.Info().Str("item_id", id.String()).Msg("menu item deleted")
	return nil
}

// Stats returns the number of items per section.
func (s *menuService) Stats(ctx context.Context) (model.SectionStats, error) {
	stats, err := s.itemRepo.CountBySection(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count menu items")
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}
	return stats, nil
}

// UploadImage ingests an item image and returns its URL without linking it.
func (s *menuService) UploadImage(ctx context.Context, r io.Reader) (string, error) {
	return s.images.Ingest(ctx, imaging.TargetMenuItem, r)
}

// SetImage ingests an image and links it to an existing item. The item is
// looked up first so an unknown id never leaves an orphaned upload.
func (s *menuService) SetImage(ctx context.Context, id uuid.UUID, r io.Reader) (*model.MenuItem, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.images.Ingest(ctx, imaging.TargetMenuItem, r)
	if err != nil {
		return nil, err
	}

	editor := catalog.NewEditor(s.itemRepo, nil, s.logger)
	editor.OpenExisting(*existing)
	editor.Draft().ImageURL = url
	return editor.Submit(ctx)
}

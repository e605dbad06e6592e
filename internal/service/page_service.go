package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"deli-admin/internal/imaging"
	"deli-admin/internal/model"
	"deli-admin/internal/repository"

	"github.com/rs/zerolog"
)

// pageService implements PageService.
type pageService struct {
	pageRepo repository.PageRepository
	images   ImageIngester
	logger   zerolog.Logger
}

// NewPageService creates a new page service.
func NewPageService(pageRepo repository.PageRepository, images ImageIngester, logger zerolog.Logger) PageService {
	return &pageService{
		pageRepo: pageRepo,
		images:   images,
		logger:   logger.With().Str("service", "page").Logger(),
	}
}

// Get retrieves the page content.
func (s *pageService) Get(ctx context.Context) (*model.PageContent, error) {
	page, err := s.pageRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get page content")
		return nil, fmt.Errorf("failed to get page content: %w", err)
	}
	return page, nil
}

// Publish replaces the text and image list of one gallery. The other
// gallery is left untouched.
func (s *pageService) Publish(ctx context.Context, g model.Gallery, req *model.PageSectionRequest) (*model.PageContent, error) {
	if !g.Valid() {
		return nil, model.ErrInvalidGallery
	}

	urls := req.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	if len(urls) > imaging.MaxGallerySize {
		return nil, model.ErrGalleryFull
	}

	page, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	page.SetSection(g, req.Content, urls)
	if err := s.save(ctx, page); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("gallery", string(g)).
		Int("images", len(urls)).
		Msg("page section published")

	return page, nil
}

// AddImage uploads an image into a gallery and appends its URL. Capacity is
// checked before the upload, and again against a fresh read before saving.
func (s *pageService) AddImage(ctx context.Context, g model.Gallery, r io.Reader) (*model.PageContent, string, error) {
	target, err := imaging.TargetForGallery(g)
	if err != nil {
		return nil, "", err
	}

	page, err := s.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	if _, urls := page.Section(g); imaging.CheckCapacity(urls) != nil {
		s.logger.Warn().Str("gallery", string(g)).Msg("gallery is full")
		return nil, "", model.ErrGalleryFull
	}

	url, err := s.images.Ingest(ctx, target, r)
	if err != nil {
		return nil, "", err
	}

	page, err = s.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	content, urls := page.Section(g)
	updated, err := imaging.AppendURL(urls, url)
	if err != nil {
		s.logger.Warn().
			Str("gallery", string(g)).
			Str("url", url).
			Msg("gallery filled during upload, image left unlinked")
		return nil, "", err
	}

	page.SetSection(g, content, updated)
	if err := s.save(ctx, page); err != nil {
		return nil, "", err
	}

	s.logger.Info().
		Str("gallery", string(g)).
		Str("url", url).
		Int("images", len(updated)).
		Msg("gallery image added")

	return page, url, nil
}

// RemoveImage drops the URL at index from a gallery. The stored object is
// not deleted.
func (s *pageService) RemoveImage(ctx context.Context, g model.Gallery, index int) (*model.PageContent, error) {
	if !g.Valid() {
		return nil, model.ErrInvalidGallery
	}

	page, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	content, urls := page.Section(g)
	updated, err := imaging.RemoveAt(urls, index)
	if err != nil {
		return nil, err
	}

	page.SetSection(g, content, updated)
	if err := s.save(ctx, page); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("gallery", string(g)).
		Int("index", index).
		Int("images", len(updated)).
		Msg("gallery image removed")

	return page, nil
}

func (s *pageService) save(ctx context.Context, page *model.PageContent) error {
	if err := s.pageRepo.Save(ctx, page); err != nil {
		if errors.Is(err, model.ErrPersistFailed) {
			return err
		}
		s.logger.Error().Err(err).Msg("failed to save page content")
		return fmt.Errorf("%w: %w", model.ErrPersistFailed, err)
	}
	return nil
}

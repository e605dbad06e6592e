package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"deli-admin/internal/imaging"
	"deli-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pageWith(general, bread int) *model.PageContent {
	page := &model.PageContent{
		ID:             model.PageContentID,
		Content:        "Open daily",
		ImageURLs:      []string{},
		BreadContent:   "Sourdough from 8am",
		BreadImageURLs: []string{},
	}
	for i := 0; i < general; i++ {
		page.ImageURLs = append(page.ImageURLs, fmt.Sprintf("general-%d.jpg", i))
	}
	for i := 0; i < bread; i++ {
		page.BreadImageURLs = append(page.BreadImageURLs, fmt.Sprintf("bread-%d.jpg", i))
	}
	return page
}

func TestPageService_AddImage(t *testing.T) {
	ctx := context.Background()

	t.Run("appends to the bread gallery", func(t *testing.T) {
		repo := new(MockPageRepository)
		images := new(MockImageIngester)
		svc := NewPageService(repo, images, zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(2, 1), nil).Once()
		repo.On("Get", ctx).Return(pageWith(2, 1), nil).Once()
		images.On("Ingest", ctx, imaging.TargetBreadGallery, mock.Anything).Return("bread-new.jpg", nil)
		repo.On("Save", ctx, mock.MatchedBy(func(p *model.PageContent) bool {
			return len(p.BreadImageURLs) == 2 && p.BreadImageURLs[1] == "bread-new.jpg" && len(p.ImageURLs) == 2
		})).Return(nil)

		page, url, err := svc.AddImage(ctx, model.GalleryBread, bytes.NewReader(nil))
		require.NoError(t, err)
		assert.Equal(t, "bread-new.jpg", url)
		assert.Equal(t, "Sourdough from 8am", page.BreadContent)
		repo.AssertExpectations(t)
	})

	t.Run("full gallery rejects before uploading", func(t *testing.T) {
		repo := new(MockPageRepository)
		images := new(MockImageIngester)
		svc := NewPageService(repo, images, zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(imaging.MaxGallerySize, 0), nil)

		_, _, err := svc.AddImage(ctx, model.GalleryGeneral, bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrGalleryFull)
		images.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("gallery filled during upload is not saved past the cap", func(t *testing.T) {
		repo := new(MockPageRepository)
		images := new(MockImageIngester)
		svc := NewPageService(repo, images, zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(5, 0), nil).Once()
		repo.On("Get", ctx).Return(pageWith(6, 0), nil).Once()
		images.On("Ingest", ctx, imaging.TargetGeneralGallery, mock.Anything).Return("late.jpg", nil)

		_, _, err := svc.AddImage(ctx, model.GalleryGeneral, bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrGalleryFull)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("upload failure", func(t *testing.T) {
		repo := new(MockPageRepository)
		images := new(MockImageIngester)
		svc := NewPageService(repo, images, zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(0, 0), nil)
		images.On("Ingest", ctx, imaging.TargetGeneralGallery, mock.Anything).Return("", model.ErrUploadFailed)

		_, _, err := svc.AddImage(ctx, model.GalleryGeneral, bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrUploadFailed)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown gallery", func(t *testing.T) {
		svc := NewPageService(new(MockPageRepository), new(MockImageIngester), zerolog.Nop())

		_, _, err := svc.AddImage(ctx, model.Gallery("kitchen"), bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrInvalidGallery)
	})

	t.Run("save failure", func(t *testing.T) {
		repo := new(MockPageRepository)
		images := new(MockImageIngester)
		svc := NewPageService(repo, images, zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(0, 0), nil)
		images.On("Ingest", ctx, imaging.TargetGeneralGallery, mock.Anything).Return("a.jpg", nil)
		repo.On("Save", ctx, mock.Anything).Return(errors.New("connection refused"))

		_, _, err := svc.AddImage(ctx, model.GalleryGeneral, bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrPersistFailed)
	})
}

func TestPageService_RemoveImage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		index     int
		expectErr error
		expected  []string
	}{
		{name: "first", index: 0, expected: []string{"general-1.jpg", "general-2.jpg"}},
		{name: "middle", index: 1, expected: []string{"general-0.jpg", "general-2.jpg"}},
		{name: "last", index: 2, expected: []string{"general-0.jpg", "general-1.jpg"}},
		{name: "out of range", index: 3, expectErr: model.ErrGalleryIndex},
		{name: "negative", index: -1, expectErr: model.ErrGalleryIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPageRepository)
			svc := NewPageService(repo, new(MockImageIngester), zerolog.Nop())

			repo.On("Get", ctx).Return(pageWith(3, 2), nil)
			if tt.expectErr == nil {
				repo.On("Save", ctx, mock.Anything).Return(nil)
			}

			page, err := svc.RemoveImage(ctx, model.GalleryGeneral, tt.index)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page.ImageURLs)
			assert.Len(t, page.BreadImageURLs, 2)
		})
	}
}

func TestPageService_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces one gallery", func(t *testing.T) {
		repo := new(MockPageRepository)
		svc := NewPageService(repo, new(MockImageIngester), zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(3, 2), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		page, err := svc.Publish(ctx, model.GalleryGeneral, &model.PageSectionRequest{
			Content:   "Closed Mondays",
			ImageURLs: []string{"x.jpg"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Closed Mondays", page.Content)
		assert.Equal(t, []string{"x.jpg"}, page.ImageURLs)
		assert.Equal(t, "Sourdough from 8am", page.BreadContent)
		assert.Len(t, page.BreadImageURLs, 2)
	})

	t.Run("nil list clears", func(t *testing.T) {
		repo := new(MockPageRepository)
		svc := NewPageService(repo, new(MockImageIngester), zerolog.Nop())

		repo.On("Get", ctx).Return(pageWith(1, 2), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		page, err := svc.Publish(ctx, model.GalleryBread, &model.PageSectionRequest{Content: "Rye on Fridays"})
		require.NoError(t, err)
		assert.Equal(t, []string{}, page.BreadImageURLs)
	})

	t.Run("too many images", func(t *testing.T) {
		repo := new(MockPageRepository)
		svc := NewPageService(repo, new(MockImageIngester), zerolog.Nop())

		_, err := svc.Publish(ctx, model.GalleryGeneral, &model.PageSectionRequest{
			ImageURLs: []string{"1", "2", "3", "4", "5", "6", "7"},
		})
		assert.ErrorIs(t, err, model.ErrGalleryFull)
		repo.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("unknown gallery", func(t *testing.T) {
		svc := NewPageService(new(MockPageRepository), new(MockImageIngester), zerolog.Nop())

		_, err := svc.Publish(ctx, model.Gallery(""), &model.PageSectionRequest{})
		assert.ErrorIs(t, err, model.ErrInvalidGallery)
	})
}

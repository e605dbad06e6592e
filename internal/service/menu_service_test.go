package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"deli-admin/internal/catalog"
	"deli-admin/internal/imaging"
	"deli-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedItem() *model.MenuItem {
	return &model.MenuItem{
		ID:          uuid.New(),
		Name:        "Ploughman's",
		Description: "Cheddar, pickle, crusty bread",
		Price:       "8.50",
		DealPrice:   "7.00",
		Section:     model.SectionCafe,
		Category:    "Sandwiches",
		Tags:        []string{"V"},
		IsDeal:      true,
		SortOrder:   4,
		NumberItems: 1,
		ImageURL:    "https://cdn.example.com/menu-images/item.jpg",
		CreatedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestMenuService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		fill        DraftFunc
		insertErr   error
		expectErr   error
		expectCall  bool
		checkRecord func(t *testing.T, item *model.MenuItem)
	}{
		{
			name: "catering never persists a deal",
			fill: func(d *catalog.Draft) error {
				d.Name = "Grazing board"
				d.Price = "120"
				d.Section = model.SectionCatering
				d.IsDeal = true
				return nil
			},
			expectCall: true,
			checkRecord: func(t *testing.T, item *model.MenuItem) {
				assert.False(t, item.IsDeal)
				assert.Equal(t, model.SectionCatering, item.Section)
			},
		},
		{
			name: "unparseable numbers fall back",
			fill: func(d *catalog.Draft) error {
				d.Name = "Scone"
				d.Price = "2.80"
				d.SortOrder = "abc"
				d.NumberItems = ""
				return nil
			},
			expectCall: true,
			checkRecord: func(t *testing.T, item *model.MenuItem) {
				assert.Equal(t, 999, item.SortOrder)
				assert.Equal(t, 1, item.NumberItems)
				assert.Equal(t, model.SectionCafe, item.Section)
				assert.Equal(t, []string{}, item.Tags)
			},
		},
		{
			name: "missing price is rejected before the store",
			fill: func(d *catalog.Draft) error {
				d.Name = "Soup"
				return nil
			},
			expectErr: model.ErrMissingField,
		},
		{
			name: "fill error is returned as is",
			fill: func(d *catalog.Draft) error {
				return model.ErrInvalidJSON
			},
			expectErr: model.ErrInvalidJSON,
		},
		{
			name: "store failure",
			fill: func(d *catalog.Draft) error {
				d.Name = "Soup"
				d.Price = "3.50"
				return nil
			},
			insertErr:  errors.New("connection reset"),
			expectCall: true,
			expectErr:  model.ErrPersistFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMenuItemRepository)
			svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())

			if tt.expectCall {
				repo.On("Insert", ctx, mock.AnythingOfType("*model.MenuItem")).Return(tt.insertErr)
			}

			item, err := svc.Create(ctx, tt.fill)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				require.NotNil(t, item)
				assert.NotEqual(t, uuid.Nil, item.ID)
				tt.checkRecord(t, item)
			}
			if !tt.expectCall {
				repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMenuService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("resubmitting unchanged writes the same record", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())

		existing := storedItem()
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		var written *model.MenuItem
		repo.On("Update", ctx, existing.ID, mock.AnythingOfType("*model.MenuItem")).
			Run(func(args mock.Arguments) { written = args.Get(2).(*model.MenuItem) }).
			Return(nil)

		_, err := svc.Update(ctx, existing.ID, nil)
		require.NoError(t, err)

		expected := *existing
		expected.CreatedAt = time.Time{}
		expected.UpdatedAt = time.Time{}
		require.NotNil(t, written)
		assert.Equal(t, expected, *written)
	})

	t.Run("switching to catering clears the deal", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())

		existing := storedItem()
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Update", ctx, existing.ID, mock.MatchedBy(func(item *model.MenuItem) bool {
			return item.Section == model.SectionCatering && !item.IsDeal && item.DealPrice == "7.00"
		})).Return(nil)

		item, err := svc.Update(ctx, existing.ID, func(d *catalog.Draft) error {
			d.SetSection(model.SectionCatering)
			return nil
		})
		require.NoError(t, err)
		assert.False(t, item.IsDeal)
		repo.AssertExpectations(t)
	})

	t.Run("unknown item", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())

		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, nil)

		_, err := svc.Update(ctx, id, nil)
		assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("row removed between read and write", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())

		existing := storedItem()
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Update", ctx, existing.ID, mock.Anything).Return(model.ErrMenuItemNotFound)

		_, err := svc.Update(ctx, existing.ID, nil)
		assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
		assert.NotErrorIs(t, err, model.ErrPersistFailed)
	})
}

func TestMenuService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		repoErr   error
		expectErr error
	}{
		{name: "deleted"},
		{name: "not found", repoErr: model.ErrMenuItemNotFound, expectErr: model.ErrMenuItemNotFound},
		{name: "store failure", repoErr: errors.New("timeout"), expectErr: model.ErrPersistFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMenuItemRepository)
			svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())
			repo.On("Delete", ctx, id).Return(tt.repoErr)

			err := svc.Delete(ctx, id)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMenuService_ListAndStats(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMenuItemRepository)
	svc := NewMenuService(repo, new(MockImageIngester), zerolog.Nop())

	deli := model.SectionDeli
	repo.On("List", ctx, model.MenuItemFilter{Section: &deli}).Return([]model.MenuItem{*storedItem()}, nil)
	repo.On("CountBySection", ctx).Return(model.SectionStats{
		model.SectionCafe: 3, model.SectionDeli: 1, model.SectionCatering: 0,
	}, nil)

	items, err := svc.List(ctx, &deli)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	bogus := model.Section("bakery")
	_, err = svc.List(ctx, &bogus)
	assert.ErrorIs(t, err, model.ErrInvalidSection)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats[model.SectionCafe])
	assert.Equal(t, 0, stats[model.SectionCatering])

	repo.AssertExpectations(t)
}

func TestMenuService_SetImage(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads then links", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		images := new(MockImageIngester)
		svc := NewMenuService(repo, images, zerolog.Nop())

		existing := storedItem()
		body := bytes.NewReader([]byte("jpeg"))
		url := "https://cdn.example.com/menu-images/item-new.jpg"

		repo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		images.On("Ingest", ctx, imaging.TargetMenuItem, body).Return(url, nil)
		repo.On("Update", ctx, existing.ID, mock.MatchedBy(func(item *model.MenuItem) bool {
			return item.ImageURL == url && item.Name == existing.Name
		})).Return(nil)

		item, err := svc.SetImage(ctx, existing.ID, body)
		require.NoError(t, err)
		assert.Equal(t, url, item.ImageURL)
		repo.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("unknown item skips the upload", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		images := new(MockImageIngester)
		svc := NewMenuService(repo, images, zerolog.Nop())

		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, nil)

		_, err := svc.SetImage(ctx, id, bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
		images.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload failure leaves the item alone", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		images := new(MockImageIngester)
		svc := NewMenuService(repo, images, zerolog.Nop())

		existing := storedItem()
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		images.On("Ingest", ctx, imaging.TargetMenuItem, mock.Anything).Return("", model.ErrUploadFailed)

		_, err := svc.SetImage(ctx, existing.ID, bytes.NewReader(nil))
		assert.ErrorIs(t, err, model.ErrUploadFailed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMenuService_UploadImage(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageIngester)
	svc := NewMenuService(new(MockMenuItemRepository), images, zerolog.Nop())

	images.On("Ingest", ctx, imaging.TargetMenuItem, mock.Anything).Return("https://cdn/x.jpg", nil)

	url, err := svc.UploadImage(ctx, bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.jpg", url)
}

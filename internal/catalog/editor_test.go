package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"deli-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockItemStore is a mock implementation of ItemStore.
type MockItemStore struct {
	mock.Mock
}

func (m *MockItemStore) Insert(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemStore) Update(ctx context.Context, id uuid.UUID, item *model.MenuItem) error {
	args := m.Called(ctx, id, item)
	return args.Error(0)
}

func TestEditor_CreateSuccess(t *testing.T) {
	ctx := context.Background()
	store := new(MockItemStore)
	refreshed := 0
	editor := NewEditor(store, func() { refreshed++ }, zerolog.Nop())

	newID := uuid.New()
	store.On("Insert", ctx, mock.AnythingOfType("*model.MenuItem")).
		Run(func(args mock.Arguments) {
			item := args.Get(1).(*model.MenuItem)
			item.ID = newID
			item.CreatedAt = time.Now()
		}).
		Return(nil)

	editor.OpenNew()
	assert.Equal(t, StateOpen, editor.State())
	assert.Equal(t, ModeNew, editor.Mode())

	d := editor.Draft()
	d.Name = "Soup"
	d.Price = "3.50"
	require.NoError(t, d.ToggleTag("VG"))

	item, err := editor.Submit(ctx)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, newID, item.ID)
	assert.Equal(t, []string{"VG"}, item.Tags)
	assert.Equal(t, 999, item.SortOrder)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, StateClosed, editor.State())
	assert.Equal(t, NewDraft(), *editor.Draft(), "draft resets to defaults")
	store.AssertExpectations(t)
}

func TestEditor_CateringForcesDealOff(t *testing.T) {
	ctx := context.Background()
	store := new(MockItemStore)
	editor := NewEditor(store, nil, zerolog.Nop())

	var persisted *model.MenuItem
	store.On("Insert", ctx, mock.AnythingOfType("*model.MenuItem")).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*model.MenuItem) }).
		Return(nil)

	editor.OpenNew()
	d := editor.Draft()
	d.Name = "Luxury Sandwich Platter"
	d.Price = "£12.50"
	d.IsDeal = true
	d.SetSection(model.SectionCatering)

	_, err := editor.Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.False(t, persisted.IsDeal)
}

func TestEditor_UpdateUnchangedIsIdentical(t *testing.T) {
	ctx := context.Background()
	store := new(MockItemStore)
	editor := NewEditor(store, nil, zerolog.Nop())

	source := model.MenuItem{
		ID:          uuid.New(),
		Name:        "Flat White",
		Description: "Double shot",
		Price:       "3.20",
		DealPrice:   "2.80",
		Section:     model.SectionCafe,
		Category:    "Hot Drinks",
		Tags:        []string{"V", "GF"},
		IsDeal:      true,
		SortOrder:   4,
		NumberItems: 1,
		ImageURL:    "https://cdn.example.com/menu-images/flat-white.jpg",
	}

	var payload *model.MenuItem
	store.On("Update", ctx, source.ID, mock.AnythingOfType("*model.MenuItem")).
		Run(func(args mock.Arguments) { payload = args.Get(2).(*model.MenuItem) }).
		Return(nil)

	editor.OpenExisting(source)
	assert.Equal(t, ModeEdit, editor.Mode())
	assert.False(t, editor.Draft().CustomCategory)

	_, err := editor.Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, source, *payload)
	store.AssertExpectations(t)
}

func TestEditor_StoreFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	store := new(MockItemStore)
	refreshed := false
	editor := NewEditor(store, func() { refreshed = true }, zerolog.Nop())

	store.On("Insert", ctx, mock.AnythingOfType("*model.MenuItem")).
		Return(errors.New("connection reset")).Once()
	store.On("Insert", ctx, mock.AnythingOfType("*model.MenuItem")).
		Return(nil).Once()

	editor.OpenNew()
	d := editor.Draft()
	d.Name = "Brownie"
	d.Price = "2.75"

	item, err := editor.Submit(ctx)
	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, model.ErrPersistFailed)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, StateOpen, editor.State())
	assert.Equal(t, "Brownie", editor.Draft().Name)
	assert.False(t, refreshed)

	item, err = editor.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Brownie", item.Name)
	assert.True(t, refreshed)
	assert.Equal(t, StateClosed, editor.State())
	store.AssertExpectations(t)
}

func TestEditor_UpdateMissingItem(t *testing.T) {
	ctx := context.Background()
	store := new(MockItemStore)
	editor := NewEditor(store, nil, zerolog.Nop())

	item := model.MenuItem{ID: uuid.New(), Name: "Gone", Price: "1", Section: model.SectionDeli}
	store.On("Update", ctx, item.ID, mock.Anything).Return(model.ErrMenuItemNotFound)

	editor.OpenExisting(item)
	_, err := editor.Submit(ctx)

	assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
	assert.Equal(t, StateOpen, editor.State())
}

func TestEditor_SubmitGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("closed editor refuses to submit", func(t *testing.T) {
		store := new(MockItemStore)
		editor := NewEditor(store, nil, zerolog.Nop())

		_, err := editor.Submit(ctx)
		assert.ErrorIs(t, err, model.ErrEditorNotOpen)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("validation failure keeps editor open", func(t *testing.T) {
		store := new(MockItemStore)
		editor := NewEditor(store, nil, zerolog.Nop())
		editor.OpenNew()
		editor.Draft().Name = "No price"

		_, err := editor.Submit(ctx)
		assert.ErrorIs(t, err, model.ErrMissingField)
		assert.Equal(t, StateOpen, editor.State())
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("close discards draft", func(t *testing.T) {
		editor := NewEditor(new(MockItemStore), nil, zerolog.Nop())
		editor.OpenNew()
		editor.Draft().Name = "Scone"

		editor.Close()
		assert.Equal(t, StateClosed, editor.State())
		assert.Empty(t, editor.Draft().Name)
	})
}

func TestEditorState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"deli-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ItemStore is the part of the catalog store the editor writes through.
type ItemStore interface {
	// Insert persists a new item and fills in its identity and timestamps.
	Insert(ctx context.Context, item *model.MenuItem) error

	// Update overwrites the item with the given id. Last write wins.
	Update(ctx context.Context, id uuid.UUID, item *model.MenuItem) error
}

// EditorState is the lifecycle position of an Editor.
type EditorState int

const (
	StateClosed EditorState = iota
	StateOpen
	StateSubmitting
)

func (s EditorState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Mode tells whether an open editor creates or updates an item.
type Mode int

const (
	ModeNew Mode = iota
	ModeEdit
)

// Editor drives a single draft from open to persisted.
// It is not safe for concurrent use.
type Editor struct {
	store     ItemStore
	onRefresh func()
	logger    zerolog.Logger

	state EditorState
	mode  Mode
	id    uuid.UUID
	draft Draft
}

// NewEditor creates a closed editor. onRefresh may be nil; it is called after
// every successful submit.
func NewEditor(store ItemStore, onRefresh func(), logger zerolog.Logger) *Editor {
	return &Editor{
		store:     store,
		onRefresh: onRefresh,
		logger:    logger.With().Str("component", "item-editor").Logger(),
		state:     StateClosed,
		draft:     NewDraft(),
	}
}

// OpenNew opens the editor on a fresh draft.
func (e *Editor) OpenNew() {
	e.mode = ModeNew
	e.id = uuid.Nil
	e.draft = NewDraft()
	e.state = StateOpen
}

// OpenExisting opens the editor on a copy of a stored item.
func (e *Editor) OpenExisting(item model.MenuItem) {
	e.mode = ModeEdit
	e.id = item.ID
	e.draft = DraftFromItem(item)
	e.state = StateOpen
}

// Draft returns the draft being edited. Changes through the pointer are
// what Submit persists.
func (e *Editor) Draft() *Draft {
	return &e.draft
}

// State returns the current lifecycle state.
func (e *Editor) State() EditorState {
	return e.state
}

// Mode returns whether the editor is creating or updating.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Close discards the draft.
func (e *Editor) Close() {
	e.draft = NewDraft()
	e.id = uuid.Nil
	e.state = StateClosed
}

// Submit normalizes the draft and inserts or updates it. On failure the
// draft is kept and the editor stays open for another attempt.
func (e *Editor) Submit(ctx context.Context) (*model.MenuItem, error) {
	if e.state != StateOpen {
		return nil, model.ErrEditorNotOpen
	}
	if err := e.draft.Validate(); err != nil {
		return nil, err
	}

	e.state = StateSubmitting
	record := e.draft.Normalize()

	var err error
	if e.mode == ModeEdit {
		record.ID = e.id
		err = e.store.Update(ctx, e.id, &record)
	} else {
		err = e.store.Insert(ctx, &record)
	}

	if err != nil {
		e.state = StateOpen
		e.logger.Error().
			Err(err).
			Str("item_id", e.id.String()).
			Str("name", record.Name).
			Msg("failed to persist menu item")
		if errors.Is(err, model.ErrMenuItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", model.ErrPersistFailed, err)
	}

	e.logger.Info().
		Str("item_id", record.ID.String()).
		Str("section", string(record.Section)).
		Bool("created", e.mode == ModeNew).
		Msg("menu item saved")

	if e.onRefresh != nil {
		e.onRefresh()
	}
	e.Close()

	return &record, nil
}

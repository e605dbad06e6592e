package importer

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"deli-admin/internal/model"

	"github.com/rs/zerolog"
)

// DefaultResetDelay is how long a successful import is reported before the
// importer returns to idle.
const DefaultResetDelay = 3 * time.Second

// BatchStore persists a whole import in one call.
type BatchStore interface {
	// InsertBatch inserts every item or none of them.
	InsertBatch(ctx context.Context, items []model.MenuItem) error
}

// State is the importer's position in idle -> uploading -> success|error.
type State string

const (
	StateIdle      State = "idle"
	StateUploading State = "uploading"
	StateSuccess   State = "success"
	StateError     State = "error"
)

// Status is a snapshot of the importer.
type Status struct {
	State     State     `json:"state"`
	Imported  int       `json:"imported"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Importer turns spreadsheet uploads into a single batch insert.
type Importer struct {
	store      BatchStore
	resetDelay time.Duration
	logger     zerolog.Logger

	mu         sync.Mutex
	status     Status
	generation uint64
	timer      *time.Timer
}

// New creates an idle importer. A non-positive resetDelay uses DefaultResetDelay.
func New(store BatchStore, resetDelay time.Duration, logger zerolog.Logger) *Importer {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Importer{
		store:      store,
		resetDelay: resetDelay,
		logger:     logger.With().Str("component", "csv-importer").Logger(),
		status:     Status{State: StateIdle, UpdatedAt: time.Now()},
	}
}

// Status returns the current state of the importer.
func (i *Importer) Status() Status {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.status
}

// Import parses r and inserts every row as one batch. It returns the
// number of items imported. No partial result is kept on failure.
func (i *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	gen, err := i.begin()
	if err != nil {
		return 0, err
	}

	items, err := Parse(r)
	if err != nil {
		i.fail(gen, err)
		return 0, fmt.Errorf("%w: %w", model.ErrImportParse, err)
	}

	if err := i.store.InsertBatch(ctx, items); err != nil {
		i.fail(gen, err)
		return 0, fmt.Errorf("%w: %w", model.ErrPersistFailed, err)
	}

	i.succeed(gen, len(items))
	return len(items), nil
}

func (i *Importer) begin() (uint64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.status.State == StateUploading {
		return 0, model.ErrImportInProgress
	}
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}

	i.generation++
	i.status = Status{State: StateUploading, UpdatedAt: time.Now()}
	return i.generation, nil
}

func (i *Importer) fail(gen uint64, cause error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if gen != i.generation {
		return
	}
	i.status = Status{State: StateError, UpdatedAt: time.Now()}
	i.logger.Error().Err(cause).Msg("menu import failed")
}

func (i *Importer) succeed(gen uint64, count int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if gen != i.generation {
		return
	}
	i.status = Status{State: StateSuccess, Imported: count, UpdatedAt: time.Now()}
	i.logger.Info().Int("imported", count).Msg("menu import completed")

	i.timer = time.AfterFunc(i.resetDelay, func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		if gen == i.generation && i.status.State == StateSuccess {
			i.status = Status{State: StateIdle, UpdatedAt: time.Now()}
		}
	})
}

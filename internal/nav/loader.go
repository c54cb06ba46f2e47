package nav

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Loader serializes concurrent layout loads so only the most recent request
// reaches the apply callback. Starting a new load cancels the one in flight;
// a superseded or cancelled load is dropped without surfacing an error.
type Loader struct {
	service Service
	apply   func(LoadResult, error)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewLoader constructs a loader. The apply callback receives the result of
// the winning load; it is never invoked for a load that lost the race.
func NewLoader(service Service, apply func(LoadResult, error)) *Loader {
	return &Loader{service: service, apply: apply}
}

// Load starts a reconciliation fetch for the user, cancelling any load still
// in flight. It blocks until this load finishes or is superseded.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.mu.Unlock()

	result, err := l.service.Load(loadCtx, userID)

	l.mu.Lock()
	current := l.seq == seq
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()

	cancelled := loadCtx.Err() != nil
	cancel()

	if !current {
		return
	}
	if err != nil && (errors.Is(err, context.Canceled) || cancelled) {
		return
	}
	if l.apply != nil {
		l.apply(result, err)
	}
}

// Stop cancels any load in flight without starting a new one.
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
	l.mu.Unlock()
}

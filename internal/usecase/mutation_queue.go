package usecase

import (
	"context"
	"errors"
	"log"
	"reflect"
	"sync"
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"
)

var ErrOrderReadOnly = errors.New("order is read-only")

const DefaultFlushWindow = 2 * time.Second

// stoppable is the slice of *time.Timer the queue needs; tests inject their
// own factory and fire the callback by hand instead of waiting out the
// debounce window.
type stoppable interface {
	Stop() bool
}

type timerFactory func(d time.Duration, fn func()) stoppable

func defaultTimerFactory(d time.Duration, fn func()) stoppable {
	return time.AfterFunc(d, fn)
}

// MutationQueue buffers field edits for one open order-execution session.
//
// Writes are applied to the in-memory record synchronously (read-your-writes)
// and coalesced per field into a pending map: a second write to the same
// field before a flush overwrites the first. A debounce timer re-arms on
// every non-immediate write; immediate writes cancel it and flush
// synchronously. A failed flush keeps the pending map so the next trigger
// retries the same coalesced values (at-least-once; field assignments are
// idempotent, so duplicates are harmless).

type MutationQueue struct {
	store   interfaces.IOrderStore
	orderID int64

	mu        sync.Mutex
	record    *entities.InspectionRecord
	pending   map[string]any
	timer     stoppable
	window    time.Duration
	newTimer  timerFactory
	readOnly  bool
	inFlight  bool
	flushDone chan struct{}
}

func NewMutationQueue(store interfaces.IOrderStore, record *entities.InspectionRecord, window time.Duration) *MutationQueue {
	if window <= 0 {
		window = DefaultFlushWindow
	}
	return &MutationQueue{
		store:    store,
		orderID:  record.OrderID,
		record:   record,
		pending:  make(map[string]any),
		window:   window,
		newTimer: defaultTimerFactory,
	}
}

// SetReadOnly switches the single write gate for the whole session. Closed
// orders stay navigable for review, but every field write is rejected here
// rather than at each call site.
func (q *MutationQueue) SetReadOnly(readOnly bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.readOnly = readOnly
}

func (q *MutationQueue) ReadOnly() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.readOnly
}

// PendingCount is the number of unflushed fields, surfaced to the client as
// the passive "saving/saved" indicator.
func (q *MutationQueue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// SetField records one field edit. Persistence failures never propagate from
// here: an immediate write that fails to flush stays pending and is retried
// on the next trigger, so navigation is never blocked by a flaky connection.
// The returned error is limited to rejected writes (read-only session,
// unknown field, bad value).
func (q *MutationQueue) SetField(ctx context.Context, name string, value any, immediate bool) error {
	q.mu.Lock()
	if q.readOnly {
		q.mu.Unlock()
		return ErrOrderReadOnly
	}
	if err := q.record.ApplyField(name, value); err != nil {
		q.mu.Unlock()
		return err
	}
	q.pending[name] = value

	if !immediate && !entities.ImmediateFields[name] {
		q.armLocked()
		q.mu.Unlock()
		return nil
	}
	q.mu.Unlock()

	if err := q.Flush(ctx); err != nil {
		log.Printf("[queue] immediate flush failed order_id=%d field=%s err=%v (will retry)", q.orderID, name, err)
	}
	return nil
}

// Flush drains the coalesced map and returns only once every pending value
// has been acknowledged by the store, or an attempt fails. An attempt already
// in flight is awaited first and values that land while a request is on the
// wire are re-sent before returning, so callers that need the save-before-
// close ordering (finalization) never race an unacknowledged batch.
func (q *MutationQueue) Flush(ctx context.Context) error {
	for {
		q.mu.Lock()
		if q.inFlight {
			done := q.flushDone
			q.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return nil
		}
		q.mu.Unlock()

		if err := q.flushOnce(ctx); err != nil {
			return err
		}
	}
}

// flushOnce sends one coalesced batch and clears it only on acknowledged
// success. No-op when the map is empty or another attempt is in flight: the
// debounce timer calls this directly, so a firing timer never piles a second
// request onto the wire.
func (q *MutationQueue) flushOnce(ctx context.Context) error {
	q.mu.Lock()
	if q.inFlight || len(q.pending) == 0 {
		q.mu.Unlock()
		return nil
	}
	q.inFlight = true
	q.flushDone = make(chan struct{})
	q.stopTimerLocked()
	batch := make(map[string]any, len(q.pending))
	for k, v := range q.pending {
		batch[k] = v
	}
	q.mu.Unlock()

	err := q.store.UpdateFields(ctx, q.orderID, batch)

	q.mu.Lock()
	q.inFlight = false
	close(q.flushDone)
	if err == nil {
		// Clear only values that did not change while the request was in
		// flight; a concurrent overwrite must survive for the next flush.
		for k, sent := range batch {
			if cur, ok := q.pending[k]; ok && reflect.DeepEqual(cur, sent) {
				delete(q.pending, k)
			}
		}
		if len(q.pending) > 0 && !q.readOnly {
			// Survivors need their own trigger; the write that enqueued them
			// may have found the timer already stopped by this attempt.
			q.armLocked()
		}
	} else if !q.readOnly {
		q.armLocked()
	}
	q.mu.Unlock()

	if err != nil {
		log.Printf("[queue] flush failed order_id=%d fields=%d err=%v (retained for retry)", q.orderID, len(batch), err)
		return err
	}
	return nil
}

// armLocked (re)arms the debounce timer. Callers hold q.mu.
func (q *MutationQueue) armLocked() {
	q.stopTimerLocked()
	q.timer = q.newTimer(q.window, func() {
		// Timer flushes are fire-and-forget; failures are retained and
		// logged inside flushOnce.
		_ = q.flushOnce(context.Background())
	})
}

func (q *MutationQueue) stopTimerLocked() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

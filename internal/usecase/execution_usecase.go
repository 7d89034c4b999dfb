package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
	ErrSessionNotOpen = errors.New("execution session not open")
)

// FieldWrite is one field edit submitted by the device. Immediate asks for a
// synchronous flush; checklist answers and closure fields flush immediately
// regardless (see entities.ImmediateFields).
type FieldWrite struct {
	Name      string
	Value     any
	Immediate bool
}

// SessionState is the snapshot the device renders after every interaction.
type SessionState struct {
	Record        entities.InspectionRecord
	Step          entities.WorkflowStep
	Suggestion    entities.DecisionOutcome
	Askable       []entities.Question
	ReadOnly      bool
	PendingWrites int
	EvidenceCount int
}

// IExecutionUseCase is the order-execution workflow façade consumed by the
// HTTP layer.

type IExecutionUseCase interface {
	OpenSession(ctx context.Context, orderID int64) (SessionState, error)
	GetSession(ctx context.Context, orderID int64) (SessionState, error)
	SetFields(ctx context.Context, orderID int64, writes []FieldWrite) (SessionState, error)
	Advance(ctx context.Context, orderID int64) (SessionState, error)
	Back(ctx context.Context, orderID int64) (SessionState, error)
	Finalize(ctx context.Context, orderID int64) (SessionState, error)
}

// orderSession is the in-memory state of one open order: the record snapshot,
// its mutation queue and its workflow controller. One agent, one device, one
// session per order by convention; the registry is not a distributed lock.
type orderSession struct {
	record        *entities.InspectionRecord
	queue         *MutationQueue
	controller    *WorkflowController
	evidenceCount int
}

type ExecutionUseCase struct {
	store     interfaces.IOrderStore
	evidence  interfaces.IEvidenceStore
	finalizer *Finalizer
	window    time.Duration

	mu       sync.Mutex
	sessions map[int64]*orderSession
}

var _ IExecutionUseCase = (*ExecutionUseCase)(nil)

func NewExecutionUseCase(store interfaces.IOrderStore, evidence interfaces.IEvidenceStore, geo interfaces.IGeolocationProvider, window, geoTimeout time.Duration) *ExecutionUseCase {
	return &ExecutionUseCase{
		store:     store,
		evidence:  evidence,
		finalizer: NewFinalizer(store, geo, geoTimeout),
		window:    window,
		sessions:  make(map[int64]*orderSession),
	}
}

// OpenSession reads the record from the Order Store and builds (or rebuilds)
// the session. Reopening an order re-reads the now-current persisted record,
// so a session abandoned mid-flush simply resumes from whatever landed.
func (u *ExecutionUseCase) OpenSession(ctx context.Context, orderID int64) (SessionState, error) {
	if orderID <= 0 {
		return SessionState{}, ErrInvalidOrderID
	}

	rec, err := u.store.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[execution][usecase] order read failed order_id=%d err=%v", orderID, err)
		return SessionState{}, err
	}
	if rec.OrderID == 0 {
		return SessionState{}, ErrOrderNotFound
	}

	queue := NewMutationQueue(u.store, &rec, u.window)
	queue.SetReadOnly(rec.Status.Closed())
	controller := NewWorkflowController(&rec, queue)

	count := 0
	if items, err := u.evidence.ListByOrderID(ctx, orderID); err != nil {
		// Non-fatal on open; the count is refreshed before finalize.
		log.Printf("[execution][usecase] evidence list failed order_id=%d err=%v", orderID, err)
	} else {
		count = len(items)
	}

	s := &orderSession{record: &rec, queue: queue, controller: controller, evidenceCount: count}
	u.mu.Lock()
	u.sessions[orderID] = s
	u.mu.Unlock()

	log.Printf("[execution][usecase] session opened order_id=%d step=%d status=%q read_only=%t", orderID, rec.CurrentStep, rec.Status, queue.ReadOnly())
	return u.snapshot(s), nil
}

func (u *ExecutionUseCase) GetSession(ctx context.Context, orderID int64) (SessionState, error) {
	s, err := u.session(orderID)
	if err != nil {
		return SessionState{}, err
	}
	if items, err := u.evidence.ListByOrderID(ctx, orderID); err == nil {
		s.evidenceCount = len(items)
	}
	return u.snapshot(s), nil
}

func (u *ExecutionUseCase) SetFields(ctx context.Context, orderID int64, writes []FieldWrite) (SessionState, error) {
	s, err := u.session(orderID)
	if err != nil {
		return SessionState{}, err
	}
	for _, w := range writes {
		if err := s.queue.SetField(ctx, w.Name, w.Value, w.Immediate); err != nil {
			return SessionState{}, err
		}
	}
	return u.snapshot(s), nil
}

func (u *ExecutionUseCase) Advance(ctx context.Context, orderID int64) (SessionState, error) {
	s, err := u.session(orderID)
	if err != nil {
		return SessionState{}, err
	}
	if _, err := s.controller.Advance(ctx); err != nil && !errors.Is(err, ErrOrderReadOnly) {
		return SessionState{}, err
	}
	return u.snapshot(s), nil
}

func (u *ExecutionUseCase) Back(ctx context.Context, orderID int64) (SessionState, error) {
	s, err := u.session(orderID)
	if err != nil {
		return SessionState{}, err
	}
	if _, err := s.controller.Back(ctx); err != nil && !errors.Is(err, ErrOrderReadOnly) {
		return SessionState{}, err
	}
	return u.snapshot(s), nil
}

// Finalize refreshes the evidence count, runs the validator and, on the
// "incomplete installation data" failure, redirects the workflow to the
// Installation step before surfacing the error.
func (u *ExecutionUseCase) Finalize(ctx context.Context, orderID int64) (SessionState, error) {
	s, err := u.session(orderID)
	if err != nil {
		return SessionState{}, err
	}

	items, err := u.evidence.ListByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[execution][usecase] evidence list failed before finalize order_id=%d err=%v", orderID, err)
		return SessionState{}, err
	}
	s.evidenceCount = len(items)

	if _, err := u.finalizer.Finalize(ctx, s.record, s.queue, s.evidenceCount); err != nil {
		if errors.Is(err, ErrIncompleteInstallation) {
			if _, goErr := s.controller.GoTo(ctx, entities.StepInstallation); goErr != nil {
				log.Printf("[execution][usecase] redirect to installation failed order_id=%d err=%v", orderID, goErr)
			}
		}
		return u.snapshot(s), err
	}

	// Terminal status reached: the session flips to review mode.
	s.queue.SetReadOnly(s.record.Status.Closed())
	return u.snapshot(s), nil
}

func (u *ExecutionUseCase) session(orderID int64) (*orderSession, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[orderID]
	if !ok {
		return nil, ErrSessionNotOpen
	}
	return s, nil
}

func (u *ExecutionUseCase) snapshot(s *orderSession) SessionState {
	return SessionState{
		Record:        *s.record,
		Step:          s.record.CurrentStep,
		Suggestion:    Suggest(*s.record),
		Askable:       AskableQuestions(*s.record),
		ReadOnly:      s.queue.ReadOnly(),
		PendingWrites: s.queue.PendingCount(),
		EvidenceCount: s.evidenceCount,
	}
}

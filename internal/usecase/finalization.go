package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"
)

// Finalization precondition failures, in user-facing terms. All of them are
// recoverable: the agent fills in the missing item and retries.
var (
	ErrIncompleteInstallation = errors.New("incomplete installation data")
	ErrMissingClosureMotive   = errors.New("missing closure motive")
	ErrInsufficientEvidence   = errors.New("insufficient evidence")
	ErrSignatureRequired      = errors.New("signature required")
)

// ErrStatusTransitionFailed wraps an Order Store rejection of the terminal
// status update. Fatal to the finalize call, but local state is kept so the
// agent can retry without re-entering data.
var ErrStatusTransitionFailed = errors.New("status transition failed")

// ErrFlushFailed means the pre-transition flush could not be acknowledged.
// The queue retains the coalesced values, so retrying finalize is safe.
var ErrFlushFailed = errors.New("pending changes could not be saved")

const MinEvidenceCount = 2

const DefaultGeoTimeout = 5 * time.Second

// Finalizer checks completion preconditions and performs the single terminal
// status transition of an order.

type Finalizer struct {
	store      interfaces.IOrderStore
	geo        interfaces.IGeolocationProvider
	geoTimeout time.Duration
}

func NewFinalizer(store interfaces.IOrderStore, geo interfaces.IGeolocationProvider, geoTimeout time.Duration) *Finalizer {
	if geoTimeout <= 0 {
		geoTimeout = DefaultGeoTimeout
	}
	return &Finalizer{store: store, geo: geo, geoTimeout: geoTimeout}
}

// Finalize validates the record, captures coordinates best-effort, flushes
// the queue and requests the terminal status transition.
//
// Preconditions are checked in order and the first failure wins:
//  1. normal path (suggestion 8): new meter serial and reading present,
//  2. early-exit path: closure motive set,
//  3. at least MinEvidenceCount evidence items,
//  4. signature present, except for "no resident, first visit".
//
// Ordering guarantee: the queue flush is awaited before the status update,
// so field values are durably stored before the order is marked closed.
func (f *Finalizer) Finalize(ctx context.Context, rec *entities.InspectionRecord, queue *MutationQueue, evidenceCount int) (entities.OrderStatus, error) {
	outcome := Suggest(*rec)

	if !outcome.EarlyExit() {
		if rec.NewMeterSerial == "" || rec.NewReading == nil {
			return "", ErrIncompleteInstallation
		}
	} else if rec.ClosureMotive == nil {
		return "", ErrMissingClosureMotive
	}

	if evidenceCount < MinEvidenceCount {
		return "", ErrInsufficientEvidence
	}

	// A first-visit "no resident" closure cannot have obtained a signature;
	// every other closure needs one.
	firstVisitNoResident := (rec.ClosureMotive != nil && *rec.ClosureMotive == int(entities.OutcomeSecondVisit)) ||
		(rec.ClosureMotive == nil && outcome == entities.OutcomeSecondVisit)
	if !firstVisitNoResident && !rec.HasSignature() {
		return "", ErrSignatureRequired
	}

	if !rec.HasCoordinates() && f.geo != nil {
		pos, err := f.geo.CurrentPosition(ctx, f.geoTimeout)
		if err != nil {
			log.Printf("[finalize] geolocation unavailable order_id=%d err=%v (proceeding without coordinates)", rec.OrderID, err)
		} else {
			_ = queue.SetField(ctx, entities.FieldLatitude, pos.Latitude, false)
			_ = queue.SetField(ctx, entities.FieldLongitude, pos.Longitude, false)
		}
	}

	now := time.Now().UTC()
	var target entities.OrderStatus
	if rec.ClosureMotive != nil && *rec.ClosureMotive == int(entities.OutcomeSecondVisit) {
		target = entities.StatusSecondVisitPending
		if err := queue.SetField(ctx, entities.FieldFirstVisitAt, now.Format(time.RFC3339Nano), false); err != nil {
			return "", err
		}
	} else {
		target = entities.StatusClosedByAgent
		if err := queue.SetField(ctx, entities.FieldFinalizedAt, now.Format(time.RFC3339Nano), false); err != nil {
			return "", err
		}
	}

	if err := queue.Flush(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFlushFailed, err)
	}

	log.Printf("[finalize] requesting status transition order_id=%d status=%q", rec.OrderID, target)
	if err := f.store.SetStatus(ctx, rec.OrderID, target); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStatusTransitionFailed, err)
	}

	rec.Status = target
	log.Printf("[finalize] order finalized order_id=%d status=%q motive=%v", rec.OrderID, target, rec.ClosureMotive)
	return target, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"troca_medidores/internal/domain/entities"
	mock_interfaces "troca_medidores/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testSignature = "c2lnbmF0dXJlLXN0cm9rZXM=" // base64 payload

func float64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int             { return &i }

// completedRecord is a finished normal-path visit short of finalization.
func completedRecord() entities.InspectionRecord {
	rec := cleanPathRecord()
	rec.OrderID = 42
	rec.CurrentStep = entities.StepClosing
	rec.NewMeterSerial = "G4X-0042"
	rec.NewReading = float64Ptr(103.7)
	rec.Signature = testSignature
	rec.Latitude = float64Ptr(-23.561)
	rec.Longitude = float64Ptr(-46.655)
	return rec
}

type finalizeFixture struct {
	store *mock_interfaces.MockIOrderStore
	geo   *mock_interfaces.MockIGeolocationProvider
	f     *Finalizer
	queue *MutationQueue
}

func newFinalizeFixture(t *testing.T, rec *entities.InspectionRecord) *finalizeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := mock_interfaces.NewMockIOrderStore(ctrl)
	geo := mock_interfaces.NewMockIGeolocationProvider(ctrl)
	queue := NewMutationQueue(store, rec, time.Second)
	withFakeTimer(queue)
	return &finalizeFixture{
		store: store,
		geo:   geo,
		f:     NewFinalizer(store, geo, time.Second),
		queue: queue,
	}
}

func TestFinalizer_Preconditions(t *testing.T) {
	t.Run("normal path requires serial and reading", func(t *testing.T) {
		rec := completedRecord()
		rec.NewMeterSerial = ""
		fx := newFinalizeFixture(t, &rec)

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if !errors.Is(err, ErrIncompleteInstallation) {
			t.Fatalf("expected ErrIncompleteInstallation, got %v", err)
		}
	})

	t.Run("normal path requires the reading too", func(t *testing.T) {
		rec := completedRecord()
		rec.NewReading = nil
		fx := newFinalizeFixture(t, &rec)

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if !errors.Is(err, ErrIncompleteInstallation) {
			t.Fatalf("expected ErrIncompleteInstallation, got %v", err)
		}
	})

	t.Run("early exit requires a closure motive", func(t *testing.T) {
		visited := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
		rec := entities.InspectionRecord{
			OrderID:         42,
			ResidentPresent: entities.AnswerNo,
			FirstVisitAt:    &visited,
		}
		fx := newFinalizeFixture(t, &rec)

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if !errors.Is(err, ErrMissingClosureMotive) {
			t.Fatalf("expected ErrMissingClosureMotive, got %v", err)
		}
	})

	t.Run("early exit does not demand installation data", func(t *testing.T) {
		rec := entities.InspectionRecord{
			OrderID:             42,
			ResidentPresent:     entities.AnswerYes,
			ClientAcceptsChange: entities.AnswerNo,
			ClosureMotive:       intPtr(int(entities.OutcomeRefused)),
			Signature:           testSignature,
			Latitude:            float64Ptr(-23.561),
			Longitude:           float64Ptr(-46.655),
		}
		fx := newFinalizeFixture(t, &rec)

		fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).Return(nil)
		fx.store.EXPECT().SetStatus(gomock.Any(), int64(42), entities.StatusClosedByAgent).Return(nil)

		status, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.StatusClosedByAgent {
			t.Fatalf("expected %q, got %q", entities.StatusClosedByAgent, status)
		}
	})

	t.Run("evidence below minimum", func(t *testing.T) {
		rec := completedRecord()
		fx := newFinalizeFixture(t, &rec)

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, MinEvidenceCount-1)
		if !errors.Is(err, ErrInsufficientEvidence) {
			t.Fatalf("expected ErrInsufficientEvidence, got %v", err)
		}
	})

	t.Run("signature required on the normal path", func(t *testing.T) {
		rec := completedRecord()
		rec.Signature = "   "
		fx := newFinalizeFixture(t, &rec)

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if !errors.Is(err, ErrSignatureRequired) {
			t.Fatalf("expected ErrSignatureRequired, got %v", err)
		}
	})

	t.Run("first-visit no-resident closure is exempt from the signature", func(t *testing.T) {
		rec := entities.InspectionRecord{
			OrderID:         42,
			ResidentPresent: entities.AnswerNo,
			ClosureMotive:   intPtr(int(entities.OutcomeSecondVisit)),
			Latitude:        float64Ptr(-23.561),
			Longitude:       float64Ptr(-46.655),
		}
		fx := newFinalizeFixture(t, &rec)

		fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, fields map[string]any) error {
				if _, ok := fields[entities.FieldFirstVisitAt]; !ok {
					t.Fatalf("expected first_visit_at in batch, got %v", fields)
				}
				return nil
			},
		)
		fx.store.EXPECT().SetStatus(gomock.Any(), int64(42), entities.StatusSecondVisitPending).Return(nil)

		status, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.StatusSecondVisitPending {
			t.Fatalf("expected %q, got %q", entities.StatusSecondVisitPending, status)
		}
		if rec.FirstVisitAt == nil {
			t.Fatalf("expected first visit timestamp on the record")
		}
		if rec.Status != entities.StatusSecondVisitPending {
			t.Fatalf("record status not updated: %q", rec.Status)
		}
	})

	t.Run("precondition order: installation before evidence", func(t *testing.T) {
		rec := completedRecord()
		rec.NewMeterSerial = ""
		fx := newFinalizeFixture(t, &rec)

		// Both installation data and evidence are missing; the earlier check
		// must win so the agent is sent to the right screen.
		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 0)
		if !errors.Is(err, ErrIncompleteInstallation) {
			t.Fatalf("expected ErrIncompleteInstallation, got %v", err)
		}
	})
}

func TestFinalizer_Finalize(t *testing.T) {
	t.Run("normal path closes the order", func(t *testing.T) {
		rec := completedRecord()
		fx := newFinalizeFixture(t, &rec)

		gomock.InOrder(
			fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ int64, fields map[string]any) error {
					if _, ok := fields[entities.FieldFinalizedAt]; !ok {
						t.Fatalf("expected finalized_at in batch, got %v", fields)
					}
					return nil
				},
			),
			fx.store.EXPECT().SetStatus(gomock.Any(), int64(42), entities.StatusClosedByAgent).Return(nil),
		)

		status, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.StatusClosedByAgent {
			t.Fatalf("expected %q, got %q", entities.StatusClosedByAgent, status)
		}
		if rec.FinalizedAt == nil {
			t.Fatalf("expected finalized timestamp on the record")
		}
	})

	t.Run("missing coordinates are captured before closing", func(t *testing.T) {
		rec := completedRecord()
		rec.Latitude, rec.Longitude = nil, nil
		fx := newFinalizeFixture(t, &rec)

		fx.geo.EXPECT().CurrentPosition(gomock.Any(), time.Second).Return(entities.Position{Latitude: -23.5, Longitude: -46.6}, nil)
		fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, fields map[string]any) error {
				if fields[entities.FieldLatitude] != -23.5 || fields[entities.FieldLongitude] != -46.6 {
					t.Fatalf("expected coordinates in batch, got %v", fields)
				}
				return nil
			},
		)
		fx.store.EXPECT().SetStatus(gomock.Any(), int64(42), entities.StatusClosedByAgent).Return(nil)

		if _, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Latitude == nil || *rec.Latitude != -23.5 {
			t.Fatalf("expected latitude applied to record, got %v", rec.Latitude)
		}
	})

	t.Run("geolocation failure does not block finalization", func(t *testing.T) {
		rec := completedRecord()
		rec.Latitude, rec.Longitude = nil, nil
		fx := newFinalizeFixture(t, &rec)

		fx.geo.EXPECT().CurrentPosition(gomock.Any(), time.Second).Return(entities.Position{}, errors.New("gps timeout"))
		fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).Return(nil)
		fx.store.EXPECT().SetStatus(gomock.Any(), int64(42), entities.StatusClosedByAgent).Return(nil)

		if _, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("flush failure aborts before the status transition", func(t *testing.T) {
		rec := completedRecord()
		fx := newFinalizeFixture(t, &rec)

		// The timestamp write is immediate and retries via Flush; both
		// attempts fail and SetStatus must never be reached.
		fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).Return(errors.New("network down")).Times(2)

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if !errors.Is(err, ErrFlushFailed) {
			t.Fatalf("expected ErrFlushFailed, got %v", err)
		}
		if fx.queue.PendingCount() == 0 {
			t.Fatalf("failed flush must retain the batch for retry")
		}
	})

	t.Run("status transition failure keeps local state", func(t *testing.T) {
		rec := completedRecord()
		rec.Status = entities.StatusInProgress
		fx := newFinalizeFixture(t, &rec)

		fx.store.EXPECT().UpdateFields(gomock.Any(), int64(42), gomock.Any()).Return(nil)
		fx.store.EXPECT().SetStatus(gomock.Any(), int64(42), entities.StatusClosedByAgent).Return(errors.New("backend rejected"))

		_, err := fx.f.Finalize(context.Background(), &rec, fx.queue, 3)
		if !errors.Is(err, ErrStatusTransitionFailed) {
			t.Fatalf("expected ErrStatusTransitionFailed, got %v", err)
		}
		if rec.Status != entities.StatusInProgress {
			t.Fatalf("status must not change on failure, got %q", rec.Status)
		}
	})
}

package entities

import (
	"errors"
	"testing"
	"time"
)

func TestInspectionRecord_ApplyField(t *testing.T) {
	t.Run("checklist answer accepts lowercase and trims", func(t *testing.T) {
		var r InspectionRecord
		if err := r.ApplyField("resident_present", " yes "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ResidentPresent != AnswerYes {
			t.Fatalf("expected YES, got %q", r.ResidentPresent)
		}
	})

	t.Run("null clears an answer", func(t *testing.T) {
		r := InspectionRecord{ResidentPresent: AnswerYes}
		if err := r.ApplyField("resident_present", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ResidentPresent != AnswerUnanswered {
			t.Fatalf("expected cleared answer, got %q", r.ResidentPresent)
		}
	})

	t.Run("json numbers arrive as float64", func(t *testing.T) {
		var r InspectionRecord
		if err := r.ApplyField(FieldNewReading, float64(103.7)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.NewReading == nil || *r.NewReading != 103.7 {
			t.Fatalf("unexpected reading: %v", r.NewReading)
		}
		if err := r.ApplyField(FieldClosureMotive, float64(4)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ClosureMotive == nil || *r.ClosureMotive != 4 {
			t.Fatalf("unexpected motive: %v", r.ClosureMotive)
		}
	})

	t.Run("hose type is normalized", func(t *testing.T) {
		var r InspectionRecord
		if err := r.ApplyField(FieldFlexibleHoseType, " dinatecnica "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.FlexibleHoseType != HoseDinatecnica {
			t.Fatalf("unexpected hose type: %q", r.FlexibleHoseType)
		}
	})

	t.Run("timestamps parse rfc3339", func(t *testing.T) {
		var r InspectionRecord
		if err := r.ApplyField(FieldFirstVisitAt, "2026-08-20T10:00:00Z"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
		if r.FirstVisitAt == nil || !r.FirstVisitAt.Equal(want) {
			t.Fatalf("unexpected timestamp: %v", r.FirstVisitAt)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		var r InspectionRecord
		if err := r.ApplyField("favorite_color", "blue"); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("bad values", func(t *testing.T) {
		var r InspectionRecord
		cases := []struct {
			name  string
			value any
		}{
			{"valve_leak", "MAYBE"},
			{"valve_leak", 12},
			{FieldNewReading, "abc"},
			{FieldCurrentStep, nil},
			{FieldFirstVisitAt, "yesterday"},
		}
		for _, tc := range cases {
			if err := r.ApplyField(tc.name, tc.value); !errors.Is(err, ErrInvalidFieldValue) {
				t.Fatalf("%s=%v: expected ErrInvalidFieldValue, got %v", tc.name, tc.value, err)
			}
		}
	})
}

func TestInspectionRecord_HasSignature(t *testing.T) {
	cases := []struct {
		name      string
		signature string
		want      bool
	}{
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"base64 payload", "c2lnbmF0dXJl", true},
		{"raw strokes", "not-base64!!", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := InspectionRecord{Signature: tc.signature}
			if got := r.HasSignature(); got != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestOrderStatus_Closed(t *testing.T) {
	closed := map[OrderStatus]bool{
		StatusAssigned:           false,
		StatusInProgress:         false,
		StatusSecondVisitPending: false,
		StatusClosedByAgent:      true,
		StatusVerified:           true,
	}
	for status, want := range closed {
		if got := status.Closed(); got != want {
			t.Fatalf("%q: expected Closed %t, got %t", status, want, got)
		}
	}
}

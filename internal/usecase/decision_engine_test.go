package usecase

import (
	"testing"
	"time"

	"troca_medidores/internal/domain/entities"
)

// cleanPathRecord answers every question the way that leads to installation.
func cleanPathRecord() entities.InspectionRecord {
	return entities.InspectionRecord{
		OrderID:                  1,
		ResidentPresent:          entities.AnswerYes,
		ClientAcceptsChange:      entities.AnswerYes,
		MeterSerialMatches:       entities.AnswerYes,
		MeterDamaged:             entities.AnswerNo,
		HasGrateOrWeld:           entities.AnswerNo,
		LeakOutsideZone:          entities.AnswerNo,
		ValveLeak:                entities.AnswerNo,
		ValveOperable:            entities.AnswerYes,
		LeakPersistsAfterValveOp: entities.AnswerNo,
	}
}

func TestSuggest_RuleOutcomes(t *testing.T) {
	firstVisit := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		mutate  func(r *entities.InspectionRecord)
		outcome entities.DecisionOutcome
	}{
		{
			name: "no resident first visit",
			mutate: func(r *entities.InspectionRecord) {
				r.ResidentPresent = entities.AnswerNo
			},
			outcome: entities.OutcomeSecondVisit,
		},
		{
			name: "no resident second visit",
			mutate: func(r *entities.InspectionRecord) {
				r.ResidentPresent = entities.AnswerNo
				r.FirstVisitAt = &firstVisit
			},
			outcome: entities.OutcomeNoResidentFinal,
		},
		{
			name: "client refuses",
			mutate: func(r *entities.InspectionRecord) {
				r.ClientAcceptsChange = entities.AnswerNo
			},
			outcome: entities.OutcomeRefused,
		},
		{
			name: "serial mismatch",
			mutate: func(r *entities.InspectionRecord) {
				r.MeterSerialMatches = entities.AnswerNo
			},
			outcome: entities.OutcomeSerialMismatch,
		},
		{
			name: "damaged meter",
			mutate: func(r *entities.InspectionRecord) {
				r.MeterDamaged = entities.AnswerYes
			},
			outcome: entities.OutcomeDamagedMeter,
		},
		{
			name: "fixed grate obstruction",
			mutate: func(r *entities.InspectionRecord) {
				r.HasGrateOrWeld = entities.AnswerYes
				r.GrateRemovable = entities.AnswerNo
			},
			outcome: entities.OutcomeObstruction,
		},
		{
			name: "valve leak",
			mutate: func(r *entities.InspectionRecord) {
				r.ValveLeak = entities.AnswerYes
			},
			outcome: entities.OutcomeValveLeak,
		},
		{
			name: "valve inoperable",
			mutate: func(r *entities.InspectionRecord) {
				r.ValveOperable = entities.AnswerNo
			},
			outcome: entities.OutcomeValveInoperable,
		},
		{
			name: "leak persists after valve operation",
			mutate: func(r *entities.InspectionRecord) {
				r.LeakPersistsAfterValveOp = entities.AnswerYes
			},
			outcome: entities.OutcomeLeakPersists,
		},
		{
			name: "leak outside intervention zone",
			mutate: func(r *entities.InspectionRecord) {
				r.LeakOutsideZone = entities.AnswerYes
			},
			outcome: entities.OutcomeLeakOutsideZone,
		},
		{
			name:    "clean checklist proceeds",
			mutate:  func(r *entities.InspectionRecord) {},
			outcome: entities.OutcomeProceed,
		},
		{
			name: "removable grate still proceeds",
			mutate: func(r *entities.InspectionRecord) {
				r.HasGrateOrWeld = entities.AnswerYes
				r.GrateRemovable = entities.AnswerYes
			},
			outcome: entities.OutcomeProceed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := cleanPathRecord()
			tc.mutate(&rec)
			if got := Suggest(rec); got != tc.outcome {
				t.Fatalf("expected outcome %d, got %d", tc.outcome, got)
			}
		})
	}
}

func TestSuggest_FirstMatchWins(t *testing.T) {
	t.Run("no resident shadows every later rule", func(t *testing.T) {
		rec := cleanPathRecord()
		rec.ResidentPresent = entities.AnswerNo
		// Stale deeper answers from a previous edit round stay stored.
		rec.MeterDamaged = entities.AnswerYes
		rec.ValveLeak = entities.AnswerYes

		if got := Suggest(rec); got != entities.OutcomeSecondVisit {
			t.Fatalf("expected outcome %d, got %d", entities.OutcomeSecondVisit, got)
		}
	})

	t.Run("obstruction wins over orphaned valve answers", func(t *testing.T) {
		rec := cleanPathRecord()
		rec.HasGrateOrWeld = entities.AnswerYes
		rec.GrateRemovable = entities.AnswerNo
		// valve_leak is no longer askable behind a fixed grate; its stored
		// YES must not reach rule evaluation.
		rec.ValveLeak = entities.AnswerYes

		if got := Suggest(rec); got != entities.OutcomeObstruction {
			t.Fatalf("expected outcome %d, got %d", entities.OutcomeObstruction, got)
		}
	})

	t.Run("damaged meter wins over refusal left behind", func(t *testing.T) {
		rec := cleanPathRecord()
		rec.ClientAcceptsChange = entities.AnswerNo
		rec.MeterDamaged = entities.AnswerYes

		// The damaged answer is orphaned once the client refuses: the refusal
		// rule fires first and the deeper answer never counts.
		if got := Suggest(rec); got != entities.OutcomeRefused {
			t.Fatalf("expected outcome %d, got %d", entities.OutcomeRefused, got)
		}
	})
}

func TestSuggest_HiddenAnswersIgnored(t *testing.T) {
	t.Run("orphaned leak answer cannot trigger early exit", func(t *testing.T) {
		rec := cleanPathRecord()
		// Re-answering the grate question hides leak_outside_zone's branch
		// mates; the old YES stays in storage but must be inert.
		rec.HasGrateOrWeld = entities.AnswerYes
		rec.GrateRemovable = entities.AnswerYes
		rec.LeakOutsideZone = entities.AnswerNo
		rec.ValveLeak = entities.AnswerNo
		rec.ValveOperable = entities.AnswerYes
		rec.LeakPersistsAfterValveOp = entities.AnswerNo

		if got := Suggest(rec); got != entities.OutcomeProceed {
			t.Fatalf("expected outcome %d, got %d", entities.OutcomeProceed, got)
		}
	})

	t.Run("unreachable answers leave record inconclusive", func(t *testing.T) {
		rec := entities.InspectionRecord{
			OrderID: 1,
			// Nothing askable beyond the first question has been answered,
			// but a stray deep answer exists.
			LeakPersistsAfterValveOp: entities.AnswerYes,
		}
		if got := Suggest(rec); got != entities.OutcomeProceed {
			t.Fatalf("expected outcome %d, got %d", entities.OutcomeProceed, got)
		}
	})
}

func TestDecisionOutcome_EarlyExit(t *testing.T) {
	for code := entities.OutcomeSecondVisit; code <= entities.OutcomeLeakPersists; code++ {
		want := code != entities.OutcomeProceed
		if got := code.EarlyExit(); got != want {
			t.Fatalf("outcome %d: expected EarlyExit %t, got %t", code, want, got)
		}
	}
}

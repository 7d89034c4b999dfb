package response

import (
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase"
)

// RecordResponse is the wire form of the inspection record. Checklist
// answers are grouped in a map keyed by question id so the device can render
// them generically.
type RecordResponse struct {
	OrderID int64             `json:"order_id"`
	Answers map[string]string `json:"answers"`

	NewMeterSerial   string   `json:"new_meter_serial,omitempty"`
	NewReading       *float64 `json:"new_reading,omitempty"`
	RegulatorPresent string   `json:"regulator_present,omitempty"`
	FlexibleHoseType string   `json:"flexible_hose_type,omitempty"`
	Notes            string   `json:"notes,omitempty"`

	ClosureMotive *int     `json:"closure_motive,omitempty"`
	HasSignature  bool     `json:"has_signature"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`

	FirstVisitAt *time.Time `json:"first_visit_at,omitempty"`
	FinalizedAt  *time.Time `json:"finalized_at,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// SessionResponse is the snapshot returned by every execution endpoint.
// PendingWrites feeds the passive "saving/saved" indicator.
type SessionResponse struct {
	Record        RecordResponse `json:"record"`
	Step          int            `json:"step"`
	Suggestion    int            `json:"suggestion"`
	Askable       []string       `json:"askable"`
	ReadOnly      bool           `json:"read_only"`
	PendingWrites int            `json:"pending_writes"`
	EvidenceCount int            `json:"evidence_count"`
}

func FromSessionState(s usecase.SessionState) SessionResponse {
	answers := make(map[string]string, len(entities.Questions))
	for _, q := range entities.Questions {
		answers[string(q)] = string(s.Record.AnswerTo(q))
	}

	askable := make([]string, 0, len(s.Askable))
	for _, q := range s.Askable {
		askable = append(askable, string(q))
	}

	return SessionResponse{
		Record: RecordResponse{
			OrderID:          s.Record.OrderID,
			Answers:          answers,
			NewMeterSerial:   s.Record.NewMeterSerial,
			NewReading:       s.Record.NewReading,
			RegulatorPresent: string(s.Record.RegulatorPresent),
			FlexibleHoseType: string(s.Record.FlexibleHoseType),
			Notes:            s.Record.Notes,
			ClosureMotive:    s.Record.ClosureMotive,
			HasSignature:     s.Record.HasSignature(),
			Latitude:         s.Record.Latitude,
			Longitude:        s.Record.Longitude,
			FirstVisitAt:     s.Record.FirstVisitAt,
			FinalizedAt:      s.Record.FinalizedAt,
			Status:           string(s.Record.Status),
		},
		Step:          int(s.Step),
		Suggestion:    int(s.Suggestion),
		Askable:       askable,
		ReadOnly:      s.ReadOnly,
		PendingWrites: s.PendingWrites,
		EvidenceCount: s.EvidenceCount,
	}
}

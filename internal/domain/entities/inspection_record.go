package entities

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownField      = errors.New("unknown record field")
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Answer is the tri-state value of a checklist question. The empty string is
// the "unanswered" state so a fresh record is valid without initialization.

type Answer string

const (
	AnswerUnanswered Answer = ""
	AnswerYes        Answer = "YES"
	AnswerNo         Answer = "NO"
)

// Question identifies a checklist question. The value doubles as the Order
// Store attribute name for the answer, so the mutation queue can send the
// question id as a partial-update key without translation.

type Question string

const (
	QuestionResidentPresent          Question = "resident_present"
	QuestionClientAcceptsChange      Question = "client_accepts_change"
	QuestionMeterSerialMatches       Question = "meter_serial_matches"
	QuestionMeterDamaged             Question = "meter_damaged"
	QuestionHasGrateOrWeld           Question = "has_grate_or_weld"
	QuestionGrateRemovable           Question = "grate_removable"
	QuestionLeakOutsideZone          Question = "leak_outside_zone"
	QuestionValveLeak                Question = "valve_leak"
	QuestionValveOperable            Question = "valve_operable"
	QuestionLeakPersistsAfterValveOp Question = "leak_persists_after_valve_op"
)

// Checklist order as shown to the agent.
var Questions = []Question{
	QuestionResidentPresent,
	QuestionClientAcceptsChange,
	QuestionMeterSerialMatches,
	QuestionMeterDamaged,
	QuestionHasGrateOrWeld,
	QuestionGrateRemovable,
	QuestionLeakOutsideZone,
	QuestionValveLeak,
	QuestionValveOperable,
	QuestionLeakPersistsAfterValveOp,
}

// HoseType is the flexible-hose option recorded during installation.

type HoseType string

const (
	HoseNone        HoseType = "NONE"
	HoseStandard    HoseType = "YES"
	HoseDinatecnica HoseType = "DINATECNICA"
)

// WorkflowStep is the agent-facing screen position, persisted so an
// interrupted visit resumes where it stopped.

type WorkflowStep int

const (
	StepSummary      WorkflowStep = 1
	StepInspection   WorkflowStep = 2
	StepInstallation WorkflowStep = 3
	StepClosing      WorkflowStep = 4
)

// OrderStatus is the lifecycle status owned by the Order Store. The service
// reads it to decide read-only mode and writes it exactly once at
// finalization.

type OrderStatus string

const (
	StatusAssigned           OrderStatus = "ASSIGNED"
	StatusInProgress         OrderStatus = "IN PROGRESS"
	StatusSecondVisitPending OrderStatus = "SECOND VISIT PENDING"
	StatusClosedByAgent      OrderStatus = "CLOSED BY AGENT"
	StatusVerified           OrderStatus = "VERIFIED"
)

// KnownStatuses is the closed set of status names the Order Store accepts.
var KnownStatuses = []OrderStatus{
	StatusAssigned,
	StatusInProgress,
	StatusSecondVisitPending,
	StatusClosedByAgent,
	StatusVerified,
}

func IsKnownStatus(s OrderStatus) bool {
	for _, k := range KnownStatuses {
		if k == s {
			return true
		}
	}
	return false
}

// Closed reports whether the order left agent custody. A "SECOND VISIT
// PENDING" order is not closed: it is reopened by the same agent for the
// return visit.
func (s OrderStatus) Closed() bool {
	return s == StatusClosedByAgent || s == StatusVerified
}

// Position is a capture coordinate pair from the geolocation provider.

type Position struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// InspectionRecord is the unit the execution workflow operates on: one record
// per work order, mutated only through the mutation queue while the visit is
// running.
//
// Storage model (DynamoDB):
//   - Table: orders
//   - PK: id (order identifier as a numeric string)
//
// Every attribute is written as a field-level partial update; the record is
// never replaced wholesale.

type InspectionRecord struct {
	OrderID int64 `json:"order_id"`

	// Checklist answers (tri-state).
	ResidentPresent          Answer `json:"resident_present"`
	ClientAcceptsChange      Answer `json:"client_accepts_change"`
	MeterSerialMatches       Answer `json:"meter_serial_matches"`
	MeterDamaged             Answer `json:"meter_damaged"`
	HasGrateOrWeld           Answer `json:"has_grate_or_weld"`
	GrateRemovable           Answer `json:"grate_removable"`
	LeakOutsideZone          Answer `json:"leak_outside_zone"`
	ValveLeak                Answer `json:"valve_leak"`
	ValveOperable            Answer `json:"valve_operable"`
	LeakPersistsAfterValveOp Answer `json:"leak_persists_after_valve_op"`

	// Installation fields.
	NewMeterSerial   string   `json:"new_meter_serial"`
	NewReading       *float64 `json:"new_reading"`
	RegulatorPresent Answer   `json:"regulator_present"`
	FlexibleHoseType HoseType `json:"flexible_hose_type"`
	Notes            string   `json:"notes"`

	// Closure fields. Signature is a base64 payload; the actual evidence
	// media lives in the external object store.
	ClosureMotive *int     `json:"closure_motive"`
	Signature     string   `json:"signature"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	// Workflow fields.
	CurrentStep  WorkflowStep `json:"current_step"`
	FirstVisitAt *time.Time   `json:"first_visit_at"`
	FinalizedAt  *time.Time   `json:"finalized_at"`
	Status       OrderStatus  `json:"status"`
}

// AnswerTo returns the stored answer for a question, regardless of whether
// the question is currently askable.
func (r InspectionRecord) AnswerTo(q Question) Answer {
	switch q {
	case QuestionResidentPresent:
		return r.ResidentPresent
	case QuestionClientAcceptsChange:
		return r.ClientAcceptsChange
	case QuestionMeterSerialMatches:
		return r.MeterSerialMatches
	case QuestionMeterDamaged:
		return r.MeterDamaged
	case QuestionHasGrateOrWeld:
		return r.HasGrateOrWeld
	case QuestionGrateRemovable:
		return r.GrateRemovable
	case QuestionLeakOutsideZone:
		return r.LeakOutsideZone
	case QuestionValveLeak:
		return r.ValveLeak
	case QuestionValveOperable:
		return r.ValveOperable
	case QuestionLeakPersistsAfterValveOp:
		return r.LeakPersistsAfterValveOp
	}
	return AnswerUnanswered
}

func (r InspectionRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// HasSignature reports whether a non-empty signature payload is present.
// The payload is base64 text; whitespace-only or undecodable-empty payloads
// count as absent.
func (r InspectionRecord) HasSignature() bool {
	s := strings.TrimSpace(r.Signature)
	if s == "" {
		return false
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return len(b) > 0
	}
	return true
}

// Writable field names outside the checklist. Checklist answers use the
// Question constants directly.
const (
	FieldNewMeterSerial   = "new_meter_serial"
	FieldNewReading       = "new_reading"
	FieldRegulatorPresent = "regulator_present"
	FieldFlexibleHoseType = "flexible_hose_type"
	FieldNotes            = "notes"
	FieldClosureMotive    = "closure_motive"
	FieldSignature        = "signature"
	FieldLatitude         = "latitude"
	FieldLongitude        = "longitude"
	FieldCurrentStep      = "current_step"
	FieldFirstVisitAt     = "first_visit_at"
	FieldFinalizedAt      = "finalized_at"
)

// ImmediateFields are the fields the mutation queue must flush synchronously
// even when the caller did not ask for it: checklist answers (they drive the
// decision engine), closure fields and workflow position.
var ImmediateFields = buildImmediateFields()

func buildImmediateFields() map[string]bool {
	m := map[string]bool{
		FieldClosureMotive: true,
		FieldSignature:     true,
		FieldCurrentStep:   true,
		FieldFirstVisitAt:  true,
		FieldFinalizedAt:   true,
	}
	for _, q := range Questions {
		m[string(q)] = true
	}
	return m
}

// ApplyField applies one named partial update to the in-memory record
// (read-your-writes for the mutation queue). Values arrive as decoded JSON,
// so numbers are float64 and null is nil.
func (r *InspectionRecord) ApplyField(name string, value any) error {
	if q := Question(name); r.isChecklistField(q) {
		a, err := answerValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.setAnswer(q, a)
		return nil
	}

	switch name {
	case FieldNewMeterSerial:
		s, err := stringValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.NewMeterSerial = s
	case FieldNewReading:
		f, err := floatValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.NewReading = f
	case FieldRegulatorPresent:
		a, err := answerValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.RegulatorPresent = a
	case FieldFlexibleHoseType:
		s, err := stringValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.FlexibleHoseType = HoseType(strings.ToUpper(strings.TrimSpace(s)))
	case FieldNotes:
		s, err := stringValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.Notes = s
	case FieldClosureMotive:
		f, err := floatValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		if f == nil {
			r.ClosureMotive = nil
		} else {
			code := int(*f)
			r.ClosureMotive = &code
		}
	case FieldSignature:
		s, err := stringValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.Signature = s
	case FieldLatitude:
		f, err := floatValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.Latitude = f
	case FieldLongitude:
		f, err := floatValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.Longitude = f
	case FieldCurrentStep:
		f, err := floatValue(value)
		if err != nil || f == nil {
			return fmt.Errorf("%w: %s: expected step number", ErrInvalidFieldValue, name)
		}
		r.CurrentStep = WorkflowStep(int(*f))
	case FieldFirstVisitAt:
		t, err := timeValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.FirstVisitAt = t
	case FieldFinalizedAt:
		t, err := timeValue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		r.FinalizedAt = t
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

func (r InspectionRecord) isChecklistField(q Question) bool {
	for _, known := range Questions {
		if known == q {
			return true
		}
	}
	return false
}

func (r *InspectionRecord) setAnswer(q Question, a Answer) {
	switch q {
	case QuestionResidentPresent:
		r.ResidentPresent = a
	case QuestionClientAcceptsChange:
		r.ClientAcceptsChange = a
	case QuestionMeterSerialMatches:
		r.MeterSerialMatches = a
	case QuestionMeterDamaged:
		r.MeterDamaged = a
	case QuestionHasGrateOrWeld:
		r.HasGrateOrWeld = a
	case QuestionGrateRemovable:
		r.GrateRemovable = a
	case QuestionLeakOutsideZone:
		r.LeakOutsideZone = a
	case QuestionValveLeak:
		r.ValveLeak = a
	case QuestionValveOperable:
		r.ValveOperable = a
	case QuestionLeakPersistsAfterValveOp:
		r.LeakPersistsAfterValveOp = a
	}
}

func answerValue(v any) (Answer, error) {
	if v == nil {
		return AnswerUnanswered, nil
	}
	s, ok := v.(string)
	if !ok {
		return AnswerUnanswered, fmt.Errorf("expected YES/NO string, got %T", v)
	}
	switch Answer(strings.ToUpper(strings.TrimSpace(s))) {
	case AnswerYes:
		return AnswerYes, nil
	case AnswerNo:
		return AnswerNo, nil
	case AnswerUnanswered:
		return AnswerUnanswered, nil
	}
	return AnswerUnanswered, fmt.Errorf("expected YES/NO, got %q", s)
}

func stringValue(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

func floatValue(v any) (*float64, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	case int64:
		f := float64(n)
		return &f, nil
	}
	return nil, fmt.Errorf("expected number, got %T", v)
}

func timeValue(v any) (*time.Time, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		u := t.UTC()
		return &u, nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return nil, fmt.Errorf("expected RFC3339 timestamp: %w", err)
		}
		u := parsed.UTC()
		return &u, nil
	}
	return nil, fmt.Errorf("expected timestamp, got %T", v)
}

package entities

// ClosureMotive is one entry of the fixed closure-motive catalog. The catalog
// populates the manual override selector shown next to the engine's
// suggestion; codes align 1:1 with DecisionOutcome values.
//
// Storage model (DynamoDB):
//   - Table: motives
//   - PK: code (number)

type ClosureMotive struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

// DefaultMotiveCatalog is the seed catalog used when the motives table is
// empty or unreachable. Labels mirror the codes in decision.go.
func DefaultMotiveCatalog() []ClosureMotive {
	return []ClosureMotive{
		{Code: 1, Label: "RESIDENT ABSENT - SECOND VISIT SCHEDULED"},
		{Code: 2, Label: "CLIENT REFUSED REPLACEMENT"},
		{Code: 3, Label: "METER SERIAL MISMATCH"},
		{Code: 4, Label: "METER DAMAGED"},
		{Code: 5, Label: "NON-REMOVABLE GRATE OR WELD"},
		{Code: 6, Label: "LEAK OUTSIDE WORK ZONE"},
		{Code: 7, Label: "LEAK AT SERVICE VALVE"},
		{Code: 8, Label: "REPLACEMENT COMPLETED"},
		{Code: 9, Label: "RESIDENT ABSENT - SECOND VISIT DONE"},
		{Code: 10, Label: "SERVICE VALVE INOPERABLE"},
		{Code: 11, Label: "LEAK PERSISTS AFTER VALVE CLOSURE"},
	}
}

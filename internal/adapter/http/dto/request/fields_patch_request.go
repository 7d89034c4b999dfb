package request

import (
	"strings"

	"troca_medidores/internal/usecase"
)

// FieldWriteRequest is one field edit from the device. Value is kept as
// decoded JSON; the record applies its own per-field coercion.
type FieldWriteRequest struct {
	Name      string `json:"name" binding:"required"`
	Value     any    `json:"value"`
	Immediate bool   `json:"immediate"`
}

// FieldsPatchRequest is the batch body of PATCH /orders/:order_id/fields.
type FieldsPatchRequest struct {
	Writes []FieldWriteRequest `json:"writes" binding:"required"`
}

// ToFieldWrites normalizes names and drops empty entries, returning the
// use-case form of the batch.
func (r FieldsPatchRequest) ToFieldWrites() []usecase.FieldWrite {
	writes := make([]usecase.FieldWrite, 0, len(r.Writes))
	for _, w := range r.Writes {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			continue
		}
		writes = append(writes, usecase.FieldWrite{Name: name, Value: w.Value, Immediate: w.Immediate})
	}
	return writes
}

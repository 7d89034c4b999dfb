package interfaces

import (
	"context"
	"errors"

	"troca_medidores/internal/domain/entities"
)

// ErrUnknownStatus is returned by SetStatus when the target status name does
// not resolve in the Order Store. Surfacing it lets the finalizer treat the
// rejection as fatal instead of retrying.
var ErrUnknownStatus = errors.New("unknown order status")

// IOrderStore abstracts the external Order Store that owns the inspection
// records. All writes are field-level partial updates; the store's schema is
// never replaced wholesale.

type IOrderStore interface {
	GetByID(ctx context.Context, orderID int64) (entities.InspectionRecord, error)
	UpdateFields(ctx context.Context, orderID int64, fields map[string]any) error
	SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error
}

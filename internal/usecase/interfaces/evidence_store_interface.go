package interfaces

import (
	"context"

	"troca_medidores/internal/domain/entities"
)

// IEvidenceStore abstracts the external Evidence Store. The device uploads
// media bytes to object storage out of band and registers the resulting URL
// here; this service never holds blob custody.

type IEvidenceStore interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.EvidenceItem, error)
	Add(ctx context.Context, orderID int64, mediaURL string, isVideo bool) (entities.EvidenceItem, error)
	Remove(ctx context.Context, evidenceID string) error
}

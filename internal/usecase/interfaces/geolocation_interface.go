package interfaces

import (
	"context"
	"time"

	"troca_medidores/internal/domain/entities"
)

// IGeolocationProvider resolves the device position at finalization time.
// Best-effort: callers must tolerate an error and proceed without
// coordinates.

type IGeolocationProvider interface {
	CurrentPosition(ctx context.Context, timeout time.Duration) (entities.Position, error)
}

package interfaces

import (
	"context"

	"troca_medidores/internal/domain/entities"
)

// IMotiveCatalog is the read-only closure-motive catalog backing the manual
// override selector.

type IMotiveCatalog interface {
	ListMotives(ctx context.Context) ([]entities.ClosureMotive, error)
}

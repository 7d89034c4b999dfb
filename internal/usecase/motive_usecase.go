package usecase

import (
	"context"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"
)

// IMotiveUseCase serves the closure-motive catalog for the manual override
// selector shown alongside the engine's suggestion.

type IMotiveUseCase interface {
	ListMotives(ctx context.Context) ([]entities.ClosureMotive, error)
}

type MotiveUseCase struct {
	catalog interfaces.IMotiveCatalog
}

var _ IMotiveUseCase = (*MotiveUseCase)(nil)

func NewMotiveUseCase(catalog interfaces.IMotiveCatalog) *MotiveUseCase {
	return &MotiveUseCase{catalog: catalog}
}

func (u *MotiveUseCase) ListMotives(ctx context.Context) ([]entities.ClosureMotive, error) {
	return u.catalog.ListMotives(ctx)
}

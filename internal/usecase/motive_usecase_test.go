package usecase

import (
	"context"
	"errors"
	"testing"

	"troca_medidores/internal/domain/entities"
	mock_interfaces "troca_medidores/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMotiveUseCase_ListMotives(t *testing.T) {
	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMotiveCatalog(ctrl)
		uc := NewMotiveUseCase(catalog)

		catalog.EXPECT().ListMotives(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListMotives(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMotiveCatalog(ctrl)
		uc := NewMotiveUseCase(catalog)

		catalog.EXPECT().ListMotives(gomock.Any()).Return(entities.DefaultMotiveCatalog(), nil)

		motives, err := uc.ListMotives(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(motives) != 11 {
			t.Fatalf("expected 11 motives, got %d", len(motives))
		}
		if motives[7].Code != int(entities.OutcomeProceed) {
			t.Fatalf("unexpected catalog ordering: %+v", motives[7])
		}
	})
}

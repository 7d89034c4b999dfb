package usecase

import (
	"context"
	"errors"
	"testing"

	"troca_medidores/internal/domain/entities"
	mock_interfaces "troca_medidores/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEvidenceUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewEvidenceUseCase(nil)
		_, err := uc.ListByOrderID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEvidenceStore(ctrl)
		uc := NewEvidenceUseCase(store)

		store.EXPECT().ListByOrderID(gomock.Any(), int64(5)).Return(nil, errors.New("db"))

		_, err := uc.ListByOrderID(context.Background(), 5)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEvidenceStore(ctrl)
		uc := NewEvidenceUseCase(store)

		items := []entities.EvidenceItem{{ID: "ev-1", OrderID: 5}, {ID: "ev-2", OrderID: 5}}
		store.EXPECT().ListByOrderID(gomock.Any(), int64(5)).Return(items, nil)

		got, err := uc.ListByOrderID(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got))
		}
	})
}

func TestEvidenceUseCase_Add(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewEvidenceUseCase(nil)
		_, err := uc.Add(context.Background(), -1, "https://media/x.jpg", false)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("blank media url", func(t *testing.T) {
		uc := NewEvidenceUseCase(nil)
		_, err := uc.Add(context.Background(), 5, "   ", false)
		if !errors.Is(err, ErrInvalidMediaURL) {
			t.Fatalf("expected ErrInvalidMediaURL, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEvidenceStore(ctrl)
		uc := NewEvidenceUseCase(store)

		store.EXPECT().Add(gomock.Any(), int64(5), "https://media/x.jpg", false).Return(entities.EvidenceItem{}, errors.New("db"))

		_, err := uc.Add(context.Background(), 5, "https://media/x.jpg", false)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success trims the url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEvidenceStore(ctrl)
		uc := NewEvidenceUseCase(store)

		store.EXPECT().Add(gomock.Any(), int64(5), "https://media/x.mp4", true).Return(entities.EvidenceItem{ID: "ev-1", OrderID: 5, MediaURL: "https://media/x.mp4", IsVideo: true}, nil)

		item, err := uc.Add(context.Background(), 5, "  https://media/x.mp4  ", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "ev-1" || !item.IsVideo {
			t.Fatalf("unexpected item: %+v", item)
		}
	})
}

func TestEvidenceUseCase_Remove(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewEvidenceUseCase(nil)
		if err := uc.Remove(context.Background(), "  "); !errors.Is(err, ErrInvalidEvidenceID) {
			t.Fatalf("expected ErrInvalidEvidenceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEvidenceStore(ctrl)
		uc := NewEvidenceUseCase(store)

		store.EXPECT().Remove(gomock.Any(), "ev-1").Return(nil)

		if err := uc.Remove(context.Background(), " ev-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

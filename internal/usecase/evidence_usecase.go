package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"
)

var (
	ErrInvalidMediaURL   = errors.New("invalid media url")
	ErrInvalidEvidenceID = errors.New("invalid evidence id")
)

// IEvidenceUseCase exposes evidence pass-through operations. The workflow
// only counts and lists items; custody of the media bytes stays with the
// external Evidence Store.

type IEvidenceUseCase interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.EvidenceItem, error)
	Add(ctx context.Context, orderID int64, mediaURL string, isVideo bool) (entities.EvidenceItem, error)
	Remove(ctx context.Context, evidenceID string) error
}

type EvidenceUseCase struct {
	store interfaces.IEvidenceStore
}

var _ IEvidenceUseCase = (*EvidenceUseCase)(nil)

func NewEvidenceUseCase(store interfaces.IEvidenceStore) *EvidenceUseCase {
	return &EvidenceUseCase{store: store}
}

func (u *EvidenceUseCase) ListByOrderID(ctx context.Context, orderID int64) ([]entities.EvidenceItem, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	return u.store.ListByOrderID(ctx, orderID)
}

func (u *EvidenceUseCase) Add(ctx context.Context, orderID int64, mediaURL string, isVideo bool) (entities.EvidenceItem, error) {
	if orderID <= 0 {
		return entities.EvidenceItem{}, ErrInvalidOrderID
	}
	mediaURL = strings.TrimSpace(mediaURL)
	if mediaURL == "" {
		return entities.EvidenceItem{}, ErrInvalidMediaURL
	}

	item, err := u.store.Add(ctx, orderID, mediaURL, isVideo)
	if err != nil {
		log.Printf("[evidence][usecase] add failed order_id=%d err=%v", orderID, err)
		return entities.EvidenceItem{}, err
	}
	log.Printf("[evidence][usecase] evidence added order_id=%d evidence_id=%s is_video=%t", orderID, item.ID, isVideo)
	return item, nil
}

func (u *EvidenceUseCase) Remove(ctx context.Context, evidenceID string) error {
	evidenceID = strings.TrimSpace(evidenceID)
	if evidenceID == "" {
		return ErrInvalidEvidenceID
	}
	return u.store.Remove(ctx, evidenceID)
}

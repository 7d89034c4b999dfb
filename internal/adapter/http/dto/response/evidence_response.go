package response

import (
	"time"

	"troca_medidores/internal/domain/entities"
)

type EvidenceResponse struct {
	ID        string    `json:"id"`
	OrderID   int64     `json:"order_id"`
	MediaURL  string    `json:"media_url"`
	IsVideo   bool      `json:"is_video"`
	CreatedAt time.Time `json:"created_at"`
}

// EvidenceListResponse carries the count alongside the items; the device
// shows it against the finalization minimum.
type EvidenceListResponse struct {
	Items []EvidenceResponse `json:"items"`
	Count int                `json:"count"`
}

func FromEvidenceItem(e entities.EvidenceItem) EvidenceResponse {
	return EvidenceResponse{
		ID:        e.ID,
		OrderID:   e.OrderID,
		MediaURL:  e.MediaURL,
		IsVideo:   e.IsVideo,
		CreatedAt: e.CreatedAt,
	}
}

func FromEvidenceItems(items []entities.EvidenceItem) EvidenceListResponse {
	out := make([]EvidenceResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEvidenceItem(e))
	}
	return EvidenceListResponse{Items: out, Count: len(out)}
}

package entities

import "time"

// EvidenceItem is a photo or video attached to a work order. The media bytes
// live in the external object store; this service only tracks the reference
// and counts items for the finalization precondition.
//
// Storage model (DynamoDB):
//   - Table: evidences
//   - PK: id (uuid string)
//   - GSI: order_id-index (PK: order_id)

type EvidenceItem struct {
	ID        string    `json:"id"`
	OrderID   int64     `json:"order_id"`
	MediaURL  string    `json:"media_url"`
	IsVideo   bool      `json:"is_video"`
	CreatedAt time.Time `json:"created_at"`
}

package request

import "strings"

// EvidenceCreateRequest registers one media reference against an order. The
// device uploads the bytes to object storage first and sends the resulting
// URL here.
type EvidenceCreateRequest struct {
	MediaURL string `json:"media_url" binding:"required"`
	IsVideo  bool   `json:"is_video"`
}

func (r EvidenceCreateRequest) ResolveMediaURL() string {
	return strings.TrimSpace(r.MediaURL)
}

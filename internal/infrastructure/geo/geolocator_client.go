package geo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingGeoGatewayURL = errors.New("missing GEO_GATEWAY_URL")
var ErrGeoGatewayNotConfigured = errors.New("geolocation gateway not configured")

// GeoGatewayClient resolves the device position through the field-device
// companion gateway. Finalization uses it best-effort when the record has no
// coordinates yet; any failure here is logged and swallowed by the caller.

type GeoGatewayClient struct {
	client *resty.Client
}

var _ interfaces.IGeolocationProvider = (*GeoGatewayClient)(nil)

type positionResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy"`
	Error     string  `json:"error"`
}

func NewGeoGatewayClient(baseURL string) (*GeoGatewayClient, error) {
	if baseURL == "" {
		log.Printf("[geo][gateway] missing GEO_GATEWAY_URL")
		return nil, ErrMissingGeoGatewayURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(1).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	log.Printf("[geo][gateway] geolocation gateway client initialized url=%s", baseURL)
	return &GeoGatewayClient{client: client}, nil
}

// CurrentPosition fetches a single fix, bounded by timeout. The gateway does
// the actual GPS work on the device side.
func (c *GeoGatewayClient) CurrentPosition(ctx context.Context, timeout time.Duration) (entities.Position, error) {
	if c == nil || c.client == nil {
		return entities.Position{}, ErrGeoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body positionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/position")
	if err != nil {
		log.Printf("[geo][gateway] position fetch failed err=%v", err)
		return entities.Position{}, fmt.Errorf("fetch position: %w", err)
	}
	if resp.IsError() {
		log.Printf("[geo][gateway] position fetch rejected status=%d", resp.StatusCode())
		return entities.Position{}, fmt.Errorf("fetch position: status %d", resp.StatusCode())
	}
	if body.Error != "" {
		return entities.Position{}, fmt.Errorf("fetch position: %s", body.Error)
	}

	log.Printf("[geo][gateway] position acquired lat=%.6f lng=%.6f accuracy=%.1f", body.Latitude, body.Longitude, body.Accuracy)
	return entities.Position{Latitude: body.Latitude, Longitude: body.Longitude}, nil
}

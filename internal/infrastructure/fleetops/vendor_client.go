package fleetops

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// IntegratedVendorClient creates upstream vendor orders for service
// quotes sourced from an integrated vendor. The vendor API is an opaque
// downstream; only the returned order reference matters here.

type IntegratedVendorClient struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

var _ interfaces.IIntegratedVendorClient = (*IntegratedVendorClient)(nil)

func NewIntegratedVendorClient(baseURL, apiKey string) *IntegratedVendorClient {
	return &IntegratedVendorClient{
		http:    resty.New().SetTimeout(30 * time.Second).SetRetryCount(0),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (c *IntegratedVendorClient) CreateOrderFromServiceQuote(ctx context.Context, quote entities.ServiceQuote, details map[string]any) (string, error) {
	var out struct {
		OrderID string `json:"order_id"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(map[string]any{
			"service_quote": quote.PublicID,
			"vendor":        quote.IntegratedVendorID,
			"details":       details,
		}).
		SetResult(&out).
		Post(c.baseURL + "/v1/orders")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("vendor order create http %d: %s", resp.StatusCode(), resp.String())
	}

	log.WithFields(log.Fields{
		"service_quote": quote.PublicID,
		"vendor":        quote.IntegratedVendorID,
		"order_id":      out.OrderID,
	}).Info("[vendor][client] upstream order created")
	return out.OrderID, nil
}

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

// WebhookNotifier posts order lifecycle events to the notification
// delivery service. With no endpoint configured it degrades to
// log-only, which is enough for local runs; delivery is best effort
// either way.

type WebhookNotifier struct {
	http     *resty.Client
	endpoint string
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		http:     resty.New().SetTimeout(10 * time.Second).SetRetryCount(0),
		endpoint: endpoint,
	}
}

func (n *WebhookNotifier) NewOrder(ctx context.Context, order entities.Order) error {
	return n.post(ctx, "order.created", map[string]any{
		"order_id": order.PublicID,
		"status":   order.Status,
	})
}

func (n *WebhookNotifier) OrderPreparing(ctx context.Context, customer entities.Customer, order entities.Order) error {
	return n.post(ctx, "order.preparing", map[string]any{
		"order_id": order.PublicID,
		"customer": customer.ID,
	})
}

func (n *WebhookNotifier) DriverAssigned(ctx context.Context, order entities.Order) error {
	return n.post(ctx, "order.driver_assignment", map[string]any{
		"order_id": order.PublicID,
	})
}

func (n *WebhookNotifier) post(ctx context.Context, event string, payload map[string]any) error {
	if n.endpoint == "" {
		log.WithFields(log.Fields{"event": event, "payload": payload}).Info("[notify] event (no endpoint configured)")
		return nil
	}

	resp, err := n.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"event": event, "data": payload}).
		Post(n.endpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("notify %s http %d", event, resp.StatusCode())
	}
	return nil
}

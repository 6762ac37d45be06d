package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

// InitializeCheckoutRequest is the before-checkout payload. Older
// storefront clients send snake_case keys for the service quote and the
// delivery tip, current ones send camelCase; both are accepted and the
// camelCase key wins when present.
type InitializeCheckoutRequest struct {
	Gateway         string            `json:"gateway" binding:"required"`
	Customer        string            `json:"customer" binding:"required"`
	Cart            string            `json:"cart" binding:"required"`
	ServiceQuote    string            `json:"serviceQuote"`
	ServiceQuoteAlt string            `json:"service_quote"`
	Tip             entities.TipValue `json:"tip"`
	DeliveryTip     entities.TipValue `json:"deliveryTip"`
	DeliveryTipAlt  entities.TipValue `json:"delivery_tip"`
	Pickup          bool              `json:"pickup"`
	Cash            bool              `json:"cash"`
	CashOnDelivery  bool              `json:"cashOnDelivery"`
}

func (r InitializeCheckoutRequest) ResolveServiceQuoteID() string {
	if v := strings.TrimSpace(r.ServiceQuote); v != "" {
		return v
	}
	return strings.TrimSpace(r.ServiceQuoteAlt)
}

// ResolveCash accepts either the short `cash` flag or the older
// `cashOnDelivery` key; either one marks the session cash-on-delivery.
func (r InitializeCheckoutRequest) ResolveCash() bool {
	return r.Cash || r.CashOnDelivery
}

func (r InitializeCheckoutRequest) ResolveDeliveryTip() entities.TipValue {
	if !r.DeliveryTip.IsZero() {
		return r.DeliveryTip
	}
	return r.DeliveryTipAlt
}

// CaptureOrderRequest finalizes a checkout session into an order.
// TransactionDetails is gateway evidence passed through opaquely, e.g.
// a card charge object; for M-Pesa the reconciled transaction row is
// authoritative and this field is ignored.
type CaptureOrderRequest struct {
	Token              string         `json:"token" binding:"required"`
	TransactionDetails map[string]any `json:"transactionDetails"`
}

package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GatewayKind is the closed set of payment gateways the checkout flow
// dispatches on. Adding a gateway means adding a variant and an adapter,
// not another branch in the orchestrator.

type GatewayKind string

const (
	GatewayCash     GatewayKind = "cash"
	GatewayCard     GatewayKind = "card"
	GatewayMpesaSTK GatewayKind = "mpesa_stk"
	GatewayInvoice  GatewayKind = "invoice"
)

func ParseGatewayKind(code string) (GatewayKind, bool) {
	switch GatewayKind(strings.ToLower(strings.TrimSpace(code))) {
	case GatewayCash:
		return GatewayCash, true
	case GatewayCard:
		return GatewayCard, true
	case GatewayMpesaSTK:
		return GatewayMpesaSTK, true
	case GatewayInvoice:
		return GatewayInvoice, true
	}
	return "", false
}

// TipValue is a tip input as supplied by the client: either an absolute
// amount in minor currency units or a percentage string such as "10%".
// A percentage always resolves against the cart subtotal, never against
// the running total.

type TipValue string

func (t TipValue) IsZero() bool {
	s := strings.TrimSpace(string(t))
	return s == "" || s == "0" || s == "false"
}

func (t TipValue) IsPercentage() bool {
	return strings.HasSuffix(strings.TrimSpace(string(t)), "%")
}

// Resolve returns the tip amount in minor units for the given subtotal.
func (t TipValue) Resolve(subtotal int64) int64 {
	s := strings.TrimSpace(string(t))
	if t.IsZero() {
		return 0
	}
	if t.IsPercentage() {
		pct, err := strconv.ParseFloat(numbersOnly(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return 0
		}
		return int64(float64(subtotal) * pct / 100)
	}
	n, err := strconv.ParseInt(numbersOnly(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// UnmarshalJSON accepts a JSON number, a string, or a boolean false
// (clients send `"tip": false` when no tip is given).
func (t *TipValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = ""
	case bool:
		if v {
			return fmt.Errorf("tip cannot be boolean true")
		}
		*t = ""
	case float64:
		*t = TipValue(strconv.FormatInt(int64(v), 10))
	case string:
		*t = TipValue(v)
	default:
		return fmt.Errorf("unsupported tip value %T", raw)
	}
	return nil
}

func numbersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckoutOptions are the client-chosen options frozen into the session.
type CheckoutOptions struct {
	IsPickup         bool     `json:"is_pickup"`
	IsCashOnDelivery bool     `json:"is_cod"`
	Tip              TipValue `json:"tip,omitempty"`
	DeliveryTip      TipValue `json:"delivery_tip,omitempty"`
}

// Checkout is a durable checkout session: the binding between a priced
// cart, the chosen gateway and an opaque client-facing token, pending
// capture.
//
// Storage model (DynamoDB):
//   - PK: token
//   - GSI (checkout_request_id-index): checkout_request_id
//
// The cart snapshot is immutable after creation; the only legal mutations
// are attaching gateway correlation ids and flipping Captured exactly once.

type Checkout struct {
	Token             string          `json:"token"`
	PublicID          string          `json:"public_id"`
	CompanyID         string          `json:"company_id,omitempty"`
	StoreID           string          `json:"store_id,omitempty"`
	NetworkID         string          `json:"network_id,omitempty"`
	CartID            string          `json:"cart_id"`
	Gateway           GatewayKind     `json:"gateway"`
	ServiceQuoteID    string          `json:"service_quote_id"`
	OwnerID           string          `json:"owner_id"`
	Amount            int64           `json:"amount"`
	Currency          string          `json:"currency"`
	Options           CheckoutOptions `json:"options"`
	CartState         *Cart           `json:"cart_state,omitempty"`
	MerchantRequestID string          `json:"merchant_request_id,omitempty"`
	CheckoutRequestID string          `json:"checkout_request_id,omitempty"`
	Captured          bool            `json:"captured"`
	OrderID           string          `json:"order_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

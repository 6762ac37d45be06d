package entities

import "time"

// Transaction is the ledger record created once per capture, never
// mutated afterwards. Line items live in TransactionItem.

type Transaction struct {
	ID                   string            `json:"id"`
	CompanyID            string            `json:"company_id,omitempty"`
	CustomerID           string            `json:"customer_id"`
	GatewayTransactionID string            `json:"gateway_transaction_id"`
	Gateway              GatewayKind       `json:"gateway"`
	Amount               int64             `json:"amount"`
	Currency             string            `json:"currency"`
	Description          string            `json:"description"`
	Type                 string            `json:"type"`
	Status               string            `json:"status"`
	Meta                 map[string]any    `json:"meta,omitempty"`
	Items                []TransactionItem `json:"items"`
	CreatedAt            time.Time         `json:"created_at"`
}

// Line item codes: one "product" per cart item, at most one of each of
// the remaining codes per transaction.
const (
	LineItemProduct     = "product"
	LineItemDeliveryFee = "delivery_fee"
	LineItemTip         = "tip"
	LineItemDeliveryTip = "delivery_tip"
)

type TransactionItem struct {
	ID            string         `json:"id"`
	TransactionID string         `json:"transaction_id"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	Details       string         `json:"details"`
	Code          string         `json:"code"`
	Meta          map[string]any `json:"meta,omitempty"`
}

// Payload is the fulfillment payload attached to an order: pickup,
// dropoff and return place references plus, for master orders, the
// ordered waypoint list of the remaining store origins.

type Payload struct {
	ID               string   `json:"id"`
	CompanyID        string   `json:"company_id,omitempty"`
	PickupPlaceID    string   `json:"pickup_place_id,omitempty"`
	DropoffPlaceID   string   `json:"dropoff_place_id,omitempty"`
	ReturnPlaceID    string   `json:"return_place_id,omitempty"`
	WaypointPlaceIDs []string `json:"waypoint_place_ids,omitempty"`
	PaymentMethod    string   `json:"payment_method"`
	Type             string   `json:"type"`
	CODAmount        int64    `json:"cod_amount,omitempty"`
	CODCurrency      string   `json:"cod_currency,omitempty"`
	CODMethod        string   `json:"cod_method,omitempty"`
}

// Entity is one fulfillable line on a payload, materialized from a cart
// item at capture time.
type Entity struct {
	ID         string         `json:"id"`
	CompanyID  string         `json:"company_id,omitempty"`
	PayloadID  string         `json:"payload_id"`
	CustomerID string         `json:"customer_id"`
	ProductID  string         `json:"product_id"`
	Name       string         `json:"name"`
	Meta       map[string]any `json:"meta,omitempty"`
}

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDispatched OrderStatus = "dispatched"
)

// Well-known order meta keys. The master/child relationship is two
// one-directional lookups: the master's meta lists child public ids under
// MetaRelatedOrders, each child's meta names the master under
// MetaMasterOrderID. Neither side holds an object reference.
const (
	MetaIsMasterOrder         = "is_master_order"
	MetaRelatedOrders         = "related_orders"
	MetaMasterOrderID         = "master_order_id"
	MetaCheckoutID            = "checkout_id"
	MetaSubtotal              = "subtotal"
	MetaDeliveryFee           = "delivery_fee"
	MetaTip                   = "tip"
	MetaDeliveryTip           = "delivery_tip"
	MetaTotal                 = "total"
	MetaCurrency              = "currency"
	MetaRequirePOD            = "require_pod"
	MetaPODMethod             = "pod_method"
	MetaIsPickup              = "is_pickup"
	MetaIntegratedVendor      = "integrated_vendor"
	MetaIntegratedVendorOrder = "integrated_vendor_order"
	MetaDistance              = "preliminary_distance"
	MetaTime                  = "preliminary_time"
)

// Order is created here and owned thereafter by the downstream
// order-management system.
type Order struct {
	ID            string         `json:"id"`
	PublicID      string         `json:"public_id"`
	CompanyID     string         `json:"company_id,omitempty"`
	PayloadID     string         `json:"payload_id"`
	CustomerID    string         `json:"customer_id"`
	TransactionID string         `json:"transaction_id"`
	FacilitatorID string         `json:"facilitator_id,omitempty"`
	Adhoc         bool           `json:"adhoc"`
	Type          string         `json:"type"`
	Status        OrderStatus    `json:"status"`
	Meta          map[string]any `json:"meta,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (o *Order) IsMasterOrder() bool {
	v, ok := o.Meta[MetaIsMasterOrder].(bool)
	return ok && v
}

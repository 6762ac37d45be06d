package entities

import "time"

// Cart and CartItem are owned by the cart/session service and consumed
// read-only here. A vanished cart at capture time is an expired-cart
// error, not something this service prevents.

type CartItem struct {
	ID              string         `json:"id"`
	ProductID       string         `json:"product_id"`
	Name            string         `json:"name"`
	StoreID         string         `json:"store_id"`
	StoreLocationID string         `json:"store_location_id,omitempty"`
	Subtotal        int64          `json:"subtotal"`
	Quantity        int            `json:"quantity"`
	Variants        []string       `json:"variants,omitempty"`
	Addons          map[string]any `json:"addons,omitempty"`
	ScheduledAt     *time.Time     `json:"scheduled_at,omitempty"`
}

type Cart struct {
	ID       string     `json:"id"`
	Currency string     `json:"currency,omitempty"`
	Items    []CartItem `json:"items"`
}

func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal
	}
	return total
}

// StoreIDs returns the distinct store ids across the cart items, in
// first-seen order.
func (c *Cart) StoreIDs() []string {
	seen := map[string]bool{}
	ids := []string{}
	for _, item := range c.Items {
		if item.StoreID == "" || seen[item.StoreID] {
			continue
		}
		seen[item.StoreID] = true
		ids = append(ids, item.StoreID)
	}
	return ids
}

// IsMultiStore reports whether the cart spans more than one store, which
// routes capture through the network split path.
func (c *Cart) IsMultiStore() bool {
	return len(c.StoreIDs()) > 1
}

func (c *Cart) ItemsForStore(storeID string) []CartItem {
	items := []CartItem{}
	for _, item := range c.Items {
		if item.StoreID == storeID {
			items = append(items, item)
		}
	}
	return items
}

func (c *Cart) SubtotalForStore(storeID string) int64 {
	var total int64
	for _, item := range c.ItemsForStore(storeID) {
		total += item.Subtotal
	}
	return total
}

package entities

// Store is a storefront (or, when IsNetwork is true, the marketplace
// network that fronts several stores). Externally owned; read here to
// resolve scope, locations and order-handling options.

type Store struct {
	ID        string          `json:"id"`
	PublicID  string          `json:"public_id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	IsNetwork bool            `json:"is_network"`
	PODMethod string          `json:"pod_method,omitempty"`
	Options   map[string]any  `json:"options,omitempty"`
	Locations []StoreLocation `json:"locations,omitempty"`
}

// IsOption reports a truthy boolean option such as auto_accept_orders or
// auto_dispatch.
func (s *Store) IsOption(key string) bool {
	if s == nil || s.Options == nil {
		return false
	}
	v, ok := s.Options[key].(bool)
	return ok && v
}

func (s *Store) GetOption(key string) any {
	if s == nil || s.Options == nil {
		return nil
	}
	return s.Options[key]
}

type StoreLocation struct {
	ID       string `json:"id"`
	PublicID string `json:"public_id"`
	StoreID  string `json:"store_id"`
	PlaceID  string `json:"place_id"`
}

// Place is a resolvable geographic point used for pickup, dropoff and
// waypoints on fulfillment payloads.
type Place struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Customer is the checkout owner; owned by the contacts service.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// ServiceQuote is an externally priced delivery estimate attached to a
// checkout. Origin holds one or more place ids (several for network
// checkouts); Destination is the dropoff place id.
type ServiceQuote struct {
	ID                 string   `json:"id"`
	PublicID           string   `json:"public_id"`
	Amount             int64    `json:"amount"`
	Currency           string   `json:"currency"`
	Origin             []string `json:"origin,omitempty"`
	Destination        string   `json:"destination,omitempty"`
	IntegratedVendorID string   `json:"integrated_vendor_id,omitempty"`
}

func (q *ServiceQuote) FromIntegratedVendor() bool {
	return q != nil && q.IntegratedVendorID != ""
}

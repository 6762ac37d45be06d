package entities

// Scope carries the request-scoped storefront context (active company,
// store and network) explicitly through every operation instead of
// reading ambient session globals.

type Scope struct {
	CompanyID string `json:"company_id,omitempty"`
	StoreID   string `json:"store_id,omitempty"`
	NetworkID string `json:"network_id,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

func (s Scope) IsNetwork() bool {
	return s.NetworkID != ""
}

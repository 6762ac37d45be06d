package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IIntegratedVendorClient creates the upstream vendor order for service
// quotes that originate from an integrated vendor. Opaque downstream
// call: the returned reference goes into order meta untouched.

type IIntegratedVendorClient interface {
	CreateOrderFromServiceQuote(ctx context.Context, quote entities.ServiceQuote, details map[string]any) (string, error)
}

// RouteEstimate is a preliminary driving distance/time guess attached to
// master orders before real routing happens downstream.
type RouteEstimate struct {
	DistanceMeters int64
	TimeSeconds    int64
}

type IRouteEstimator interface {
	Estimate(ctx context.Context, origin entities.Place, destination entities.Place) (RouteEstimate, error)
}

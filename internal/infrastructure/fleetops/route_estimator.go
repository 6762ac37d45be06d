package fleetops

import (
	"context"
	"math"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

const (
	earthRadiusMeters = 6371000.0
	// Urban driving average used for the preliminary time guess; real
	// routing happens downstream.
	averageSpeedMetersPerSecond = 8.3
)

// HaversineEstimator is the preliminary distance/time estimator attached
// to master orders before dispatch routing takes over.

type HaversineEstimator struct{}

var _ interfaces.IRouteEstimator = (*HaversineEstimator)(nil)

func NewHaversineEstimator() *HaversineEstimator {
	return &HaversineEstimator{}
}

func (e *HaversineEstimator) Estimate(_ context.Context, origin entities.Place, destination entities.Place) (interfaces.RouteEstimate, error) {
	distance := haversine(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
	return interfaces.RouteEstimate{
		DistanceMeters: int64(distance),
		TimeSeconds:    int64(distance / averageSpeedMetersPerSecond),
	}, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

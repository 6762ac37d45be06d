package fleetops

import (
	"context"
	"testing"

	"storefront/internal/domain/entities"
)

func TestHaversineEstimator_Estimate(t *testing.T) {
	e := NewHaversineEstimator()

	t.Run("same point", func(t *testing.T) {
		p := entities.Place{Latitude: -1.286389, Longitude: 36.817223}
		est, err := e.Estimate(context.Background(), p, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.DistanceMeters != 0 || est.TimeSeconds != 0 {
			t.Fatalf("expected zero estimate, got %+v", est)
		}
	})

	t.Run("nairobi cbd to westlands", func(t *testing.T) {
		cbd := entities.Place{Latitude: -1.286389, Longitude: 36.817223}
		westlands := entities.Place{Latitude: -1.267700, Longitude: 36.811520}

		est, err := e.Estimate(context.Background(), cbd, westlands)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Straight-line distance is roughly 2.2km.
		if est.DistanceMeters < 2000 || est.DistanceMeters > 2500 {
			t.Fatalf("distance out of expected range: %d", est.DistanceMeters)
		}
		if est.TimeSeconds <= 0 || est.TimeSeconds >= est.DistanceMeters {
			t.Fatalf("implausible time estimate: %+v", est)
		}
	})
}

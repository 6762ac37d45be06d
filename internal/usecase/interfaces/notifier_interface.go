package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// INotifier fans order lifecycle events out to the notification delivery
// system. Delivery is best effort: capture never rolls back because a
// notification failed.

type INotifier interface {
	NewOrder(ctx context.Context, order entities.Order) error
	OrderPreparing(ctx context.Context, customer entities.Customer, order entities.Order) error
	DriverAssigned(ctx context.Context, order entities.Order) error
}

package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IOrderRepository persists the order graph produced by capture:
// transactions with their line items, fulfillment payloads, entities and
// orders. Orders are handed to the downstream order-management system
// after creation; only status and meta updates flow through here.

type IOrderRepository interface {
	CreateTransaction(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	CreatePayload(ctx context.Context, p entities.Payload) (entities.Payload, error)
	CreateEntity(ctx context.Context, e entities.Entity) (entities.Entity, error)
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, statuses ...entities.OrderStatus) error
	UpdateOrderMeta(ctx context.Context, orderID string, key string, value any) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}

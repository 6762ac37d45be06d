package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// Read-only adapters over externally owned storefront data. Carts,
// stores, customers and service quotes are owned by their own services;
// this service only resolves them.

type ICartRepository interface {
	GetByID(ctx context.Context, id string) (entities.Cart, error)
}

type IStoreRepository interface {
	GetByPublicID(ctx context.Context, publicID string) (entities.Store, error)
	GetLocation(ctx context.Context, publicID string) (entities.StoreLocation, error)
	GetPlace(ctx context.Context, id string) (entities.Place, error)
}

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}

type IServiceQuoteRepository interface {
	GetByPublicID(ctx context.Context, publicID string) (entities.ServiceQuote, error)
}

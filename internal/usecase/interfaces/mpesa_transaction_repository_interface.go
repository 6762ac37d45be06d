package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IMpesaTransactionRepository abstracts DynamoDB persistence for
// MpesaTransaction rows.
//
// Create initializes a PENDING row at STK push initiation; Save is the
// idempotent upsert both reconciliation triggers write through. The
// reconciler serializes Save calls per identity, so implementations only
// need last-write-wins semantics.

type IMpesaTransactionRepository interface {
	Create(ctx context.Context, tx entities.MpesaTransaction) (entities.MpesaTransaction, error)
	Save(ctx context.Context, tx entities.MpesaTransaction) (entities.MpesaTransaction, error)
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (entities.MpesaTransaction, error)
	ListPending(ctx context.Context) ([]entities.MpesaTransaction, error)
}

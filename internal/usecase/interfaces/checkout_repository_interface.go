package interfaces

import (
	"context"
	"errors"
	"storefront/internal/domain/entities"
)

// ErrCheckoutAlreadyCaptured is returned by MarkCaptured when the
// captured flag was already flipped by an earlier caller.
var ErrCheckoutAlreadyCaptured = errors.New("checkout already captured")

// ICheckoutRepository abstracts DynamoDB persistence for Checkout
// sessions.
//
// MarkCaptured must be an atomic claim on the captured transition: the
// first caller wins, every later caller gets ErrCheckoutAlreadyCaptured
// from the implementation, never a second successful flip.

type ICheckoutRepository interface {
	Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error)
	GetByToken(ctx context.Context, token string) (entities.Checkout, error)
	MarkCaptured(ctx context.Context, token string, orderID string) error
}

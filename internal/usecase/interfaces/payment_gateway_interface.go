package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// CardIntent is a provider-side payment intent reference returned to the
// client alongside the checkout token.
type CardIntent struct {
	Reference    string
	ClientSecret string
	CustomerRef  string
}

// Invoice is a provider-side invoice reference for invoice-style
// gateways.
type Invoice struct {
	Reference string
	URL       string
}

// IPaymentGateway abstracts the synchronous card/invoice provider
// (Mercado Pago). It is a black-box adapter returning a charge reference;
// confirmation is synchronous, unlike the push payment flow.
type IPaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, customer entities.Customer) (CardIntent, error)
	CreateInvoice(ctx context.Context, amountMinor int64, currency string, description string, reference string) (Invoice, error)
}

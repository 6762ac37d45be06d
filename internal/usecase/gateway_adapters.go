package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// checkoutIntent is the resolved, priced checkout handed to a gateway
// adapter for initiation.
type checkoutIntent struct {
	scope    entities.Scope
	kind     entities.GatewayKind
	cart     entities.Cart
	customer entities.Customer
	quote    entities.ServiceQuote
	options  entities.CheckoutOptions
	amount   int64
	currency string
}

// gatewayAdapter is the single capability every gateway kind implements.
// Each adapter persists the session itself because the session must only
// exist once provider-side initiation has succeeded.
type gatewayAdapter interface {
	initiate(ctx context.Context, intent *checkoutIntent) (*CheckoutInitResult, error)
}

// cashAdapter creates the session immediately; nothing to initiate with a
// provider. The acting store falls back to the cart's single distinct
// store when the request carries no store scope.
type cashAdapter struct {
	usecase *CheckoutUseCase
}

func (a *cashAdapter) initiate(ctx context.Context, intent *checkoutIntent) (*CheckoutInitResult, error) {
	checkout := a.usecase.newCheckout(intent)

	if checkout.StoreID == "" {
		if ids := intent.cart.StoreIDs(); len(ids) == 1 {
			store, err := a.usecase.stores.GetByPublicID(ctx, ids[0])
			if err != nil {
				return nil, err
			}
			// Sessions carry public ids; capture resolves the acting
			// store through the public-id index.
			checkout.StoreID = store.PublicID
		}
	}

	created, err := a.usecase.checkouts.Create(ctx, checkout)
	if err != nil {
		return nil, err
	}
	return &CheckoutInitResult{Token: created.Token}, nil
}

// cardAdapter creates a provider-side payment intent alongside the
// session and returns its client secret.
type cardAdapter struct {
	usecase *CheckoutUseCase
	gateway interfaces.IPaymentGateway
}

func (a *cardAdapter) initiate(ctx context.Context, intent *checkoutIntent) (*CheckoutInitResult, error) {
	if a.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}

	cardIntent, err := a.gateway.CreateIntent(ctx, intent.amount, intent.currency, intent.customer)
	if err != nil {
		return nil, err
	}

	created, err := a.usecase.checkouts.Create(ctx, a.usecase.newCheckout(intent))
	if err != nil {
		return nil, err
	}
	return &CheckoutInitResult{Token: created.Token, CardIntent: &cardIntent}, nil
}

// invoiceAdapter issues a provider invoice for the charge amount. Invoice
// bodies carry whole currency units, so the minor-unit amount converts at
// this boundary only.
type invoiceAdapter struct {
	usecase *CheckoutUseCase
	gateway interfaces.IPaymentGateway
}

func (a *invoiceAdapter) initiate(ctx context.Context, intent *checkoutIntent) (*CheckoutInitResult, error) {
	if a.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}

	description := fmt.Sprintf("Cart %s checkout", intent.cart.ID)
	invoice, err := a.gateway.CreateInvoice(ctx, intent.amount, intent.currency, description, intent.cart.ID)
	if err != nil {
		return nil, err
	}

	created, err := a.usecase.checkouts.Create(ctx, a.usecase.newCheckout(intent))
	if err != nil {
		return nil, err
	}
	return &CheckoutInitResult{Token: created.Token, Invoice: &invoice}, nil
}

// mpesaAdapter sends the STK push first and only persists the session and
// the PENDING transaction row when the provider accepted the push. A push
// failure leaves no state behind.
type mpesaAdapter struct {
	usecase      *CheckoutUseCase
	client       interfaces.IMpesaClient
	transactions interfaces.IMpesaTransactionRepository
}

func (a *mpesaAdapter) initiate(ctx context.Context, intent *checkoutIntent) (*CheckoutInitResult, error) {
	if a.client == nil {
		return nil, ErrGatewayMisconfigured
	}

	phone, err := entities.NormalizePhoneNumber(intent.customer.Phone)
	if err != nil {
		return nil, err
	}

	reference := "Transaction#" + uuid.NewString()[:10]
	push, err := a.client.Initiate(ctx, intent.amount, phone, reference)
	if err != nil {
		return nil, err
	}
	if push.ResponseCode != "0" {
		log.WithFields(log.Fields{
			"response_code": push.ResponseCode,
			"cart_id":       intent.cart.ID,
		}).Error("[checkout][mpesa] stk push rejected")
		return nil, ErrPushInitiateFailed
	}

	checkout := a.usecase.newCheckout(intent)
	checkout.MerchantRequestID = push.MerchantRequestID
	checkout.CheckoutRequestID = push.CheckoutRequestID

	created, err := a.usecase.checkouts.Create(ctx, checkout)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, err = a.transactions.Create(ctx, entities.MpesaTransaction{
		MerchantRequestID: push.MerchantRequestID,
		CheckoutRequestID: push.CheckoutRequestID,
		Amount:            intent.amount,
		PhoneNumber:       phone,
		Status:            entities.MpesaStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutInitResult{Token: created.Token, Mpesa: &push}, nil
}

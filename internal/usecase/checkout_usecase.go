package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrGatewayNotConfigured = errors.New("no gateway configured")
	ErrGatewayMisconfigured = errors.New("gateway not configured correctly")
	ErrCartNotFound         = errors.New("cart not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrServiceQuoteNotFound = errors.New("service quote not found")
	ErrPushInitiateFailed   = errors.New("mpesa stk push transaction failed")
)

// CheckoutInput is the validated beforeCheckout request.
type CheckoutInput struct {
	Gateway        string
	CustomerID     string
	CartID         string
	ServiceQuoteID string
	Cash           bool
	Pickup         bool
	Tip            entities.TipValue
	DeliveryTip    entities.TipValue
}

// CheckoutInitResult carries the session token plus whatever the chosen
// gateway handed back for the client to continue with.
type CheckoutInitResult struct {
	Token      string
	Mpesa      *interfaces.MpesaInitiation
	CardIntent *interfaces.CardIntent
	Invoice    *interfaces.Invoice
}

// ICheckoutUseCase initializes checkout sessions, dispatching to the
// gateway adapter matching the requested gateway kind.

type ICheckoutUseCase interface {
	BeforeCheckout(ctx context.Context, scope entities.Scope, in CheckoutInput) (CheckoutInitResult, error)
}

type CheckoutUseCase struct {
	checkouts interfaces.ICheckoutRepository
	carts     interfaces.ICartRepository
	customers interfaces.ICustomerRepository
	quotes    interfaces.IServiceQuoteRepository
	stores    interfaces.IStoreRepository
	adapters  map[entities.GatewayKind]gatewayAdapter
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	checkouts interfaces.ICheckoutRepository,
	carts interfaces.ICartRepository,
	customers interfaces.ICustomerRepository,
	quotes interfaces.IServiceQuoteRepository,
	stores interfaces.IStoreRepository,
	mpesaClient interfaces.IMpesaClient,
	mpesaTransactions interfaces.IMpesaTransactionRepository,
	cardGateway interfaces.IPaymentGateway,
) *CheckoutUseCase {
	u := &CheckoutUseCase{
		checkouts: checkouts,
		carts:     carts,
		customers: customers,
		quotes:    quotes,
		stores:    stores,
	}
	u.adapters = map[entities.GatewayKind]gatewayAdapter{
		entities.GatewayCash:     &cashAdapter{usecase: u},
		entities.GatewayCard:     &cardAdapter{usecase: u, gateway: cardGateway},
		entities.GatewayInvoice:  &invoiceAdapter{usecase: u, gateway: cardGateway},
		entities.GatewayMpesaSTK: &mpesaAdapter{usecase: u, client: mpesaClient, transactions: mpesaTransactions},
	}
	return u
}

func (u *CheckoutUseCase) BeforeCheckout(ctx context.Context, scope entities.Scope, in CheckoutInput) (CheckoutInitResult, error) {
	kind, ok := entities.ParseGatewayKind(in.Gateway)
	if in.Cash {
		kind, ok = entities.GatewayCash, true
	}
	if !ok {
		log.WithField("gateway", in.Gateway).Warn("[checkout][usecase] unknown gateway")
		return CheckoutInitResult{}, ErrGatewayNotConfigured
	}

	cart, err := u.carts.GetByID(ctx, strings.TrimSpace(in.CartID))
	if err != nil {
		return CheckoutInitResult{}, err
	}
	if cart.ID == "" {
		return CheckoutInitResult{}, ErrCartNotFound
	}

	customer, err := u.customers.GetByID(ctx, strings.TrimSpace(in.CustomerID))
	if err != nil {
		return CheckoutInitResult{}, err
	}
	if customer.ID == "" {
		return CheckoutInitResult{}, ErrCustomerNotFound
	}

	quote, err := u.quotes.GetByPublicID(ctx, strings.TrimSpace(in.ServiceQuoteID))
	if err != nil {
		return CheckoutInitResult{}, err
	}
	if quote.ID == "" {
		return CheckoutInitResult{}, ErrServiceQuoteNotFound
	}

	options := entities.CheckoutOptions{
		IsPickup:         in.Pickup,
		IsCashOnDelivery: kind == entities.GatewayCash,
		Tip:              in.Tip,
		DeliveryTip:      in.DeliveryTip,
	}

	intent := &checkoutIntent{
		scope:    scope,
		kind:     kind,
		cart:     cart,
		customer: customer,
		quote:    quote,
		options:  options,
		amount:   CalculateCheckoutAmount(&cart, &quote, options),
		currency: resolveCurrency(&cart, scope),
	}

	log.WithFields(log.Fields{
		"gateway":  kind,
		"cart_id":  cart.ID,
		"customer": customer.ID,
		"amount":   intent.amount,
		"currency": intent.currency,
	}).Info("[checkout][usecase] before-checkout start")

	adapter := u.adapters[kind]
	result, err := adapter.initiate(ctx, intent)
	if err != nil {
		log.WithFields(log.Fields{"gateway": kind, "cart_id": cart.ID}).WithError(err).Error("[checkout][usecase] before-checkout failed")
		return CheckoutInitResult{}, err
	}
	log.WithFields(log.Fields{"gateway": kind, "token": result.Token}).Info("[checkout][usecase] before-checkout success")
	return *result, nil
}

// newCheckout builds the base session record shared by every adapter; the
// adapter persists it once provider-side initiation succeeded (no session
// may exist for a checkout that never reached the provider).
func (u *CheckoutUseCase) newCheckout(intent *checkoutIntent) entities.Checkout {
	cart := intent.cart
	return entities.Checkout{
		Token:          "checkout_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		PublicID:       "checkout_" + uuid.NewString()[:8],
		CompanyID:      intent.scope.CompanyID,
		StoreID:        intent.scope.StoreID,
		NetworkID:      intent.scope.NetworkID,
		CartID:         cart.ID,
		Gateway:        intent.kind,
		ServiceQuoteID: intent.quote.PublicID,
		OwnerID:        intent.customer.ID,
		Amount:         intent.amount,
		Currency:       intent.currency,
		Options:        intent.options,
		CartState:      &cart,
		CreatedAt:      time.Now().UTC(),
	}
}

func resolveCurrency(cart *entities.Cart, scope entities.Scope) string {
	if cart.Currency != "" {
		return cart.Currency
	}
	return scope.Currency
}

// CalculateCheckoutAmount computes the charge amount in minor units:
// subtotal, plus tip, plus delivery tip and delivery fee unless the
// order is a pickup. Percentage tips resolve against the subtotal.
func CalculateCheckoutAmount(cart *entities.Cart, quote *entities.ServiceQuote, options entities.CheckoutOptions) int64 {
	subtotal := cart.Subtotal()
	total := subtotal

	if !options.Tip.IsZero() {
		total += options.Tip.Resolve(subtotal)
	}
	if !options.DeliveryTip.IsZero() && !options.IsPickup {
		total += options.DeliveryTip.Resolve(subtotal)
	}
	if !options.IsPickup && quote != nil {
		total += quote.Amount
	}
	return total
}

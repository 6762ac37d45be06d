package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCheckoutNotFound    = errors.New("checkout not found")
	ErrCartExpired         = errors.New("cart expired")
	ErrAlreadyCaptured     = errors.New("checkout already captured")
	ErrNoStoreResolvable   = errors.New("no storefront in request to capture order")
	ErrUpstreamVendorOrder = errors.New("integrated vendor order creation failed")
)

// CaptureResult is the created order plus any M-Pesa payment evidence
// found for the session; missing evidence is not an error.
type CaptureResult struct {
	Order entities.Order
	Mpesa *entities.MpesaTransaction
}

// ICaptureUseCase turns a confirmed checkout session into the ledger
// transaction, fulfillment payload(s) and order(s).

type ICaptureUseCase interface {
	Capture(ctx context.Context, scope entities.Scope, token string, transactionDetails map[string]any) (CaptureResult, error)
}

type CaptureUseCase struct {
	checkouts    interfaces.ICheckoutRepository
	customers    interfaces.ICustomerRepository
	quotes       interfaces.IServiceQuoteRepository
	stores       interfaces.IStoreRepository
	orders       interfaces.IOrderRepository
	transactions interfaces.IMpesaTransactionRepository
	vendors      interfaces.IIntegratedVendorClient
	estimator    interfaces.IRouteEstimator
	notifier     interfaces.INotifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ ICaptureUseCase = (*CaptureUseCase)(nil)

func NewCaptureUseCase(
	checkouts interfaces.ICheckoutRepository,
	customers interfaces.ICustomerRepository,
	quotes interfaces.IServiceQuoteRepository,
	stores interfaces.IStoreRepository,
	orders interfaces.IOrderRepository,
	transactions interfaces.IMpesaTransactionRepository,
	vendors interfaces.IIntegratedVendorClient,
	estimator interfaces.IRouteEstimator,
	notifier interfaces.INotifier,
) *CaptureUseCase {
	return &CaptureUseCase{
		checkouts:    checkouts,
		customers:    customers,
		quotes:       quotes,
		stores:       stores,
		orders:       orders,
		transactions: transactions,
		vendors:      vendors,
		estimator:    estimator,
		notifier:     notifier,
		locks:        map[string]*sync.Mutex{},
	}
}

// captureContext is everything capture resolved up-front, shared between
// the single-store and the network split paths.
type captureContext struct {
	scope    entities.Scope
	checkout entities.Checkout
	cart     *entities.Cart
	customer entities.Customer
	quote    entities.ServiceQuote
	details  map[string]any
	amount   int64
	currency string
	gateway  entities.GatewayKind
}

func (u *CaptureUseCase) Capture(ctx context.Context, scope entities.Scope, token string, transactionDetails map[string]any) (CaptureResult, error) {
	token = strings.TrimSpace(token)
	if transactionDetails == nil {
		transactionDetails = map[string]any{}
	}

	// Duplicate capture calls for the same token are serialized; combined
	// with the conditional captured flip in the repository, exactly one
	// order graph is ever produced per session.
	lock := u.lockFor(token)
	lock.Lock()
	defer lock.Unlock()

	checkout, err := u.checkouts.GetByToken(ctx, token)
	if err != nil {
		return CaptureResult{}, err
	}
	if checkout.Token == "" {
		return CaptureResult{}, ErrCheckoutNotFound
	}
	if checkout.Captured {
		return CaptureResult{}, ErrAlreadyCaptured
	}

	// The frozen cart snapshot is the pricing authority; a session whose
	// snapshot is gone cannot be captured.
	if checkout.CartState == nil || len(checkout.CartState.Items) == 0 {
		return CaptureResult{}, ErrCartExpired
	}
	cart := checkout.CartState

	customer, err := u.customers.GetByID(ctx, checkout.OwnerID)
	if err != nil {
		return CaptureResult{}, err
	}
	quote, err := u.quotes.GetByPublicID(ctx, checkout.ServiceQuoteID)
	if err != nil {
		return CaptureResult{}, err
	}
	if quote.ID == "" {
		return CaptureResult{}, ErrServiceQuoteNotFound
	}

	gateway := checkout.Gateway
	if checkout.Options.IsCashOnDelivery {
		gateway = entities.GatewayCash
	}

	cc := &captureContext{
		scope:    scope,
		checkout: checkout,
		cart:     cart,
		customer: customer,
		quote:    quote,
		details:  transactionDetails,
		// Never trust a client-supplied amount; recompute from the snapshot.
		amount:   CalculateCheckoutAmount(cart, &quote, checkout.Options),
		currency: checkout.Currency,
		gateway:  gateway,
	}

	log.WithFields(log.Fields{
		"token":    token,
		"amount":   cc.amount,
		"gateway":  gateway,
		"networks": scope.IsNetwork(),
	}).Info("[capture][usecase] capture start")

	if scope.IsNetwork() && cart.IsMultiStore() {
		return u.captureNetworkOrders(ctx, cc)
	}

	store, err := u.resolveActingStore(ctx, cc)
	if err != nil {
		return CaptureResult{}, err
	}

	vendorOrderRef, err := u.createVendorOrderIfNeeded(ctx, cc)
	if err != nil {
		return CaptureResult{}, err
	}

	tx, err := u.createLedger(ctx, cc, &store, "Storefront order", nil)
	if err != nil {
		return CaptureResult{}, err
	}

	origin, err := u.resolveOriginPlaceID(ctx, cc)
	if err != nil {
		return CaptureResult{}, err
	}

	payload := entities.Payload{
		ID:             uuid.NewString(),
		CompanyID:      cc.scope.CompanyID,
		PickupPlaceID:  origin,
		DropoffPlaceID: cc.quote.Destination,
		ReturnPlaceID:  origin,
		PaymentMethod:  string(cc.gateway),
		Type:           "storefront",
	}
	if cc.checkout.Options.IsCashOnDelivery {
		payload.CODAmount = cc.amount
		payload.CODCurrency = cc.currency
		payload.CODMethod = "cash"
	}
	payload, err = u.orders.CreatePayload(ctx, payload)
	if err != nil {
		return CaptureResult{}, err
	}

	if err := u.createEntities(ctx, cc, payload.ID, cc.cart.Items); err != nil {
		return CaptureResult{}, err
	}

	meta := u.orderMeta(cc, &store, cc.cart.Subtotal(), false)
	order := entities.Order{
		ID:            uuid.NewString(),
		PublicID:      "order_" + uuid.NewString()[:8],
		CompanyID:     firstNonEmpty(store.CompanyID, cc.scope.CompanyID),
		PayloadID:     payload.ID,
		CustomerID:    cc.customer.ID,
		TransactionID: tx.ID,
		Adhoc:         store.IsOption("auto_dispatch"),
		Type:          "storefront",
		Status:        entities.OrderStatusCreated,
		Meta:          meta,
		CreatedAt:     time.Now().UTC(),
	}
	if vendorOrderRef != "" {
		order.Meta[entities.MetaIntegratedVendor] = cc.quote.IntegratedVendorID
		order.Meta[entities.MetaIntegratedVendorOrder] = vendorOrderRef
		order.FacilitatorID = cc.quote.IntegratedVendorID
	}
	order, err = u.orders.CreateOrder(ctx, order)
	if err != nil {
		return CaptureResult{}, err
	}

	// The payment is economically committed once the order graph exists:
	// notification and status-advance failures are logged, never rolled
	// back.
	u.notifyNewOrder(ctx, order)
	order = u.autoAccept(ctx, &store, order, cc.customer)

	if err := u.markCaptured(ctx, token, order.ID); err != nil {
		return CaptureResult{}, err
	}

	log.WithFields(log.Fields{"token": token, "order_id": order.PublicID}).Info("[capture][usecase] capture success")
	return CaptureResult{Order: order, Mpesa: u.paymentEvidence(ctx, cc.checkout)}, nil
}

func (u *CaptureUseCase) resolveActingStore(ctx context.Context, cc *captureContext) (entities.Store, error) {
	// Network checkout funneled to a single store: the store comes from
	// the cart items. Direct checkout: the request/session scope names it.
	storeID := cc.scope.StoreID
	if storeID == "" {
		storeID = cc.checkout.StoreID
	}
	if cc.scope.IsNetwork() && !cc.cart.IsMultiStore() {
		if ids := cc.cart.StoreIDs(); len(ids) == 1 {
			storeID = ids[0]
		}
	}
	if storeID == "" {
		return entities.Store{}, ErrNoStoreResolvable
	}

	store, err := u.stores.GetByPublicID(ctx, storeID)
	if err != nil {
		return entities.Store{}, err
	}
	if store.ID == "" {
		return entities.Store{}, ErrNoStoreResolvable
	}
	return store, nil
}

func (u *CaptureUseCase) createVendorOrderIfNeeded(ctx context.Context, cc *captureContext) (string, error) {
	if !cc.quote.FromIntegratedVendor() || u.vendors == nil {
		return "", nil
	}
	ref, err := u.vendors.CreateOrderFromServiceQuote(ctx, cc.quote, cc.details)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamVendorOrder, err)
	}
	return ref, nil
}

// createLedger writes the transaction and its line items: one product
// item per cart item, then at most one delivery fee, tip and delivery
// tip per the checkout options.
func (u *CaptureUseCase) createLedger(ctx context.Context, cc *captureContext, store *entities.Store, description string, itemMeta func(item entities.CartItem) map[string]any) (entities.Transaction, error) {
	subtotal := cc.cart.Subtotal()
	options := cc.checkout.Options

	meta := map[string]any{}
	if store != nil {
		meta["storefront"] = store.Name
		meta["storefront_id"] = store.PublicID
	}
	for k, v := range cc.details {
		meta[k] = v
	}

	gatewayTransactionID := detailsTransactionID(cc.details)
	if gatewayTransactionID == "" {
		gatewayTransactionID = "txn_" + uuid.NewString()[:13]
	}

	tx := entities.Transaction{
		ID:                   uuid.NewString(),
		CompanyID:            cc.scope.CompanyID,
		CustomerID:           cc.customer.ID,
		GatewayTransactionID: gatewayTransactionID,
		Gateway:              cc.gateway,
		Amount:               cc.amount,
		Currency:             cc.currency,
		Description:          description,
		Type:                 "storefront",
		Status:               "success",
		Meta:                 meta,
		CreatedAt:            time.Now().UTC(),
	}

	for _, item := range cc.cart.Items {
		line := entities.TransactionItem{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			Amount:        item.Subtotal,
			Currency:      cc.currency,
			Details:       itemDescription(item),
			Code:          entities.LineItemProduct,
		}
		if itemMeta != nil {
			line.Meta = itemMeta(item)
		}
		tx.Items = append(tx.Items, line)
	}

	if !options.IsPickup {
		tx.Items = append(tx.Items, entities.TransactionItem{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			Amount:        cc.quote.Amount,
			Currency:      cc.quote.Currency,
			Details:       "Delivery fee",
			Code:          entities.LineItemDeliveryFee,
		})
	}
	if !options.Tip.IsZero() {
		tx.Items = append(tx.Items, entities.TransactionItem{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			Amount:        options.Tip.Resolve(subtotal),
			Currency:      cc.currency,
			Details:       "Tip",
			Code:          entities.LineItemTip,
		})
	}
	if !options.DeliveryTip.IsZero() && !options.IsPickup {
		tx.Items = append(tx.Items, entities.TransactionItem{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			Amount:        options.DeliveryTip.Resolve(subtotal),
			Currency:      cc.currency,
			Details:       "Delivery Tip",
			Code:          entities.LineItemDeliveryTip,
		})
	}

	return u.orders.CreateTransaction(ctx, tx)
}

// resolveOriginPlaceID prefers the service quote's explicit origin; when
// the quote has none the first resolvable store location of the cart
// items is used.
func (u *CaptureUseCase) resolveOriginPlaceID(ctx context.Context, cc *captureContext) (string, error) {
	if len(cc.quote.Origin) > 0 {
		return cc.quote.Origin[0], nil
	}

	for _, item := range cc.cart.Items {
		locationID := item.StoreLocationID
		if locationID == "" {
			store, err := u.stores.GetByPublicID(ctx, item.StoreID)
			if err != nil {
				return "", err
			}
			if len(store.Locations) > 0 {
				locationID = store.Locations[0].PublicID
			}
		}
		if locationID == "" {
			continue
		}
		location, err := u.stores.GetLocation(ctx, locationID)
		if err != nil {
			return "", err
		}
		if location.PlaceID != "" {
			return location.PlaceID, nil
		}
	}
	return "", nil
}

func (u *CaptureUseCase) createEntities(ctx context.Context, cc *captureContext, payloadID string, items []entities.CartItem) error {
	for _, item := range items {
		_, err := u.orders.CreateEntity(ctx, entities.Entity{
			ID:         uuid.NewString(),
			CompanyID:  cc.scope.CompanyID,
			PayloadID:  payloadID,
			CustomerID: cc.customer.ID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			Meta: map[string]any{
				"variants":     item.Variants,
				"addons":       item.Addons,
				"subtotal":     item.Subtotal,
				"quantity":     item.Quantity,
				"scheduled_at": item.ScheduledAt,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// orderMeta assembles the amount-breakdown metadata common to all
// orders. Child orders in a network split carry their store subtotal only
// (childSplit true zeroes the fee and tips).
func (u *CaptureUseCase) orderMeta(cc *captureContext, store *entities.Store, subtotal int64, childSplit bool) map[string]any {
	options := cc.checkout.Options

	deliveryFee := int64(0)
	tip := int64(0)
	deliveryTip := int64(0)
	total := subtotal
	if !childSplit {
		if !options.IsPickup {
			deliveryFee = cc.quote.Amount
		}
		tip = options.Tip.Resolve(cc.cart.Subtotal())
		if !options.IsPickup {
			deliveryTip = options.DeliveryTip.Resolve(cc.cart.Subtotal())
		}
		total = cc.amount
	}

	meta := map[string]any{
		entities.MetaCheckoutID:  cc.checkout.PublicID,
		entities.MetaSubtotal:    subtotal,
		entities.MetaDeliveryFee: deliveryFee,
		entities.MetaTip:         tip,
		entities.MetaDeliveryTip: deliveryTip,
		entities.MetaTotal:       total,
		entities.MetaCurrency:    cc.currency,
		entities.MetaIsPickup:    options.IsPickup,
	}
	if store != nil {
		meta["storefront"] = store.Name
		meta["storefront_id"] = store.PublicID
		meta[entities.MetaRequirePOD] = store.GetOption("require_pod")
		meta[entities.MetaPODMethod] = store.PODMethod
	}
	for k, v := range cc.details {
		meta[k] = v
	}
	return meta
}

func (u *CaptureUseCase) notifyNewOrder(ctx context.Context, order entities.Order) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.NewOrder(ctx, order); err != nil {
		log.WithField("order_id", order.PublicID).WithError(err).Error("[capture][usecase] new-order notification failed")
	}
}

// autoAccept advances order status per the owning store's options:
// directly to preparing, or preparing then dispatched when auto_dispatch
// is on, and tells the customer. It returns the order with its advanced
// status so the capture response reflects what the store sees.
func (u *CaptureUseCase) autoAccept(ctx context.Context, store *entities.Store, order entities.Order, customer entities.Customer) entities.Order {
	if !store.IsOption("auto_accept_orders") {
		return order
	}

	statuses := []entities.OrderStatus{entities.OrderStatusPreparing}
	if store.IsOption("auto_dispatch") {
		statuses = append(statuses, entities.OrderStatusDispatched)
	}
	if err := u.orders.UpdateOrderStatus(ctx, order.ID, statuses...); err != nil {
		log.WithField("order_id", order.PublicID).WithError(err).Error("[capture][usecase] auto-accept status update failed")
		return order
	}
	if fresh, err := u.orders.GetOrder(ctx, order.ID); err == nil && fresh.ID != "" {
		order = fresh
	}
	if u.notifier != nil {
		if err := u.notifier.OrderPreparing(ctx, customer, order); err != nil {
			log.WithField("order_id", order.PublicID).WithError(err).Error("[capture][usecase] order-preparing notification failed")
		}
	}
	return order
}

func (u *CaptureUseCase) markCaptured(ctx context.Context, token, orderID string) error {
	err := u.checkouts.MarkCaptured(ctx, token, orderID)
	if errors.Is(err, interfaces.ErrCheckoutAlreadyCaptured) {
		return ErrAlreadyCaptured
	}
	return err
}

// paymentEvidence attaches any recorded M-Pesa transaction to the
// response for client display; absence is not an error.
func (u *CaptureUseCase) paymentEvidence(ctx context.Context, checkout entities.Checkout) *entities.MpesaTransaction {
	if checkout.CheckoutRequestID == "" {
		return nil
	}
	tx, err := u.transactions.GetByCheckoutRequestID(ctx, checkout.CheckoutRequestID)
	if err != nil {
		log.WithField("checkout_request_id", checkout.CheckoutRequestID).WithError(err).Warn("[capture][usecase] payment evidence lookup failed")
		return nil
	}
	if tx.CheckoutRequestID == "" {
		return nil
	}
	return &tx
}

func (u *CaptureUseCase) lockFor(key string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.locks[key]; !ok {
		u.locks[key] = &sync.Mutex{}
	}
	return u.locks[key]
}

func detailsTransactionID(details map[string]any) string {
	for _, key := range []string{"id", "transaction_id"} {
		if v, ok := details[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func itemDescription(item entities.CartItem) string {
	if item.Quantity > 1 {
		return fmt.Sprintf("%d x %s", item.Quantity, item.Name)
	}
	return item.Name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

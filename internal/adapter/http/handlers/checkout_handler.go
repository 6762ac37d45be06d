package handlers

import (
	"errors"
	"net/http"
	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/domain/entities"
	"storefront/internal/metrics"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles HTTP requests for checkout sessions: session
// initialization (before-checkout) and order capture.

type CheckoutHandler struct {
	checkout usecase.ICheckoutUseCase
	capture  usecase.ICaptureUseCase
}

func NewCheckoutHandler(checkout usecase.ICheckoutUseCase, capture usecase.ICaptureUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, capture: capture}
}

// BeforeCheckout initializes a checkout session for the requested
// gateway and returns the session token plus the gateway's extras.
func (h *CheckoutHandler) BeforeCheckout(c *gin.Context) {
	var payload request.InitializeCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	scope := scopeFromRequest(c)
	in := usecase.CheckoutInput{
		Gateway:        payload.Gateway,
		CustomerID:     payload.Customer,
		CartID:         payload.Cart,
		ServiceQuoteID: payload.ResolveServiceQuoteID(),
		Cash:           payload.ResolveCash(),
		Pickup:         payload.Pickup,
		Tip:            payload.Tip,
		DeliveryTip:    payload.ResolveDeliveryTip(),
	}

	result, err := h.checkout.BeforeCheckout(c.Request.Context(), scope, in)
	if err != nil {
		log.WithFields(log.Fields{"gateway": payload.Gateway, "cart": payload.Cart}).WithError(err).Error("[checkout][handler] before-checkout failed")
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.CheckoutsInitiated.WithLabelValues(payload.Gateway).Inc()

	c.JSON(http.StatusCreated, response.FromCheckoutInit(result))
}

// CaptureOrder finalizes a checkout session into one or more orders and
// returns the (master) order with the payment evidence attached.
func (h *CheckoutHandler) CaptureOrder(c *gin.Context) {
	var payload request.CaptureOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	scope := scopeFromRequest(c)
	result, err := h.capture.Capture(c.Request.Context(), scope, payload.Token, payload.TransactionDetails)
	if err != nil {
		log.WithFields(log.Fields{"token": payload.Token}).WithError(err).Error("[checkout][handler] capture failed")
		metrics.CapturesTotal.WithLabelValues(captureOutcome(err)).Inc()
		appErr := mapCaptureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.CapturesTotal.WithLabelValues("success").Inc()

	c.JSON(http.StatusCreated, response.FromCaptureResult(result))
}

// scopeFromRequest resolves the ambient storefront scope from request
// headers set by the gateway in front of this service.
func scopeFromRequest(c *gin.Context) entities.Scope {
	return entities.Scope{
		CompanyID: c.GetHeader("X-Company-ID"),
		StoreID:   c.GetHeader("X-Store-ID"),
		NetworkID: c.GetHeader("X-Network-ID"),
		Currency:  c.GetHeader("X-Currency"),
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Requested gateway is not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayMisconfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_MISCONFIGURED", "Requested gateway is misconfigured", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceQuoteNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_QUOTE_NOT_FOUND", "Service quote not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidPhoneNumber):
		return pkg.NewDomainErrorSimple("INVALID_PHONE_NUMBER", "Customer phone number is not a valid M-Pesa number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPushInitiateFailed):
		return pkg.NewDomainErrorSimple("PUSH_INITIATE_FAILED", "Payment provider rejected the push request", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapCaptureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartExpired):
		return pkg.NewDomainErrorSimple("CART_EXPIRED", "Cart expired before capture", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyCaptured):
		return pkg.NewDomainErrorSimple("ALREADY_CAPTURED", "Checkout session already captured", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoStoreResolvable):
		return pkg.NewDomainErrorSimple("NO_STORE_RESOLVABLE", "No acting store resolvable for this checkout", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpstreamVendorOrder):
		return pkg.NewDomainErrorSimple("VENDOR_ORDER_FAILED", "Integrated vendor order creation failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func captureOutcome(err error) string {
	switch {
	case errors.Is(err, usecase.ErrAlreadyCaptured):
		return "already_captured"
	case errors.Is(err, usecase.ErrCartExpired):
		return "cart_expired"
	default:
		return "error"
	}
}

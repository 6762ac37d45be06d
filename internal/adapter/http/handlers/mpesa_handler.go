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

const (
	callbackAck  = "OK"
	callbackNack = "!OK"
)

// MpesaHandler handles the Daraja STK callback and the transaction
// status lookup. The callback endpoint always answers 200 with a
// literal OK / !OK body; the provider retries on anything else and a
// malformed or failed callback is not something a retry will fix. OK is
// reserved for callbacks recorded as successful payments.

type MpesaHandler struct {
	reconciler usecase.IMpesaReconcilerUseCase
}

func NewMpesaHandler(reconciler usecase.IMpesaReconcilerUseCase) *MpesaHandler {
	return &MpesaHandler{reconciler: reconciler}
}

func (h *MpesaHandler) Callback(c *gin.Context) {
	var payload request.StkCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Error("[mpesa][handler] callback body unparseable")
		c.String(http.StatusOK, callbackNack)
		return
	}

	cb := payload.Callback()
	status, err := h.reconciler.HandleCallback(c.Request.Context(), usecase.StkCallbackInput{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
		AmountMinor:       cb.AmountMinor(),
		PhoneNumber:       cb.PhoneNumber(),
		ReceiptNumber:     cb.ReceiptNumber(),
		TransactionDate:   cb.TransactionDate(),
	})
	if err != nil {
		log.WithFields(log.Fields{"checkout_request_id": cb.CheckoutRequestID}).WithError(err).Error("[mpesa][handler] callback processing failed")
		metrics.MpesaCallbacksTotal.WithLabelValues("error").Inc()
		c.String(http.StatusOK, callbackNack)
		return
	}
	metrics.MpesaCallbacksTotal.WithLabelValues(string(status)).Inc()

	if status == entities.MpesaStatusSuccess {
		c.String(http.StatusOK, callbackAck)
		return
	}
	c.String(http.StatusOK, callbackNack)
}

func (h *MpesaHandler) Status(c *gin.Context) {
	checkoutRequestID := c.Query("checkout_request_id")
	if checkoutRequestID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "checkout_request_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, err := h.reconciler.GetStatus(c.Request.Context(), checkoutRequestID)
	if err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			appErr := pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMpesaStatus(status))
}

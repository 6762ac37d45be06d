package routes

import (
	"storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckouts = "/checkouts"
	PathMpesa     = "/mpesa"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, mpesaHandler *handlers.MpesaHandler) {
	checkouts := rg.Group(PathCheckouts)
	{
		checkouts.POST("/before-checkout", checkoutHandler.BeforeCheckout)
		checkouts.POST("/capture-order", checkoutHandler.CaptureOrder)
	}

	mpesa := rg.Group(PathMpesa)
	{
		// Daraja posts the STK result here; responses are the literal
		// OK / !OK strings the provider expects.
		mpesa.POST("/callback", mpesaHandler.Callback)
		mpesa.GET("/status", mpesaHandler.Status)
	}
}

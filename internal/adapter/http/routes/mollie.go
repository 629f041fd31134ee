package routes

import (
	"mollie_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMollie = "/mollie"
)

// addMollieRoutes mounts the checkout API. The webhook path must stay in sync
// with config.WebhookPath, which is what Mollie is told to call.
func addMollieRoutes(rg *gin.RouterGroup, h *handlers.MollieHandler) {
	mollie := rg.Group(PathMollie)
	{
		mollie.POST("/webhook", h.Webhook)

		mollie.POST("/payments", h.CreatePayment)
		mollie.POST("/payments/first", h.CreateFirstRecurringPayment)
		mollie.GET("/payments/:payment_id/checkout-url", h.GetCheckoutURL)

		mollie.POST("/customers", h.CreateCustomer)
		mollie.GET("/orders/:payment_id", h.GetOrder)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/bayzedahmedandthe/bistro-boss-server/controllers"
)

// PaymentRoutes wires checkout. Creating an intent charges nobody by itself,
// but it belongs to a signed-in cart owner.
func PaymentRoutes(router *gin.Engine, payments *controller.PaymentHandler, authenticate gin.HandlerFunc) {
	router.POST("/create-payment-intent", authenticate, payments.CreatePaymentIntent())
}

package controllers

import (
	"log"
	"net/http"

	"github.com/bayzedahmedandthe/bistro-boss-server/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler creates payment intents for checkout.
type PaymentHandler struct {
	Intents payment.IntentCreator
}

func NewPaymentHandler(intents payment.IntentCreator) *PaymentHandler {
	return &PaymentHandler{Intents: intents}
}

// CreatePaymentIntent handles POST /create-payment-intent. No idempotency
// key is sent, so a repeated request creates a second intent at the provider.
func (h *PaymentHandler) CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Price float64 `json:"price" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		amount := payment.MinorUnits(body.Price)
		secret, err := h.Intents.CreateIntent(c.Request.Context(), amount, payment.CurrencyUSD)
		if err != nil {
			log.Printf("creating payment intent: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment intent was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

package payment

import (
	"context"
	"math"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// CurrencyUSD is the only currency this server charges in.
const CurrencyUSD = "usd"

// IntentCreator creates a payment intent for an amount in minor units and
// returns the client secret the frontend needs to complete the payment.
// Handlers depend on this interface so tests can substitute the provider.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeGateway is the production IntentCreator backed by the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a price in major units to integer minor units.
// Rounding at the second decimal keeps cent-precision prices exact
// (19.99 becomes 1999, not the 1998 a raw float truncation produces).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

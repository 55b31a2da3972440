package client

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

type StripeClient interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*IntentResponse, error)
}

type IntentResponse struct {
	ID           string
	ClientSecret string
	Status       string
}

type stripeClientImpl struct{}

// NewStripeClient sets the package-level stripe key. Payment intents are
// restricted to card payment methods.
func NewStripeClient(secretKey string) StripeClient {
	stripe.Key = secretKey
	return &stripeClientImpl{}
}

func (c *stripeClientImpl) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*IntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, newProviderError("stripe", stripeErr.HTTPStatusCode, stripeErr.Msg)
		}
		return nil, wrapTransportError("stripe", err)
	}

	return &IntentResponse{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

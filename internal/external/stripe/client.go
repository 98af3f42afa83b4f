package stripe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"UnrulyHuman/internal/domain/gateway"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

var _ gateway.Provider = (*Client)(nil)

// Client creates hosted checkout sessions through the Stripe API.
type Client struct {
	sessions *session.Client
}

type Options struct {
	SecretKey string
	Timeout   time.Duration
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
	Logger  *slog.Logger
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}

	cfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: opts.Timeout},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if opts.Logger != nil {
		cfg.LeveledLogger = NewLeveledLogger(opts.Logger)
	}
	if opts.BaseURL != "" {
		cfg.URL = stripe.String(opts.BaseURL)
	}

	return &Client{
		sessions: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Key: opts.SecretKey,
		},
	}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req gateway.CheckoutSessionRequest) (gateway.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(req.AllowedCountries),
		},
	}
	params.Context = ctx

	for _, item := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(item.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(item.Description),
					Images:      stripe.StringSlice(item.Images),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := c.sessions.New(params)
	if err != nil {
		return gateway.CheckoutSession{}, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return gateway.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

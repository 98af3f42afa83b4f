package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"UnrulyHuman/internal/domain/gateway"
	"UnrulyHuman/pkg/logger"
)

// MetadataSizeKey is the provider-side metadata key that carries the chosen size back on events.
const MetadataSizeKey = "size"

// SessionIDPlaceholder is substituted by the provider with the real session id on redirect.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

var (
	AllowedShippingCountries = []string{"US", "CA", "GB", "AU", "DE", "FR", "NL", "JP"}
	PaymentMethodTypes       = []string{"card"}
)

type CreateSessionRequest struct {
	Size   string
	Origin string
}

type Session struct {
	ID   string
	URL  string
	Size Size
}

type Service struct {
	provider gateway.Provider
	logger   *slog.Logger
}

func NewService(provider gateway.Provider, l *slog.Logger) *Service {
	return &Service{provider: provider, logger: l}
}

func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest) (Session, error) {
	intent, err := NewOrderIntent(req.Size)
	if err != nil {
		return Session{}, err
	}

	origin := strings.TrimRight(req.Origin, "/")
	created, err := s.provider.CreateCheckoutSession(ctx, BuildSessionRequest(intent, origin))
	if err != nil {
		s.logger.ErrorContext(ctx, "Checkout session creation failed",
			slog.String("size", string(intent.Size)), logger.Err(err))
		return Session{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if created.URL == "" {
		s.logger.ErrorContext(ctx, "Checkout session created without url",
			slog.String("session_id", created.ID))
		return Session{}, ErrMissingRedirectURL
	}

	s.logger.InfoContext(ctx, "Checkout session created",
		slog.String("session_id", created.ID),
		slog.String("size", string(intent.Size)))

	return Session{ID: created.ID, URL: created.URL, Size: intent.Size}, nil
}

// BuildSessionRequest describes a single-item hosted checkout for the intent.
func BuildSessionRequest(intent OrderIntent, origin string) gateway.CheckoutSessionRequest {
	return gateway.CheckoutSessionRequest{
		LineItems: []gateway.LineItem{
			{
				Name:        ProductName,
				Description: intent.Description(),
				Images:      []string{ProductImage},
				UnitAmount:  intent.UnitAmount,
				Currency:    intent.Currency,
				Quantity:    intent.Quantity,
			},
		},
		PaymentMethodTypes: PaymentMethodTypes,
		SuccessURL:         origin + "/success?session_id=" + SessionIDPlaceholder,
		CancelURL:          origin + "/#buy",
		AllowedCountries:   AllowedShippingCountries,
		Metadata: map[string]string{
			MetadataSizeKey: string(intent.Size),
		},
	}
}

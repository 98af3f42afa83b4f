//go:build !integration

package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"UnrulyHuman/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func checkoutService(t *testing.T) (*Service, *gateway.MockProvider) {
	t.Helper()

	provider := gateway.NewMockProvider(gomock.NewController(t))
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(provider, l), provider
}

func TestNewSize(t *testing.T) {
	testCases := []struct {
		raw         string
		expected    Size
		expectedErr error
	}{
		{raw: "S", expected: SizeS},
		{raw: "M", expected: SizeM},
		{raw: "L", expected: SizeL},
		{raw: "XL", expected: SizeXL},
		{raw: "XXL", expected: SizeXXL},
		{raw: "", expected: DefaultSize},
		{raw: "   ", expected: DefaultSize},
		{raw: " xl ", expected: SizeXL},
		{raw: "XXXL", expectedErr: ErrInvalidSize},
		{raw: "medium", expectedErr: ErrInvalidSize},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			size, err := NewSize(tc.raw)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, size)
		})
	}
}

func TestOrderIntent(t *testing.T) {
	intent, err := NewOrderIntent("L")

	require.NoError(t, err)
	assert.Equal(t, "Size: L — Limited Edition Biomechanical Art", intent.Description())
	assert.EqualValues(t, 30000, intent.UnitAmount)
	assert.EqualValues(t, 30000, intent.Total())
	assert.Equal(t, "usd", intent.Currency)
}

func TestService_CreateSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("embeds size in description and metadata", func(t *testing.T) {
		for _, size := range AvailableSizes {
			t.Run(string(size), func(t *testing.T) {
				// given
				service, provider := checkoutService(t)
				var captured gateway.CheckoutSessionRequest
				provider.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, req gateway.CheckoutSessionRequest) (gateway.CheckoutSession, error) {
						captured = req
						return gateway.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
					})

				// when
				session, err := service.CreateSession(ctx, CreateSessionRequest{Size: string(size), Origin: "https://shop.test"})

				// then
				require.NoError(t, err)
				assert.Equal(t, size, session.Size)
				require.Len(t, captured.LineItems, 1)
				assert.Contains(t, captured.LineItems[0].Description, "Size: "+string(size))
				assert.Equal(t, string(size), captured.Metadata[MetadataSizeKey])
			})
		}
	})

	t.Run("defaults to M when size is absent", func(t *testing.T) {
		service, provider := checkoutService(t)
		expected := BuildSessionRequest(OrderIntent{Size: SizeM, UnitAmount: UnitAmount, Currency: Currency, Quantity: Quantity}, "https://shop.test")
		provider.EXPECT().CreateCheckoutSession(ctx, expected).
			Return(gateway.CheckoutSession{ID: "cs_test_2", URL: "https://checkout.stripe.com/c/pay/cs_test_2"}, nil)

		session, err := service.CreateSession(ctx, CreateSessionRequest{Origin: "https://shop.test/"})

		require.NoError(t, err)
		assert.Equal(t, SizeM, session.Size)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_2", session.URL)
	})

	t.Run("builds redirect urls from origin", func(t *testing.T) {
		req := BuildSessionRequest(OrderIntent{Size: SizeS, UnitAmount: UnitAmount, Currency: Currency, Quantity: Quantity}, "https://shop.test")

		assert.Equal(t, "https://shop.test/success?session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
		assert.Equal(t, "https://shop.test/#buy", req.CancelURL)
		assert.Equal(t, []string{"card"}, req.PaymentMethodTypes)
		assert.Equal(t, []string{"US", "CA", "GB", "AU", "DE", "FR", "NL", "JP"}, req.AllowedCountries)
		assert.Equal(t, ProductName, req.LineItems[0].Name)
		assert.Equal(t, []string{ProductImage}, req.LineItems[0].Images)
		assert.EqualValues(t, 1, req.LineItems[0].Quantity)
	})

	t.Run("rejects unknown size without calling provider", func(t *testing.T) {
		service, _ := checkoutService(t)

		_, err := service.CreateSession(ctx, CreateSessionRequest{Size: "XS"})

		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("wraps provider errors", func(t *testing.T) {
		service, provider := checkoutService(t)
		providerErr := errors.New("stripe: card_declined")
		provider.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).Return(gateway.CheckoutSession{}, providerErr)

		_, err := service.CreateSession(ctx, CreateSessionRequest{Size: "M"})

		assert.ErrorIs(t, err, ErrProviderUnavailable)
		assert.ErrorIs(t, err, providerErr)
	})

	t.Run("fails when provider returns no url", func(t *testing.T) {
		service, provider := checkoutService(t)
		provider.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).Return(gateway.CheckoutSession{ID: "cs_test_3"}, nil)

		_, err := service.CreateSession(ctx, CreateSessionRequest{Size: "M"})

		assert.ErrorIs(t, err, ErrMissingRedirectURL)
	})
}

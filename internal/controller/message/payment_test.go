//go:build !integration

package message

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"UnrulyHuman/internal/domain/payment"
	"UnrulyHuman/internal/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newController(t *testing.T, mailer payment.Mailer) *PaymentEventController {
	t.Helper()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPaymentEventController(l, payment.NewEventService(mailer, "orders@unrulyhuman.com", l))
}

func TestPaymentEventController_HandleMessage(t *testing.T) {
	t.Run("completed checkout sends one email", func(t *testing.T) {
		// given
		ctrl := gomock.NewController(t)
		mailer := payment.NewMockMailer(ctrl)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg_1", nil).Times(1)

		env, err := messaging.NewEnvelope("cs_1", "payment.event", payment.Event{
			ID:   "evt_1",
			Type: payment.EventCheckoutSessionCompleted,
			CheckoutSession: &payment.CheckoutSession{
				ID:            "cs_1",
				CustomerEmail: "buyer@example.com",
				Size:          "S",
			},
		})
		require.NoError(t, err)
		value, err := json.Marshal(env)
		require.NoError(t, err)

		// when
		err = newController(t, mailer).HandleMessage(context.Background(), []byte("cs_1"), value)

		// then
		assert.NoError(t, err)
	})

	t.Run("invalid envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := payment.NewMockMailer(ctrl)

		err := newController(t, mailer).HandleMessage(context.Background(), nil, []byte("{"))

		assert.ErrorContains(t, err, "unmarshal envelope")
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := payment.NewMockMailer(ctrl)
		value := []byte(`{"event_id":"e1","key":"k","type":"payment.event","payload":"not an event"}`)

		err := newController(t, mailer).HandleMessage(context.Background(), []byte("k"), value)

		assert.ErrorContains(t, err, "unmarshal payment.event payload")
	})
}

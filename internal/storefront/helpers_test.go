package storefront

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"UnrulyHuman/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const webhookSecret = "whsec_app_test"

type fakeProviders struct {
	stripe *httptest.Server
	resend *httptest.Server

	mu     sync.Mutex
	emails []map[string]any
}

func newFakeProviders(t *testing.T) *fakeProviders {
	t.Helper()
	f := &fakeProviders{}

	f.stripe = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_app","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_app"}`))
	}))
	f.resend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.emails = append(f.emails, body)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_app"}`))
	}))
	t.Cleanup(func() {
		f.stripe.Close()
		f.resend.Close()
	})
	return f
}

func (f *fakeProviders) sentEmails() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.emails...)
}

func testConfig(f *fakeProviders) config.Config {
	return config.Config{
		Port:                3000,
		StripeSecretKey:     "sk_test_app",
		StripeWebhookSecret: webhookSecret,
		StripeTimeout:       5 * time.Second,
		StripeAPIBase:       f.stripe.URL,
		ResendAPIKey:        "re_test_app",
		ResendAPIBase:       f.resend.URL,
		EmailFrom:           "Unruly Human <orders@unrulyhuman.com>",
		EmailTimeout:        5 * time.Second,
		HeroInterval:        5 * time.Second,
		WebhookMode:         config.WebhookModeSync,
	}
}

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, req)
	return w
}

func completedCheckoutPayload(eventID, sessionID string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"object":"event","type":"checkout.session.completed","data":{"object":{`+
		`"id":%q,"object":"checkout.session","amount_total":30000,"currency":"usd",`+
		`"customer_details":{"email":"buyer@example.com"},"metadata":{"size":"L"}}}}`, eventID, sessionID))
}

func signedWebhook(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookSecret,
		Timestamp: time.Now(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", strings.NewReader(string(payload)))
	req.Header.Set("Stripe-Signature", signed.Header)
	return req
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Placeholder credentials keep the storefront up; provider calls fail until real keys are set.
	StripeSecretKey     string        `env:"STRIPE_SECRET_KEY" envDefault:"sk_test_placeholder"`
	StripeWebhookSecret string        `env:"STRIPE_WEBHOOK_SECRET"`
	StripeTimeout       time.Duration `env:"STRIPE_TIMEOUT" envDefault:"20s"`
	StripeAPIBase       string        `env:"STRIPE_API_BASE"`

	ResendAPIKey  string        `env:"RESEND_API_KEY" envDefault:"re_placeholder"`
	ResendAPIBase string        `env:"RESEND_API_BASE"`
	EmailFrom     string        `env:"EMAIL_FROM" envDefault:"Unruly Human <orders@unrulyhuman.com>"`
	EmailTimeout  time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`

	PublicBaseURL string        `env:"PUBLIC_BASE_URL"`
	HeroInterval  time.Duration `env:"HERO_INTERVAL" envDefault:"5s"`

	// Webhook processing mode: "sync" (direct) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers                    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaPaymentEventsTopic         string   `env:"KAFKA_PAYMENT_EVENTS_TOPIC" envDefault:"webhooks.payment-events"`
	KafkaPaymentEventsConsumerGroup string   `env:"KAFKA_PAYMENT_EVENTS_CONSUMER_GROUP" envDefault:"storefront-payment-events"`
}

const (
	WebhookModeSync  = "sync"
	WebhookModeKafka = "kafka"
)

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if c.HeroInterval <= 0 {
		return Config{}, fmt.Errorf("HERO_INTERVAL must be positive, got %s", c.HeroInterval)
	}

	return c, nil
}

// ConsoleLogs reports whether logs should be printed as text instead of JSON.
func (c Config) ConsoleLogs() bool {
	return c.LogFormat == "console"
}

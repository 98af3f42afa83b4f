package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"UnrulyHuman/config"
	"UnrulyHuman/internal/controller/message"
	"UnrulyHuman/internal/controller/rest"
	"UnrulyHuman/internal/controller/rest/handlers"
	"UnrulyHuman/internal/domain/checkout"
	"UnrulyHuman/internal/domain/payment"
	"UnrulyHuman/internal/external/kafka"
	"UnrulyHuman/internal/external/resend"
	"UnrulyHuman/internal/external/stripe"
	"UnrulyHuman/internal/messaging"
	"UnrulyHuman/internal/webhook"
	"UnrulyHuman/pkg/health"
	"UnrulyHuman/pkg/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// App is the wired storefront: HTTP surface plus, in kafka mode, the payment event worker.
type App struct {
	engine  *gin.Engine
	runner  *messaging.Runner
	closers []io.Closer
	logger  *slog.Logger
}

func New(cfg config.Config, l *slog.Logger) (*App, error) {
	app := &App{engine: NewGinEngine(l), logger: l}

	stripeClient := stripe.New(stripe.Options{
		SecretKey: cfg.StripeSecretKey,
		Timeout:   cfg.StripeTimeout,
		BaseURL:   cfg.StripeAPIBase,
		Logger:    l,
	})
	verifier := stripe.NewVerifier(cfg.StripeWebhookSecret, l)
	if !verifier.Enabled() {
		l.Warn("STRIPE_WEBHOOK_SECRET is not set: every webhook delivery will be rejected")
	}

	mailer, err := resend.New(resend.Options{
		APIKey:  cfg.ResendAPIKey,
		Timeout: cfg.EmailTimeout,
		BaseURL: cfg.ResendAPIBase,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("storefront - New - resend.New: %w", err)
	}

	checkoutService := checkout.NewService(stripeClient, l)
	eventService := payment.NewEventService(mailer, cfg.EmailFrom, l)
	healthRegistry := health.NewRegistry()

	var processor webhook.Processor
	switch cfg.WebhookMode {
	case config.WebhookModeSync:
		l.Info("Webhook mode: sync")
		processor = webhook.NewSyncProcessor(eventService)
	case config.WebhookModeKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("storefront - New - kafka mode requires KAFKA_BROKERS")
		}
		l.Info("Webhook mode: kafka",
			slog.Any("brokers", cfg.KafkaBrokers),
			slog.String("topic", cfg.KafkaPaymentEventsTopic),
			slog.String("group", cfg.KafkaPaymentEventsConsumerGroup))

		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaPaymentEventsTopic)
		app.closers = append(app.closers, publisher)
		processor = webhook.NewAsyncProcessor(publisher)

		controller := message.NewPaymentEventController(l, eventService)
		consumer := kafka.NewConsumer(l, cfg.KafkaBrokers, cfg.KafkaPaymentEventsTopic, cfg.KafkaPaymentEventsConsumerGroup)
		app.runner = messaging.NewRunner(l, []messaging.Worker{consumer},
			messaging.WithMetrics(cfg.KafkaPaymentEventsTopic, cfg.KafkaPaymentEventsConsumerGroup, controller.HandleMessage))

		healthRegistry.Register(health.NewKafkaChecker(cfg.KafkaBrokers))
	default:
		return nil, fmt.Errorf("storefront - New - unsupported webhook mode: %q", cfg.WebhookMode)
	}

	router := rest.NewRouter(
		handlers.NewCheckoutHandler(checkoutService, cfg.PublicBaseURL, l),
		handlers.NewWebhookHandler(verifier, processor, l),
		handlers.NewPagesHandler(cfg.HeroInterval, l),
		healthRegistry,
	)
	if err := router.SetUp(app.engine); err != nil {
		return nil, fmt.Errorf("storefront - New - router.SetUp: %w", err)
	}

	return app, nil
}

func (a *App) Handler() http.Handler {
	return a.engine
}

// StartWorkers runs the payment event consumer in the background until ctx is cancelled.
// The returned channel is closed once the consumer has stopped; in sync mode it is closed immediately.
func (a *App) StartWorkers(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	if a.runner == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		a.logger.Info("Starting payment event consumer")
		if err := a.runner.Start(ctx); err != nil {
			a.logger.Error("Payment event runner failed", logger.Err(err))
		}
	}()
	return done
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Error("Failed to close resource", logger.Err(err))
		}
	}
}

// Run bootstraps the storefront and blocks until SIGINT or SIGTERM.
func Run(cfg config.Config) {
	l := logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.ConsoleLogs()})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gin.SetMode(gin.ReleaseMode)

	app, err := New(cfg, l)
	if err != nil {
		l.Error("Storefront setup failed", logger.Err(err))
		os.Exit(1)
	}
	defer app.Close()

	workersDone := app.StartWorkers(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Info("Storefront started", slog.Int("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("HTTP server error", logger.Err(err))
			cancel()
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down storefront...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown error", logger.Err(err))
	}

	// In-flight confirmations finish before the providers are closed.
	select {
	case <-workersDone:
	case <-shutdownCtx.Done():
		l.Warn("Payment event consumer did not stop before shutdown timeout")
	}

	l.Info("Storefront stopped")
}

package rest

import (
	"time"

	"UnrulyHuman/internal/controller/rest/handlers"
	"UnrulyHuman/internal/web"
	"UnrulyHuman/pkg/health"
	"UnrulyHuman/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readinessTimeout = 2 * time.Second

type Router struct {
	checkout handlers.CheckoutHandler
	webhook  handlers.WebhookHandler
	pages    handlers.PagesHandler
	health   *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", web.Static())

	engine.GET("/", r.pages.Landing)
	engine.GET("/success", r.pages.Success)
	engine.GET("/hero/stream", r.pages.HeroStream)

	engine.POST("/api/checkout", r.checkout.Create)
	engine.POST("/api/webhooks/stripe", r.webhook.Stripe)

	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.health, readinessTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return nil
}

func NewRouter(
	checkout handlers.CheckoutHandler,
	webhook handlers.WebhookHandler,
	pages handlers.PagesHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		checkout: checkout,
		webhook:  webhook,
		pages:    pages,
		health:   healthRegistry,
	}
}

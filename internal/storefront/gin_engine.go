package storefront

import (
	"log/slog"

	"UnrulyHuman/pkg/logger"
	"UnrulyHuman/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		metrics.GinMiddleware(),
		logger.CorrelationMiddleware(),
		logger.RequestLogger(l, "/static", "/health", "/metrics"),
		gin.Recovery(),
	)
	return engine
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"UnrulyHuman/internal/domain/checkout"
	"UnrulyHuman/pkg/logger"
	"UnrulyHuman/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const msgCheckoutFailed = "Failed to create checkout session"

type CheckoutHandler struct {
	service       *checkout.Service
	publicBaseURL string
	logger        *slog.Logger
}

func NewCheckoutHandler(s *checkout.Service, publicBaseURL string, l *slog.Logger) CheckoutHandler {
	return CheckoutHandler{service: s, publicBaseURL: strings.TrimRight(publicBaseURL, "/"), logger: l}
}

type checkoutRequest struct {
	Size string `json:"size"`
}

// Create starts a hosted checkout and answers with the redirect URL.
// Provider details stay in the logs; the caller only sees a generic message.
func (h *CheckoutHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WarnContext(ctx, "Malformed checkout request", logger.Err(err))
		metrics.CheckoutSessions.WithLabelValues("unknown", metrics.OutcomeFailure).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCheckoutFailed})
		return
	}

	session, err := h.service.CreateSession(ctx, checkout.CreateSessionRequest{
		Size:   req.Size,
		Origin: h.origin(c),
	})
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidSize) {
			h.logger.WarnContext(ctx, "Rejected checkout for unknown size", slog.String("size", req.Size))
			metrics.CheckoutSessions.WithLabelValues("unknown", metrics.OutcomeInvalid).Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgCheckoutFailed})
			return
		}
		metrics.CheckoutSessions.WithLabelValues(sizeLabel(req.Size), metrics.OutcomeFailure).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCheckoutFailed})
		return
	}

	metrics.CheckoutSessions.WithLabelValues(string(session.Size), metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, gin.H{"url": session.URL})
}

// origin resolves the site origin used for redirect URLs: Origin header,
// then the configured public URL, then the request's own scheme and host.
func (h *CheckoutHandler) origin(c *gin.Context) string {
	if o := c.GetHeader("Origin"); o != "" && o != "null" {
		return o
	}
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + c.Request.Host
}

func sizeLabel(raw string) string {
	size, err := checkout.NewSize(raw)
	if err != nil {
		return "unknown"
	}
	return string(size)
}

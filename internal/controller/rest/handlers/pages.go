package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"UnrulyHuman/internal/web"
	"UnrulyHuman/internal/web/carousel"
	"UnrulyHuman/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PagesHandler struct {
	heroInterval time.Duration
	logger       *slog.Logger
}

func NewPagesHandler(heroInterval time.Duration, l *slog.Logger) PagesHandler {
	if heroInterval <= 0 {
		l.Warn("Non-positive hero interval, using default",
			slog.Duration("configured", heroInterval), slog.Duration("default", carousel.DefaultInterval))
		heroInterval = carousel.DefaultInterval
	}
	return PagesHandler{heroInterval: heroInterval, logger: l}
}

func (h *PagesHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", web.NewLandingPage(h.heroInterval, time.Now()))
}

func (h *PagesHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", web.NewSuccessPage(c.Query("session_id")))
}

// HeroStream pushes a "slide" event every hero interval for as long as the client stays connected.
// The optional start query parameter selects the first slide.
func (h *PagesHandler) HeroStream(c *gin.Context) {
	ctx := c.Request.Context()

	car, err := carousel.New(len(web.HeroSlides))
	if err != nil {
		h.logger.ErrorContext(ctx, "Hero carousel unavailable", logger.Err(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	if raw := c.Query("start"); raw != "" {
		start, err := strconv.Atoi(raw)
		if err == nil {
			err = car.Select(start)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide"})
			return
		}
	}

	slides := make(chan int)
	go func() {
		err := carousel.Run(ctx, h.heroInterval, car, func(i int) {
			select {
			case slides <- i:
			case <-ctx.Done():
			}
		})
		if err != nil {
			h.logger.ErrorContext(ctx, "Hero carousel stopped", logger.Err(err))
		}
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("slide", web.HeroSlides[car.Current()])
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case i := <-slides:
			c.SSEvent("slide", web.HeroSlides[i])
			c.Writer.Flush()
		}
	}
}

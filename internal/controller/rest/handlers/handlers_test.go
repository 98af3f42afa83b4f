//go:build !integration

package handlers

import (
	"io"
	"log/slog"
	"testing"

	"UnrulyHuman/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	engine := gin.New()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	engine.SetHTMLTemplate(tmpl)
	return engine
}

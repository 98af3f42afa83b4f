// Package correlation carries a request correlation ID through contexts, HTTP headers and Kafka headers.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is used both as the HTTP header and the Kafka message header.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation ID or an empty string.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Ensure returns ctx unchanged when it already has an ID, otherwise attaches a fresh one.
func Ensure(ctx context.Context) context.Context {
	if FromContext(ctx) != "" {
		return ctx
	}
	return WithID(ctx, NewID())
}

// NewID generates a new correlation ID (UUID v4).
func NewID() string {
	return uuid.New().String()
}

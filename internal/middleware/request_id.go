package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// RequestIDKey is the context key for the request ID.
const RequestIDKey contextKey = "request_id"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID stores id in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func newRequestID() string {
	return uuid.New().String()
}

// requestIDFrom returns the caller's request ID in canonical form, or a new
// one when the header is missing or not a UUID.
func requestIDFrom(r *http.Request) string {
	id, err := uuid.Parse(r.Header.Get(RequestIDHeader))
	if err != nil {
		return newRequestID()
	}
	return id.String()
}

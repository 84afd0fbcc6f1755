package httpclient

import (
	"context"
	"net/http"
)

// Outbound headers carrying request metadata to the task API.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID tags ctx with the id of the current API request or CLI
// invocation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID tags ctx with a caller-supplied correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CorrelationIDFromContext returns the id set by WithCorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// stampHeaders copies the ids in ctx onto h. Absent ids leave h untouched.
func stampHeaders(ctx context.Context, h http.Header) {
	if id := RequestIDFromContext(ctx); id != "" {
		h.Set(HeaderRequestID, id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		h.Set(HeaderCorrelationID, id)
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Logging logs request start and completion with a child logger carrying
// the request and correlation IDs and, when signed in, the user ID. The
// child logger is stored in the context for handlers. sessions may be nil.
func Logging(logger *slog.Logger, sessions ports.SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if sessions != nil {
				if s, ok := sessions.Current(); ok {
					attrs = append(attrs, slog.String("user_id", s.UserID))
				}
			}
			child := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", RedactHeaders(r.Header)...)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", statusOf(ww)),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RedactHeaders turns headers into log attributes with credentials masked.
// Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []any {
	attrs := make([]any, 0, len(headers))
	for key, vals := range headers {
		val := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			val = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return attrs
}

// statusOf reports the written status; a handler that never called
// WriteHeader answered 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

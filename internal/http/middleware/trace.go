package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/davidbz/synexis/internal/observability"
)

// Trace creates a middleware that injects trace, span and request ids into every request.
// A caller-supplied X-Request-Id is kept when it is a valid UUID.
// Trace and span ids are always generated.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := observability.GenerateTraceID()
			requestID := inboundRequestID(r)

			ctx := observability.WithTraceID(r.Context(), traceID)
			ctx = observability.WithSpanID(ctx, observability.GenerateSpanID())
			ctx = observability.WithRequestID(ctx, requestID)

			w.Header().Set(observability.TraceIDHeader, traceID)
			w.Header().Set(observability.RequestIDHeader, requestID)

			observability.FromContext(ctx).Debug("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("remote_addr", r.RemoteAddr),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inboundRequestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(observability.RequestIDHeader)); err == nil {
		return id.String()
	}
	return observability.GenerateRequestID()
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/davidbz/synexis/internal/observability"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and durations per route.
// The route label is the ServeMux pattern that served the request, which keeps
// label cardinality bounded. It must sit inside any middleware that copies the
// request, so the pattern set by the mux is visible here.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}

			statusClass := strconv.Itoa(sw.status/100) + "xx"
			observability.RequestsTotal.WithLabelValues(r.Method, statusClass, route).Inc()
			observability.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

// Flush keeps server-sent events working through the wrapper.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

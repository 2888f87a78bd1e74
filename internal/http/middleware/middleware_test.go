package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/synexis/internal/config"
	"github.com/davidbz/synexis/internal/http/middleware"
	"github.com/davidbz/synexis/internal/observability"
)

func TestChain(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(tag("first"), tag("second"), tag("third"))(
		http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			order = append(order, "handler")
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "third", "handler"}, order)
}

func TestTrace(t *testing.T) {
	t.Run("should keep a valid inbound request id", func(t *testing.T) {
		const inbound = "6f1c1f0e-8a43-4c55-9a4e-3f7c2d1b9e10"

		var requestID string
		handler := middleware.Trace()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			requestID = observability.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-Id", inbound)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, inbound, requestID)
		require.Equal(t, inbound, rec.Header().Get("X-Request-Id"))
	})

	t.Run("should replace a malformed inbound request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")
		rec := httptest.NewRecorder()
		middleware.Trace()(http.NotFoundHandler()).ServeHTTP(rec, req)

		require.NotEqual(t, "not-a-uuid", rec.Header().Get("X-Request-Id"))
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	var traceID, requestID string
	handler := middleware.Trace()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID = observability.GetTraceID(r.Context())
		requestID = observability.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, traceID)
	require.NotEmpty(t, requestID)
	require.Equal(t, traceID, rec.Header().Get("X-Trace-Id"))
	require.Equal(t, requestID, rec.Header().Get("X-Request-Id"))
}

func TestMetrics(t *testing.T) {
	const route = "POST /metrics-test"

	mux := http.NewServeMux()
	mux.HandleFunc(route, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := middleware.Metrics()(mux)

	t.Run("should label requests with the matched pattern", func(t *testing.T) {
		counter := observability.RequestsTotal.WithLabelValues(http.MethodPost, "4xx", route)
		before := testutil.ToFloat64(counter)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics-test", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
	})

	t.Run("should label unknown paths as unmatched", func(t *testing.T) {
		counter := observability.RequestsTotal.WithLabelValues(http.MethodGet, "4xx", "unmatched")
		before := testutil.ToFloat64(counter)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		require.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
	})

	t.Run("should pass flushes through", func(t *testing.T) {
		flushing := middleware.Metrics()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			flusher, ok := w.(http.Flusher)
			require.True(t, ok)
			_, _ = w.Write([]byte("data: x\n\n"))
			flusher.Flush()
		}))

		rec := httptest.NewRecorder()
		flushing.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.True(t, rec.Flushed)
		require.Equal(t, "data: x\n\n", rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(&config.CORSConfig{
		AllowedOrigins: []string{"https://app.example.com"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("should allow configured origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Trace-Id")
	})

	t.Run("should ignore other origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should pass through without a config", func(t *testing.T) {
		rec := httptest.NewRecorder()
		middleware.CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/synexis/internal/config"
	"github.com/davidbz/synexis/internal/observability"
)

// CORS creates a middleware that handles Cross-Origin Resource Sharing using rs/cors.
// Browser clients can read the correlation headers set by Trace. A nil config
// disables CORS handling.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	policy := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   append([]string{observability.RequestIDHeader}, cfg.AllowedHeaders...),
		ExposedHeaders:   []string{observability.TraceIDHeader, observability.RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return policy.Handler
}

package observability

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Global logger instance - shared across the application.
// This is intentional: loggers should not be stored in context.
//
//nolint:gochecknoglobals // Singleton logger is a standard pattern
var (
	globalLogger *zap.Logger
	loggerMu     sync.RWMutex
)

// LogConfig contains logger settings.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL"       envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// InitLogger builds the base logger from cfg and installs it globally (called once at startup).
// A nil cfg yields the zap production defaults.
func InitLogger(cfg *LogConfig) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg != nil {
		if cfg.Development {
			zapConfig = zap.NewDevelopmentConfig()
		}

		if cfg.Level != "" {
			level, err := zap.ParseAtomicLevel(cfg.Level)
			if err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
			}
			zapConfig.Level = level
		}
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()

	return logger, nil
}

// getBaseLogger returns the global logger instance.
func getBaseLogger() *zap.Logger {
	loggerMu.RLock()
	logger := globalLogger
	loggerMu.RUnlock()

	if logger != nil {
		return logger
	}

	// Not initialized yet: build the production default once and keep it.
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if globalLogger == nil {
		fallback, err := zap.NewProduction()
		if err != nil {
			fallback = zap.NewNop()
		}
		globalLogger = fallback
	}
	return globalLogger
}

// contextFields lists the context values attached to every request-scoped logger.
//
//nolint:gochecknoglobals // Read-only lookup table
var contextFields = []contextKey{TraceIDKey, SpanIDKey, RequestIDKey, EngineKey, ModelKey}

// FromContext creates a logger with fields extracted from context.
func FromContext(ctx context.Context) *zap.Logger {
	logger := getBaseLogger()

	fields := make([]zap.Field, 0, len(contextFields))
	for _, key := range contextFields {
		if value := stringValue(ctx, key); value != "" {
			fields = append(fields, zap.String(string(key), value))
		}
	}

	return logger.With(fields...)
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/synexis/internal/cache/redis"
	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/observability"
)

// Media cache backends.
const (
	MediaCacheMemory = "memory"
	MediaCacheRedis  = "redis"
)

// Config represents the service configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      observability.LogConfig
	Engine   engine.Config
	Media    MediaConfig
	Redis    redis.Config
	Sampling SamplingConfig
}

// ServerConfig contains HTTP server settings.
// WriteTimeout bounds whole streamed responses, so it is generous.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"300"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// MediaConfig selects where resolved media is cached.
type MediaConfig struct {
	CacheBackend string `env:"MEDIA_CACHE_BACKEND" envDefault:"memory"`
}

// SamplingConfig holds the session's default generation options.
type SamplingConfig struct {
	Temperature   float64 `env:"SAMPLING_TEMPERATURE"    envDefault:"0.8"`
	TopK          int     `env:"SAMPLING_TOP_K"          envDefault:"40"`
	TopP          float64 `env:"SAMPLING_TOP_P"          envDefault:"0.95"`
	MinP          float64 `env:"SAMPLING_MIN_P"          envDefault:"0.05"`
	RepeatPenalty float64 `env:"SAMPLING_REPEAT_PENALTY" envDefault:"1.1"`
	MaxTokens     int     `env:"SAMPLING_MAX_TOKENS"     envDefault:"256"`
	Seed          uint32  `env:"SAMPLING_SEED"           envDefault:"1900"`
}

// Defaults converts the sampling settings to generation defaults.
func (s SamplingConfig) Defaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{
		Sampling: domain.SamplingParams{
			Temperature:   s.Temperature,
			TopK:          s.TopK,
			TopP:          s.TopP,
			MinP:          s.MinP,
			RepeatPenalty: s.RepeatPenalty,
			Seed:          s.Seed,
		},
		MaxTokens: s.MaxTokens,
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server   *ServerConfig
	CORS     *CORSConfig
	Log      *observability.LogConfig
	Engine   *engine.Config
	Media    *MediaConfig
	Redis    *redis.Config
	Sampling *SamplingConfig
}

// Load loads environment files, parses and validates configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, &domain.ConfigurationError{
			Field:  "environment",
			Reason: "failed to parse",
			Err:    err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Engine.ModelPath == "" {
		return &domain.ConfigurationError{
			Field:  "MODEL_PATH",
			Reason: "model identifier is required",
		}
	}

	if c.Engine.Backend == "" {
		return &domain.ConfigurationError{
			Field:  "ENGINE_BACKEND",
			Reason: "backend cannot be empty",
		}
	}

	switch c.Media.CacheBackend {
	case MediaCacheMemory, MediaCacheRedis:
	default:
		return &domain.ConfigurationError{
			Field:  "MEDIA_CACHE_BACKEND",
			Reason: fmt.Sprintf("unknown backend %q, expected %s or %s", c.Media.CacheBackend, MediaCacheMemory, MediaCacheRedis),
		}
	}

	defaults := c.Sampling.Defaults()
	if err := domain.ValidateSampling(defaults.Sampling, defaults.MaxTokens); err != nil {
		return &domain.ConfigurationError{
			Field:  "SAMPLING",
			Reason: "invalid default sampling options",
			Err:    err,
		}
	}

	return nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:      dig.Out{},
		Server:   &cfg.Server,
		CORS:     &cfg.CORS,
		Log:      &cfg.Log,
		Engine:   &cfg.Engine,
		Media:    &cfg.Media,
		Redis:    &cfg.Redis,
		Sampling: &cfg.Sampling,
	}
}

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/synexis/internal/config"
	"github.com/davidbz/synexis/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("MODEL_PATH", "/models/qwen.gguf")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 300, cfg.Server.WriteTimeout)
		require.Equal(t, "info", cfg.Log.Level)

		require.Equal(t, "echo", cfg.Engine.Backend)
		require.Equal(t, "/models/qwen.gguf", cfg.Engine.ModelPath)
		require.Equal(t, 120, cfg.Engine.Timeout)
		require.Equal(t, 0, cfg.Engine.MaxRetries)
		require.Equal(t, 8, cfg.Engine.Slots)
		require.Equal(t, 4096, cfg.Engine.ContextSize)
		require.Equal(t, 2048, cfg.Engine.BatchSize)
		require.Equal(t, 512, cfg.Engine.Keep)
		require.True(t, cfg.Engine.UseMMap)
		require.Equal(t, 10, cfg.Engine.Threads)
		require.Equal(t, -1, cfg.Engine.GPULayers)

		require.Equal(t, config.MediaCacheMemory, cfg.Media.CacheBackend)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "media:", cfg.Redis.Prefix)

		require.Equal(t, domain.DefaultGenerationDefaults(), cfg.Sampling.Defaults())
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_WRITE_TIMEOUT", "60")
		t.Setenv("ENGINE_BACKEND", "openai")
		t.Setenv("MODEL_PATH", "qwen2-vl")
		t.Setenv("ENGINE_BASE_URL", "http://llama:8080/v1")
		t.Setenv("ENGINE_MAX_RETRIES", "2")
		t.Setenv("MEDIA_CACHE_BACKEND", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("SAMPLING_TEMPERATURE", "0.2")
		t.Setenv("SAMPLING_MAX_TOKENS", "-1")
		t.Setenv("SAMPLING_SEED", "42")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, "openai", cfg.Engine.Backend)
		require.Equal(t, "qwen2-vl", cfg.Engine.ModelPath)
		require.Equal(t, "http://llama:8080/v1", cfg.Engine.BaseURL)
		require.Equal(t, 2, cfg.Engine.MaxRetries)
		require.Equal(t, config.MediaCacheRedis, cfg.Media.CacheBackend)
		require.Equal(t, "redis:6379", cfg.Redis.Addr)

		defaults := cfg.Sampling.Defaults()
		require.InDelta(t, 0.2, defaults.Sampling.Temperature, 1e-9)
		require.Equal(t, -1, defaults.MaxTokens)
		require.Equal(t, uint32(42), defaults.Sampling.Seed)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedField string
	}{
		{
			name:          "missing model identifier",
			env:           map[string]string{},
			expectedField: "MODEL_PATH",
		},
		{
			name:          "unknown media cache backend",
			env:           map[string]string{"MODEL_PATH": "m", "MEDIA_CACHE_BACKEND": "disk"},
			expectedField: "MEDIA_CACHE_BACKEND",
		},
		{
			name:          "invalid default sampling",
			env:           map[string]string{"MODEL_PATH": "m", "SAMPLING_TOP_P": "1.5"},
			expectedField: "SAMPLING",
		},
		{
			name:          "unparsable value",
			env:           map[string]string{"MODEL_PATH": "m", "SERVER_PORT": "eighty"},
			expectedField: "environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := config.Load()

			require.Nil(t, cfg)
			require.ErrorIs(t, err, domain.ErrConfiguration)

			var configErr *domain.ConfigurationError
			require.ErrorAs(t, err, &configErr)
			require.Equal(t, tt.expectedField, configErr.Field)
		})
	}
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := &config.Config{}

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.Engine, deps.Engine)
	require.Same(t, &cfg.Redis, deps.Redis)
	require.Same(t, &cfg.Sampling, deps.Sampling)
}

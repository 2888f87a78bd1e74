package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/synexis/internal/cache/redis"
	"github.com/davidbz/synexis/internal/config"
	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/engine/registry"
	"github.com/davidbz/synexis/internal/http"
	"github.com/davidbz/synexis/internal/http/middleware"
	"github.com/davidbz/synexis/internal/media"
	"github.com/davidbz/synexis/internal/observability"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("synexis: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "synexis",
		Usage:    "Chat completions over a local inference engine",
		Commands: []*cli.Command{serveCommand, completeCommand},
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Media
	if err := container.Provide(func() media.Reader {
		return media.NewFileReader()
	}); err != nil {
		log.Fatalf("Failed to provide media reader: %v", err)
	}
	if err := container.Provide(func(cfg *config.MediaConfig, redisCfg *redis.Config) (media.Backend, error) {
		if cfg.CacheBackend != config.MediaCacheRedis {
			return media.NewMemoryBackend(), nil
		}

		client, err := redis.NewClient(context.Background(), *redisCfg)
		if err != nil {
			return nil, err
		}
		return redis.NewMediaBackend(client, redisCfg.Prefix), nil
	}); err != nil {
		log.Fatalf("Failed to provide media backend: %v", err)
	}
	if err := container.Provide(func(reader media.Reader, backend media.Backend) domain.MediaResolver {
		return media.NewStore(reader, backend)
	}); err != nil {
		log.Fatalf("Failed to provide media store: %v", err)
	}

	// Engine
	if err := container.Provide(registry.NewDefaultRegistry); err != nil {
		log.Fatalf("Failed to provide engine registry: %v", err)
	}
	if err := container.Provide(func(reg *registry.Registry, cfg *engine.Config) (domain.Engine, error) {
		return reg.Build(context.Background(), *cfg)
	}); err != nil {
		log.Fatalf("Failed to provide engine: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(e domain.Engine) (domain.PromptRenderer, error) {
		return domain.NewEngineTemplateRenderer(e)
	}); err != nil {
		log.Fatalf("Failed to provide template renderer: %v", err)
	}
	if err := container.Provide(func(cfg *config.SamplingConfig) domain.GenerationDefaults {
		return cfg.Defaults()
	}); err != nil {
		log.Fatalf("Failed to provide generation defaults: %v", err)
	}
	if err := container.Provide(domain.NewRequestBuilder); err != nil {
		log.Fatalf("Failed to provide request builder: %v", err)
	}
	if err := container.Provide(func(e domain.Engine, cfg *engine.Config) *domain.CompletionService {
		return domain.NewCompletionService(e, cfg.ModelPath)
	}); err != nil {
		log.Fatalf("Failed to provide completion service: %v", err)
	}
	if err := container.Provide(domain.NewGatewayService); err != nil {
		log.Fatalf("Failed to provide gateway service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// initLogger installs the configured logger before anything else logs.
func initLogger(container *dig.Container) error {
	return container.Invoke(func(*zap.Logger) {})
}

// closeRedis releases the Redis client when the media cache uses one.
func closeRedis(backend media.Backend) {
	if redisBackend, ok := backend.(*redis.MediaBackend); ok {
		_ = redisBackend.Close()
	}
}

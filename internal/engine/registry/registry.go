// Package registry maps engine backend names to the factories that build them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/engine/echo"
	"github.com/davidbz/synexis/internal/engine/openai"
	"github.com/davidbz/synexis/internal/observability"
)

// Backend names understood by NewDefaultRegistry.
const (
	BackendEcho   = "echo"
	BackendOpenAI = "openai"
)

// Factory builds an engine from its configuration and chat profile.
type Factory func(ctx context.Context, cfg engine.Config, profile engine.Profile) (domain.Engine, error)

// Registry holds engine factories by backend name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:        sync.RWMutex{},
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry creates a registry with the built-in backends.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	_ = r.Register(BackendEcho, func(_ context.Context, _ engine.Config, profile engine.Profile) (domain.Engine, error) {
		return echo.New(profile), nil
	})
	_ = r.Register(BackendOpenAI, func(_ context.Context, cfg engine.Config, profile engine.Profile) (domain.Engine, error) {
		return openai.New(openai.ConfigFrom(cfg), profile)
	})

	return r
}

// Register adds a factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return errors.New("factory cannot be nil")
	}

	if name == "" {
		return errors.New("backend name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Get retrieves the factory registered under name.
func (r *Registry) Get(name string) (Factory, error) {
	if name == "" {
		return nil, errors.New("backend name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("backend %s not found", name)
	}

	return factory, nil
}

// List returns the registered backend names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Build loads the configured profile and constructs the configured backend.
func (r *Registry) Build(ctx context.Context, cfg engine.Config) (domain.Engine, error) {
	factory, err := r.Get(cfg.Backend)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Field:  "ENGINE_BACKEND",
			Reason: fmt.Sprintf("unknown backend %q, expected one of: %s", cfg.Backend, strings.Join(r.List(), ", ")),
			Err:    err,
		}
	}

	profile, err := engine.LoadProfile(ctx, cfg.ProfileFile)
	if err != nil {
		return nil, err
	}

	built, err := factory(ctx, cfg, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s engine: %w", cfg.Backend, err)
	}

	observability.FromContext(ctx).Info("engine ready",
		observability.String("backend", cfg.Backend),
		observability.String("model", cfg.ModelPath),
		observability.Bool("custom_profile", cfg.ProfileFile != ""),
		observability.Bool("multimodal", cfg.ProjectorPath != ""),
		observability.Int("slots", cfg.Slots),
		observability.Int("context_size", cfg.ContextSize),
		observability.Int("batch_size", cfg.BatchSize),
		observability.Int("keep", cfg.Keep),
		observability.Int("threads", cfg.Threads),
		observability.Int("gpu_layers", cfg.GPULayers),
		observability.Bool("use_mmap", cfg.UseMMap))

	return built, nil
}

// Package media resolves media references to raw bytes and caches them for
// the lifetime of a session. Entries are never evicted.
package media

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/observability"
)

// Reader reads the full content stored at a path.
// Implementations report failures as *domain.MediaError.
type Reader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// Backend holds resolved media keyed by path.
type Backend interface {
	// Get returns the cached bytes and whether the path was present.
	Get(ctx context.Context, path string) ([]byte, bool, error)

	// Set stores the bytes for path.
	Set(ctx context.Context, path string, data []byte) error
}

// Store implements domain.MediaResolver.
// Concurrent first-time resolutions of the same path share a single read.
type Store struct {
	reader  Reader
	backend Backend
	group   singleflight.Group
}

// NewStore creates a media store (DI constructor).
func NewStore(reader Reader, backend Backend) *Store {
	return &Store{
		reader:  reader,
		backend: backend,
	}
}

// Resolve returns the bytes stored at path, reading them on first use.
func (s *Store) Resolve(ctx context.Context, path string) ([]byte, error) {
	logger := observability.FromContext(ctx)

	if data, ok := s.lookup(ctx, path); ok {
		observability.MediaCacheLookups.WithLabelValues("hit").Inc()
		logger.Debug("media cache hit", observability.String("path", path))
		return data, nil
	}
	observability.MediaCacheLookups.WithLabelValues("miss").Inc()

	// The read is shared between callers, so it must not fail because the
	// first caller went away.
	readCtx := context.WithoutCancel(ctx)

	value, err, shared := s.group.Do(path, func() (any, error) {
		if data, ok := s.lookup(readCtx, path); ok {
			return data, nil
		}

		data, readErr := s.reader.Read(readCtx, path)
		if readErr != nil {
			observability.MediaReadsTotal.WithLabelValues("error").Inc()
			return nil, classify(path, readErr)
		}
		observability.MediaReadsTotal.WithLabelValues("ok").Inc()

		if setErr := s.backend.Set(readCtx, path, data); setErr != nil {
			logger.Warn("failed to cache media, continuing without cache",
				observability.String("path", path),
				observability.Error(setErr))
		}

		logger.Debug("media loaded",
			observability.String("path", path),
			observability.Int("size", len(data)))
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		logger.Debug("media read shared with concurrent request", observability.String("path", path))
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, domain.NewMediaReadError(path, fmt.Errorf("unexpected cached value %T", value))
	}
	return data, nil
}

func (s *Store) lookup(ctx context.Context, path string) ([]byte, bool) {
	data, ok, err := s.backend.Get(ctx, path)
	if err != nil {
		observability.FromContext(ctx).Warn("media cache lookup failed, treating as miss",
			observability.String("path", path),
			observability.Error(err))
		return nil, false
	}
	return data, ok
}

// classify ensures reader failures carry the media error taxonomy.
func classify(path string, err error) error {
	var mediaErr *domain.MediaError
	if errors.As(err, &mediaErr) {
		return err
	}
	return domain.NewMediaReadError(path, err)
}

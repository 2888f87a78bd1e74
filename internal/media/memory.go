package media

import (
	"context"
	"sync"
)

// MemoryBackend keeps media in a process-local map.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		mu:      sync.RWMutex{},
		entries: make(map[string][]byte),
	}
}

// Get returns the cached bytes for path.
func (b *MemoryBackend) Get(_ context.Context, path string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.entries[path]
	return data, ok, nil
}

// Set stores data under path. The first stored value for a path is kept.
func (b *MemoryBackend) Set(_ context.Context, path string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[path]; !exists {
		b.entries[path] = data
	}
	return nil
}

// Len returns the number of cached paths.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

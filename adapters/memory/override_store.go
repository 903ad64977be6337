// Package memory keeps overrides and cached manifests in process memory.
// It backs the host when no durable storage is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/farism/mfe-host/domain"
)

type overrideStore struct {
	mu     sync.RWMutex
	scopes map[string]domain.OverrideSet
}

// NewOverrideStore creates an in-memory OverrideStore.
func NewOverrideStore() *overrideStore {
	return &overrideStore{scopes: make(map[string]domain.OverrideSet)}
}

func (s *overrideStore) Load(_ context.Context, scope string) (domain.OverrideSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope].Clone(), nil
}

func (s *overrideStore) Upsert(_ context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.scopes[scope].Clone()
	set[record.Name] = record.Clone()
	s.scopes[scope] = set
	return set.Clone(), nil
}

func (s *overrideStore) Clear(_ context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scopes, scope)
	return nil
}

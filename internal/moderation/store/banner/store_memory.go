package banner

import (
	"context"
	"fmt"
	"sync"

	"mentorhub/internal/moderation/models"
	"mentorhub/internal/sentinel"
)

// InMemoryStore holds the active banner in memory for tests and local runs.
type InMemoryStore struct {
	mu     sync.RWMutex
	banner *models.Banner
}

// New constructs an empty in-memory banner store.
func New() *InMemoryStore {
	return &InMemoryStore{}
}

// Replace removes every existing banner and installs the given one.
func (s *InMemoryStore) Replace(_ context.Context, banner *models.Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *banner
	s.banner = &clone
	return nil
}

// Active returns the currently installed banner.
func (s *InMemoryStore) Active(_ context.Context) (*models.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.banner == nil {
		return nil, fmt.Errorf("banner not found: %w", sentinel.ErrNotFound)
	}
	clone := *s.banner
	return &clone, nil
}

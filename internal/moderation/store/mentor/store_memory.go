package mentor

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"mentorhub/internal/moderation/models"
	"mentorhub/internal/sentinel"
)

// Error Contract:
// - Return sentinel.ErrNotFound (wrapped) when the requested entity does not exist
// - Return nil for successful operations

// InMemoryStore stores mentor profiles in memory for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	mentors map[uuid.UUID]*models.Mentor
}

// New constructs an empty in-memory mentor store.
func New() *InMemoryStore {
	return &InMemoryStore{mentors: make(map[uuid.UUID]*models.Mentor)}
}

func (s *InMemoryStore) Create(_ context.Context, mentor *models.Mentor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *mentor
	s.mentors[mentor.ID] = &clone
	return nil
}

func (s *InMemoryStore) Save(_ context.Context, mentor *models.Mentor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mentors[mentor.ID]; !ok {
		return fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
	}
	clone := *mentor
	s.mentors[mentor.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, mentorID uuid.UUID) (*models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if mentor, ok := s.mentors[mentorID]; ok {
		clone := *mentor
		return &clone, nil
	}
	return nil, fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID uuid.UUID) (*models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, mentor := range s.mentors {
		if mentor.UserID == userID {
			clone := *mentor
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) Delete(_ context.Context, mentorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mentors[mentorID]; !ok {
		return fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
	}
	delete(s.mentors, mentorID)
	return nil
}

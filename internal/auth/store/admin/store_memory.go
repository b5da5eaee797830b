package admin

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mentorhub/internal/auth/models"
	"mentorhub/internal/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return sentinel.ErrNotFound (wrapped) when the requested entity does not exist
// - Return sentinel.ErrAlreadyUsed (wrapped) on unique constraint violations
// - Return nil for successful operations

// InMemoryStore stores admin accounts in memory for tests and local runs.
type InMemoryStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*models.AdminAccount
}

// New constructs an empty in-memory admin store.
func New() *InMemoryStore {
	return &InMemoryStore{accounts: make(map[uuid.UUID]*models.AdminAccount)}
}

func (s *InMemoryStore) Create(_ context.Context, account *models.AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return fmt.Errorf("admin email taken: %w", sentinel.ErrAlreadyUsed)
		}
	}
	clone := *account
	s.accounts[account.ID] = &clone
	return nil
}

func (s *InMemoryStore) Save(_ context.Context, account *models.AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; !ok {
		return fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
	}
	clone := *account
	s.accounts[account.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, adminID uuid.UUID) (*models.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if account, ok := s.accounts[adminID]; ok {
		clone := *account
		return &clone, nil
	}
	return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if strings.EqualFold(account.Email, email) {
			clone := *account
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
}

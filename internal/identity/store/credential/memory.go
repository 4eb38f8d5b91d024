// Package credential persists login credentials for the identity provider.
package credential

import (
	"context"
	"slices"
	"strings"
	"sync"

	"lscmis/internal/identity/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

// InMemoryStore keeps credentials in process memory for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	byID    map[id.UserID]*models.Credential
	byEmail map[string]id.UserID
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		byID:    make(map[id.UserID]*models.Credential),
		byEmail: make(map[string]id.UserID),
	}
}

// Create stores a credential. Returns sentinel.ErrConflict when the email is taken.
func (s *InMemoryStore) Create(_ context.Context, c *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(c.Email)
	if _, taken := s.byEmail[key]; taken {
		return sentinel.ErrConflict
	}
	if _, exists := s.byID[c.ID]; exists {
		return sentinel.ErrConflict
	}
	clone := *c
	s.byID[c.ID] = &clone
	s.byEmail[key] = c.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, userID id.UserID) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *s.byID[userID]
	return &clone, nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[userID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byEmail, strings.ToLower(c.Email))
	delete(s.byID, userID)
	return nil
}

// List returns all credentials ordered by email.
func (s *InMemoryStore) List(_ context.Context) ([]*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Credential, 0, len(s.byID))
	for _, c := range s.byID {
		clone := *c
		out = append(out, &clone)
	}
	slices.SortFunc(out, func(a, b *models.Credential) int {
		return strings.Compare(a.Email, b.Email)
	})
	return out, nil
}

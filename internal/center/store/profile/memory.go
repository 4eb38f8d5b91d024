// Package profile persists role profiles, one per credential.
package profile

import (
	"context"
	"slices"
	"sync"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID]*models.Profile
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.UserID]*models.Profile)}
}

// Create stores a profile. Returns sentinel.ErrConflict when the user already has one.
func (s *InMemoryStore) Create(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.profiles[p.UserID]; exists {
		return sentinel.ErrConflict
	}
	cp := *p
	s.profiles[p.UserID] = &cp
	return nil
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID id.UserID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[userID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.profiles, userID)
	return nil
}

// ListByRoles returns profiles holding any of roles, oldest first.
func (s *InMemoryStore) ListByRoles(_ context.Context, roles ...models.Role) ([]*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Profile
	for _, p := range s.profiles {
		if slices.Contains(roles, p.Role) {
			cp := *p
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.Profile) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

// Count returns the number of stored profiles.
func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles), nil
}

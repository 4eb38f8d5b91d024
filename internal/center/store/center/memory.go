// Package center persists center aggregates.
package center

import (
	"context"
	"slices"
	"sync"
	"time"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

// InMemoryStore keeps centers in process memory. The application code index mirrors
// the unique constraint of the relational schema.
type InMemoryStore struct {
	mu      sync.RWMutex
	centers map[id.CenterID]*models.Center
	codes   map[string]id.CenterID
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		centers: make(map[id.CenterID]*models.Center),
		codes:   make(map[string]id.CenterID),
	}
}

func clone(c *models.Center) *models.Center {
	cp := *c
	return &cp
}

// Create stores a new center. Returns sentinel.ErrAlreadyUsed when the application
// code is held by another center.
func (s *InMemoryStore) Create(_ context.Context, c *models.Center) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.centers[c.ID]; exists {
		return sentinel.ErrConflict
	}
	if c.ApplicationCode != "" {
		if _, taken := s.codes[c.ApplicationCode]; taken {
			return sentinel.ErrAlreadyUsed
		}
		s.codes[c.ApplicationCode] = c.ID
	}
	s.centers[c.ID] = clone(c)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, centerID id.CenterID) (*models.Center, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.centers[centerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(c), nil
}

func (s *InMemoryStore) FindByCode(_ context.Context, code string) (*models.Center, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	centerID, ok := s.codes[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(s.centers[centerID]), nil
}

func (s *InMemoryStore) ExistsCode(_ context.Context, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.codes[code]
	return ok, nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.centers), nil
}

// ListByStatus returns centers newest first. An empty status lists all centers.
func (s *InMemoryStore) ListByStatus(_ context.Context, status models.Status) ([]*models.Center, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Center, 0, len(s.centers))
	for _, c := range s.centers {
		if status == "" || c.Status == status {
			out = append(out, clone(c))
		}
	}
	slices.SortFunc(out, func(a, b *models.Center) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, c *models.Center) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(c)
}

func (s *InMemoryStore) updateLocked(c *models.Center) error {
	existing, ok := s.centers[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if c.ApplicationCode != existing.ApplicationCode {
		if c.ApplicationCode != "" {
			if holder, taken := s.codes[c.ApplicationCode]; taken && holder != c.ID {
				return sentinel.ErrAlreadyUsed
			}
			s.codes[c.ApplicationCode] = c.ID
		}
		if existing.ApplicationCode != "" {
			delete(s.codes, existing.ApplicationCode)
		}
	}
	s.centers[c.ID] = clone(c)
	return nil
}

// Execute runs validate then mutate on a center while holding the store lock, and
// persists the result only when validate succeeds.
func (s *InMemoryStore) Execute(_ context.Context, centerID id.CenterID, validate func(*models.Center) error, mutate func(*models.Center)) (*models.Center, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.centers[centerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := clone(existing)
	if err := validate(c); err != nil {
		return nil, err
	}
	mutate(c)
	if err := s.updateLocked(c); err != nil {
		return nil, err
	}
	return clone(c), nil
}

// ConsumeCode activates an approved center and clears its code, but only while the
// center still holds code. Returns sentinel.ErrAlreadyUsed when nothing matched.
func (s *InMemoryStore) ConsumeCode(_ context.Context, centerID id.CenterID, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.centers[centerID]
	if !ok || code == "" || c.ApplicationCode != code || c.Status != models.StatusApproved {
		return sentinel.ErrAlreadyUsed
	}
	updated := clone(c)
	updated.ApplyCredentialsIssued(now)
	return s.updateLocked(updated)
}

func (s *InMemoryStore) Delete(_ context.Context, centerID id.CenterID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.centers[centerID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if c.ApplicationCode != "" {
		delete(s.codes, c.ApplicationCode)
	}
	delete(s.centers, centerID)
	return nil
}

// Package association persists which service items each center offers.
package association

import (
	"context"
	"sync"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

type key struct {
	center id.CenterID
	item   id.ServiceItemID
}

// InMemoryStore keeps associations keyed by (center, item) in insertion order.
type InMemoryStore struct {
	mu    sync.RWMutex
	rows  map[key]models.Association
	order []key
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{rows: make(map[key]models.Association)}
}

// InsertMany stores all associations or none. Returns sentinel.ErrConflict when any
// (center, item) pair already exists or repeats within the batch.
func (s *InMemoryStore) InsertMany(_ context.Context, rows []models.Association) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := make(map[key]struct{}, len(rows))
	for _, r := range rows {
		k := key{r.CenterID, r.ServiceItemID}
		if _, exists := s.rows[k]; exists {
			return sentinel.ErrConflict
		}
		if _, repeated := batch[k]; repeated {
			return sentinel.ErrConflict
		}
		batch[k] = struct{}{}
	}
	for _, r := range rows {
		k := key{r.CenterID, r.ServiceItemID}
		s.rows[k] = r
		s.order = append(s.order, k)
	}
	return nil
}

// DeleteByCenter removes every association of a center. Deleting none is not an error.
func (s *InMemoryStore) DeleteByCenter(_ context.Context, centerID id.CenterID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.order[:0]
	for _, k := range s.order {
		if k.center == centerID {
			delete(s.rows, k)
			continue
		}
		kept = append(kept, k)
	}
	s.order = kept
	return nil
}

func (s *InMemoryStore) ListByCenter(_ context.Context, centerID id.CenterID) ([]models.Association, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Association
	for _, k := range s.order {
		if k.center == centerID {
			out = append(out, s.rows[k])
		}
	}
	return out, nil
}

// CountByItem reports how many centers reference an item.
func (s *InMemoryStore) CountByItem(_ context.Context, itemID id.ServiceItemID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for k := range s.rows {
		if k.item == itemID {
			n++
		}
	}
	return n, nil
}

// IsOffered reports whether the center has an available association for the item.
func (s *InMemoryStore) IsOffered(_ context.Context, centerID id.CenterID, itemID id.ServiceItemID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[key{centerID, itemID}]
	return ok && r.IsAvailable, nil
}

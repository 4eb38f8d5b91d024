// Package transaction persists service transactions recorded by center operators.
package transaction

import (
	"context"
	"slices"
	"sync"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu   sync.RWMutex
	rows map[id.TransactionID]*models.Transaction
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{rows: make(map[id.TransactionID]*models.Transaction)}
}

func (s *InMemoryStore) Create(_ context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[t.ID]; exists {
		return sentinel.ErrConflict
	}
	cp := *t
	s.rows[t.ID] = &cp
	return nil
}

// ListByCenter returns a center's transactions within filter, newest start date first.
func (s *InMemoryStore) ListByCenter(_ context.Context, centerID id.CenterID, filter models.TransactionFilter) ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Transaction
	for _, t := range s.rows {
		if t.CenterID == centerID && filter.Matches(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.Transaction) int {
		if c := b.StartDate.Compare(a.StartDate); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// Delete removes a transaction owned by centerID. Another center's transaction is
// reported as sentinel.ErrNotFound.
func (s *InMemoryStore) Delete(_ context.Context, centerID id.CenterID, txID id.TransactionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.rows[txID]
	if !ok || t.CenterID != centerID {
		return sentinel.ErrNotFound
	}
	delete(s.rows, txID)
	return nil
}

func (s *InMemoryStore) CountByItem(_ context.Context, itemID id.ServiceItemID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, t := range s.rows {
		if t.ServiceItemID == itemID {
			n++
		}
	}
	return n, nil
}

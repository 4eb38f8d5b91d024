// Package catalog persists service categories and items.
package catalog

import (
	"context"
	"slices"
	"strings"
	"sync"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

// InMemoryStore keeps the catalog in memory. Deleting a category that still has
// items returns sentinel.ErrInUse, mirroring the foreign key of the relational schema.
type InMemoryStore struct {
	mu         sync.RWMutex
	categories map[id.CategoryID]*models.Category
	items      map[id.ServiceItemID]*models.Item
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		categories: make(map[id.CategoryID]*models.Category),
		items:      make(map[id.ServiceItemID]*models.Item),
	}
}

func (s *InMemoryStore) nameTakenLocked(name string, except id.CategoryID) bool {
	for _, c := range s.categories {
		if c.ID != except && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// CreateCategory returns sentinel.ErrConflict when the name is taken.
func (s *InMemoryStore) CreateCategory(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTakenLocked(c.Name, c.ID) {
		return sentinel.ErrConflict
	}
	cp := *c
	s.categories[c.ID] = &cp
	return nil
}

func (s *InMemoryStore) RenameCategory(_ context.Context, categoryID id.CategoryID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[categoryID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if s.nameTakenLocked(name, categoryID) {
		return sentinel.ErrConflict
	}
	c.Name = name
	return nil
}

func (s *InMemoryStore) FindCategory(_ context.Context, categoryID id.CategoryID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[categoryID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// ListCategories returns categories by name with their item counts.
func (s *InMemoryStore) ListCategories(_ context.Context) ([]models.CategorySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.CategoryID]int, len(s.categories))
	for _, it := range s.items {
		counts[it.CategoryID]++
	}
	out := make([]models.CategorySummary, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, models.CategorySummary{Category: *c, ItemCount: counts[c.ID]})
	}
	slices.SortFunc(out, func(a, b models.CategorySummary) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out, nil
}

func (s *InMemoryStore) CountItemsInCategory(_ context.Context, categoryID id.CategoryID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) DeleteCategory(_ context.Context, categoryID id.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[categoryID]; !ok {
		return sentinel.ErrNotFound
	}
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			return sentinel.ErrInUse
		}
	}
	delete(s.categories, categoryID)
	return nil
}

// CreateItem returns sentinel.ErrNotFound when the category does not exist.
func (s *InMemoryStore) CreateItem(_ context.Context, it *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[it.CategoryID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, exists := s.items[it.ID]; exists {
		return sentinel.ErrConflict
	}
	cp := *it
	s.items[it.ID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateItem(_ context.Context, it *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[it.ID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.categories[it.CategoryID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *it
	s.items[it.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindItem(_ context.Context, itemID id.ServiceItemID) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[itemID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

// ListItems returns items by name, optionally only active ones.
func (s *InMemoryStore) ListItems(_ context.Context, activeOnly bool) ([]*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Item, 0, len(s.items))
	for _, it := range s.items {
		if activeOnly && !it.IsActive {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	sortItems(out)
	return out, nil
}

// ListItemsByIDs returns the items that exist among itemIDs, by name.
func (s *InMemoryStore) ListItemsByIDs(_ context.Context, itemIDs []id.ServiceItemID) ([]*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Item, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if it, ok := s.items[itemID]; ok {
			cp := *it
			out = append(out, &cp)
		}
	}
	sortItems(out)
	return out, nil
}

func (s *InMemoryStore) DeleteItem(_ context.Context, itemID id.ServiceItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.items, itemID)
	return nil
}

func sortItems(items []*models.Item) {
	slices.SortFunc(items, func(a, b *models.Item) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

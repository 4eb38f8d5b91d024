// Package hierarchy serves the read-mostly district and block reference data.
package hierarchy

import (
	"context"
	"slices"
	"strings"
	"sync"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	districts map[id.DistrictID]models.District
	blocks    map[id.BlockID]models.Block
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		districts: make(map[id.DistrictID]models.District),
		blocks:    make(map[id.BlockID]models.Block),
	}
}

// UpsertDistrict inserts or renames a district.
func (s *InMemoryStore) UpsertDistrict(_ context.Context, d models.District) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.districts[d.ID] = d
	return nil
}

// UpsertBlock inserts or renames a block. Returns sentinel.ErrNotFound for an unknown district.
func (s *InMemoryStore) UpsertBlock(_ context.Context, b models.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.districts[b.DistrictID]; !ok {
		return sentinel.ErrNotFound
	}
	s.blocks[b.ID] = b
	return nil
}

func (s *InMemoryStore) ListDistricts(_ context.Context) ([]models.District, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.District, 0, len(s.districts))
	for _, d := range s.districts {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b models.District) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *InMemoryStore) ListBlocks(_ context.Context, districtID id.DistrictID) ([]models.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Block
	for _, b := range s.blocks {
		if b.DistrictID == districtID {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b models.Block) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *InMemoryStore) FindDistrict(_ context.Context, districtID id.DistrictID) (*models.District, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.districts[districtID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &d, nil
}

func (s *InMemoryStore) FindBlock(_ context.Context, blockID id.BlockID) (*models.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[blockID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &b, nil
}

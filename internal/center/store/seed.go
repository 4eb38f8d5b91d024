package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
)

// HierarchyWriter accepts reference data.
type HierarchyWriter interface {
	UpsertDistrict(ctx context.Context, d models.District) error
	UpsertBlock(ctx context.Context, b models.Block) error
}

// hierarchyNamespace keeps seeded ids stable across restarts.
var hierarchyNamespace = uuid.MustParse("6f1c54a2-1f7e-4c0b-9a55-3d2b8e0c7a10")

// DefaultHierarchy is the reference data seeded for local runs.
var DefaultHierarchy = map[string][]string{
	"Central": {"Central Block A", "Central Block B"},
	"North":   {"North Block A", "North Block B", "North Block C"},
	"South":   {"South Block A"},
}

// SeedHierarchy upserts districts and their blocks. Ids are derived from names so
// running it twice is a no-op.
func SeedHierarchy(ctx context.Context, w HierarchyWriter, hierarchy map[string][]string) error {
	for district, blocks := range hierarchy {
		d := models.District{
			ID:   id.DistrictID(uuid.NewSHA1(hierarchyNamespace, []byte("district:"+district))),
			Name: district,
		}
		if err := w.UpsertDistrict(ctx, d); err != nil {
			return fmt.Errorf("seed district %q: %w", district, err)
		}
		for _, block := range blocks {
			b := models.Block{
				ID:         id.BlockID(uuid.NewSHA1(hierarchyNamespace, []byte("block:"+district+"/"+block))),
				DistrictID: d.ID,
				Name:       block,
			}
			if err := w.UpsertBlock(ctx, b); err != nil {
				return fmt.Errorf("seed block %q: %w", block, err)
			}
		}
	}
	return nil
}

package hierarchy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func (s *InMemoryStoreSuite) TestBlocksBelongToDistricts() {
	ctx := context.Background()
	north := models.District{ID: id.DistrictID(uuid.New()), Name: "North"}
	south := models.District{ID: id.DistrictID(uuid.New()), Name: "South"}
	s.Require().NoError(s.store.UpsertDistrict(ctx, south))
	s.Require().NoError(s.store.UpsertDistrict(ctx, north))

	hill := models.Block{ID: id.BlockID(uuid.New()), DistrictID: north.ID, Name: "Hill"}
	s.Require().NoError(s.store.UpsertBlock(ctx, hill))

	orphan := models.Block{ID: id.BlockID(uuid.New()), DistrictID: id.DistrictID(uuid.New()), Name: "Nowhere"}
	s.ErrorIs(s.store.UpsertBlock(ctx, orphan), sentinel.ErrNotFound)

	districts, err := s.store.ListDistricts(ctx)
	s.Require().NoError(err)
	s.Require().Len(districts, 2)
	s.Equal("North", districts[0].Name)

	blocks, err := s.store.ListBlocks(ctx, north.ID)
	s.Require().NoError(err)
	s.Require().Len(blocks, 1)
	s.Equal(hill.ID, blocks[0].ID)

	empty, err := s.store.ListBlocks(ctx, south.ID)
	s.Require().NoError(err)
	s.Empty(empty)

	found, err := s.store.FindBlock(ctx, hill.ID)
	s.Require().NoError(err)
	s.Equal(north.ID, found.DistrictID)
}

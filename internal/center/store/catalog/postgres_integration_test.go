//go:build integration

package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lscmis/internal/center/models"
	"lscmis/internal/center/store/catalog"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *catalog.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = catalog.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"service_transactions", "center_services", "service_items", "service_categories")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) category(name string) *models.Category {
	c, err := models.NewCategory(id.CategoryID(uuid.New()), name, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateCategory(context.Background(), c))
	return c
}

func (s *PostgresStoreSuite) item(categoryID id.CategoryID, name string) *models.Item {
	it, err := models.NewItem(id.ServiceItemID(uuid.New()), categoryID, name, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateItem(context.Background(), it))
	return it
}

func (s *PostgresStoreSuite) TestCategoryNamesAreCaseInsensitive() {
	s.category("Certificates")

	c, err := models.NewCategory(id.CategoryID(uuid.New()), "CERTIFICATES", time.Now().UTC())
	s.Require().NoError(err)
	err = s.store.CreateCategory(context.Background(), c)
	s.True(errors.Is(err, sentinel.ErrConflict))
}

func (s *PostgresStoreSuite) TestDeleteCategoryWithItemsIsRejected() {
	ctx := context.Background()
	c := s.category("Pensions")
	s.item(c.ID, "Old age pension")

	err := s.store.DeleteCategory(ctx, c.ID)
	s.True(errors.Is(err, sentinel.ErrInUse))

	summaries, err := s.store.ListCategories(ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(1, summaries[0].ItemCount)
}

func (s *PostgresStoreSuite) TestListItemsByIDs() {
	ctx := context.Background()
	c := s.category("Banking")
	a := s.item(c.ID, "Account opening")
	b := s.item(c.ID, "Cash withdrawal")
	s.item(c.ID, "Passbook update")

	items, err := s.store.ListItemsByIDs(ctx, []id.ServiceItemID{a.ID, b.ID, id.ServiceItemID(uuid.New())})
	s.Require().NoError(err)
	s.Len(items, 2)

	b.IsActive = false
	s.Require().NoError(s.store.UpdateItem(ctx, b))
	active, err := s.store.ListItems(ctx, true)
	s.Require().NoError(err)
	s.Len(active, 2)
}

func (s *PostgresStoreSuite) TestMissingRowsAreNotFound() {
	ctx := context.Background()
	_, err := s.store.FindItem(ctx, id.ServiceItemID(uuid.New()))
	s.True(errors.Is(err, sentinel.ErrNotFound))

	err = s.store.DeleteCategory(ctx, id.CategoryID(uuid.New()))
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

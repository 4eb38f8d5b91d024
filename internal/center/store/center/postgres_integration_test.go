//go:build integration

package center_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lscmis/internal/center/models"
	"lscmis/internal/center/store/center"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *center.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = center.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"service_transactions", "center_services", "profiles", "centers")
	s.Require().NoError(err)
}

func newApplication(code string) *models.Center {
	lat := 25.61
	c, err := models.NewApplication(id.CenterID(uuid.New()), models.Fields{
		Name:    "Center " + code,
		Details: models.Details{Village: "Rampur", StaffCount: 3},
		Geo:     models.Geo{Latitude: &lat},
	}, code, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		panic(err)
	}
	return c
}

// TestConcurrentCodeCreate verifies the unique constraint admits exactly one holder of a code.
func (s *PostgresStoreSuite) TestConcurrentCodeCreate() {
	ctx := context.Background()
	const goroutines = 30

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(ctx, newApplication("55555"))
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrAlreadyUsed) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	c := newApplication("60001")
	s.Require().NoError(s.store.Create(ctx, c))

	found, err := s.store.FindByCode(ctx, "60001")
	s.Require().NoError(err)
	s.Equal(c.ID, found.ID)
	s.Equal("Rampur", found.Fields.Details.Village)
	s.Require().NotNil(found.Fields.Geo.Latitude)
	s.InDelta(25.61, *found.Fields.Geo.Latitude, 1e-9)
	s.Nil(found.Fields.Geo.Longitude)
	s.True(found.Fields.DistrictID.IsNil())
}

// TestConsumeCodeOnce verifies the conditional update succeeds for exactly one caller.
func (s *PostgresStoreSuite) TestConsumeCodeOnce() {
	ctx := context.Background()
	c := newApplication("60002")
	c.ApplyReview(models.StatusApproved, time.Now())
	s.Require().NoError(s.store.Create(ctx, c))

	const goroutines = 10
	var wg sync.WaitGroup
	var successCount atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.store.ConsumeCode(ctx, c.ID, "60002", time.Now()) == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), successCount.Load())

	found, err := s.store.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	s.True(found.IsActive)
	s.Empty(found.ApplicationCode)
}

func (s *PostgresStoreSuite) TestExecuteReview() {
	ctx := context.Background()
	c := newApplication("60003")
	s.Require().NoError(s.store.Create(ctx, c))

	_, err := s.store.Execute(ctx, c.ID,
		func(c *models.Center) error { return c.CanReview(models.StatusRejected) },
		func(c *models.Center) { c.ApplyReview(models.StatusRejected, time.Now()) },
	)
	s.Require().NoError(err)

	_, err = s.store.Execute(ctx, c.ID,
		func(c *models.Center) error { return c.CanReview(models.StatusApproved) },
		func(c *models.Center) { c.ApplyReview(models.StatusApproved, time.Now()) },
	)
	s.Error(err)

	rejected, err := s.store.ListByStatus(ctx, models.StatusRejected)
	s.Require().NoError(err)
	s.Len(rejected, 1)
}

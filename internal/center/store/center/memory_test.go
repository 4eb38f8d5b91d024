package center

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
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
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

func newApplication(code string) *models.Center {
	c, err := models.NewApplication(id.CenterID(uuid.New()), models.Fields{Name: "Center " + code}, code, time.Now())
	if err != nil {
		panic(err)
	}
	return c
}

func (s *InMemoryStoreSuite) TestCreate() {
	ctx := context.Background()

	s.Run("duplicate application code returns ErrAlreadyUsed", func() {
		s.Require().NoError(s.store.Create(ctx, newApplication("10001")))
		err := s.store.Create(ctx, newApplication("10001"))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("centers without a code never collide", func() {
		for range 3 {
			c, err := models.NewProvisionedCenter(id.CenterID(uuid.New()), models.Fields{Name: "Admin center"}, time.Now())
			s.Require().NoError(err)
			s.Require().NoError(s.store.Create(ctx, c))
		}
	})

	s.Run("code lookups", func() {
		c := newApplication("10002")
		s.Require().NoError(s.store.Create(ctx, c))

		exists, err := s.store.ExistsCode(ctx, "10002")
		s.Require().NoError(err)
		s.True(exists)

		found, err := s.store.FindByCode(ctx, "10002")
		s.Require().NoError(err)
		s.Equal(c.ID, found.ID)

		_, err = s.store.FindByCode(ctx, "99999")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestConcurrentCodeCreate verifies exactly one writer wins a contested code.
func (s *InMemoryStoreSuite) TestConcurrentCodeCreate() {
	ctx := context.Background()
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(ctx, newApplication("77777"))
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

func (s *InMemoryStoreSuite) TestExecute() {
	ctx := context.Background()

	s.Run("validation failure leaves the center untouched", func() {
		c := newApplication("20001")
		s.Require().NoError(s.store.Create(ctx, c))

		_, err := s.store.Execute(ctx, c.ID,
			func(*models.Center) error { return dErrors.New(dErrors.CodeInvalidState, "nope") },
			func(c *models.Center) { c.Status = models.StatusApproved },
		)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

		found, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusPending, found.Status)
	})

	s.Run("applies the mutation", func() {
		c := newApplication("20002")
		s.Require().NoError(s.store.Create(ctx, c))

		updated, err := s.store.Execute(ctx, c.ID,
			func(c *models.Center) error { return c.CanReview(models.StatusApproved) },
			func(c *models.Center) { c.ApplyReview(models.StatusApproved, time.Now()) },
		)
		s.Require().NoError(err)
		s.Equal(models.StatusApproved, updated.Status)
		s.True(updated.IsActive)
	})

	s.Run("missing center returns ErrNotFound", func() {
		_, err := s.store.Execute(ctx, id.CenterID(uuid.New()),
			func(*models.Center) error { return nil },
			func(*models.Center) {},
		)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestConsumeCode() {
	ctx := context.Background()
	c := newApplication("30001")
	c.ApplyReview(models.StatusApproved, time.Now())
	s.Require().NoError(s.store.Create(ctx, c))

	s.Run("wrong code does not match", func() {
		s.ErrorIs(s.store.ConsumeCode(ctx, c.ID, "30002", time.Now()), sentinel.ErrAlreadyUsed)
	})

	s.Run("first consume wins and frees the code", func() {
		s.Require().NoError(s.store.ConsumeCode(ctx, c.ID, "30001", time.Now()))
		s.ErrorIs(s.store.ConsumeCode(ctx, c.ID, "30001", time.Now()), sentinel.ErrAlreadyUsed)

		found, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.True(found.IsActive)
		s.Empty(found.ApplicationCode)

		exists, err := s.store.ExistsCode(ctx, "30001")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("pending centers cannot consume", func() {
		pending := newApplication("30003")
		s.Require().NoError(s.store.Create(ctx, pending))
		s.ErrorIs(s.store.ConsumeCode(ctx, pending.ID, "30003", time.Now()), sentinel.ErrAlreadyUsed)
	})
}

func (s *InMemoryStoreSuite) TestListAndDelete() {
	ctx := context.Background()
	older := newApplication("40001")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newApplication("40002")
	s.Require().NoError(s.store.Create(ctx, older))
	s.Require().NoError(s.store.Create(ctx, newer))

	pending, err := s.store.ListByStatus(ctx, models.StatusPending)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.Equal(newer.ID, pending[0].ID)

	approved, err := s.store.ListByStatus(ctx, models.StatusApproved)
	s.Require().NoError(err)
	s.Empty(approved)

	s.Require().NoError(s.store.Delete(ctx, older.ID))
	s.ErrorIs(s.store.Delete(ctx, older.ID), sentinel.ErrNotFound)

	n, err := s.store.Count(ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	exists, err := s.store.ExistsCode(ctx, "40001")
	s.Require().NoError(err)
	s.False(exists)
}

//go:build integration

package credential_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lscmis/internal/identity/models"
	"lscmis/internal/identity/store/credential"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *credential.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = credential.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "profiles", "credentials"))
}

func newCredential(email string) *models.Credential {
	return &models.Credential{
		ID:           id.UserID(uuid.New()),
		Email:        email,
		PasswordHash: "hash",
		Confirmed:    true,
		CreatedAt:    time.Now().UTC(),
	}
}

// TestConcurrentDuplicateEmail verifies the unique email index admits exactly one writer.
func (s *PostgresStoreSuite) TestConcurrentDuplicateEmail() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(ctx, newCredential("race@example.com"))
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrConflict) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *PostgresStoreSuite) TestLookupAndDelete() {
	ctx := context.Background()
	c := newCredential("Mixed@Example.com")
	s.Require().NoError(s.store.Create(ctx, c))

	found, err := s.store.FindByEmail(ctx, "mixed@example.com")
	s.Require().NoError(err)
	s.Equal(c.ID, found.ID)

	s.Require().NoError(s.store.Delete(ctx, c.ID))
	s.ErrorIs(s.store.Delete(ctx, c.ID), sentinel.ErrNotFound)
	_, err = s.store.FindByID(ctx, c.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

package profile

import (
	"context"
	"testing"
	"time"

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

func newProfile(role models.Role, scope models.Scope, created time.Time) *models.Profile {
	p, err := models.NewProfile(id.UserID(uuid.New()), role, scope, created)
	if err != nil {
		panic(err)
	}
	return p
}

func (s *InMemoryStoreSuite) TestOnePerUser() {
	ctx := context.Background()
	p := newProfile(models.RoleAdmin, models.Scope{}, time.Now())
	s.Require().NoError(s.store.Create(ctx, p))

	dup := *p
	dup.Role = models.RoleDistrict
	s.ErrorIs(s.store.Create(ctx, &dup), sentinel.ErrConflict)

	found, err := s.store.FindByUserID(ctx, p.UserID)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, found.Role)
}

func (s *InMemoryStoreSuite) TestDelete() {
	ctx := context.Background()
	p := newProfile(models.RoleLSC, models.Scope{CenterID: id.CenterID(uuid.New())}, time.Now())
	s.Require().NoError(s.store.Create(ctx, p))

	s.Require().NoError(s.store.Delete(ctx, p.UserID))
	s.ErrorIs(s.store.Delete(ctx, p.UserID), sentinel.ErrNotFound)
	_, err := s.store.FindByUserID(ctx, p.UserID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestListByRoles() {
	ctx := context.Background()
	base := time.Now()
	district := newProfile(models.RoleDistrict, models.Scope{DistrictID: id.DistrictID(uuid.New())}, base)
	admin := newProfile(models.RoleAdmin, models.Scope{}, base.Add(time.Minute))
	operator := newProfile(models.RoleLSC, models.Scope{CenterID: id.CenterID(uuid.New())}, base)
	for _, p := range []*models.Profile{district, admin, operator} {
		s.Require().NoError(s.store.Create(ctx, p))
	}

	officers, err := s.store.ListByRoles(ctx, models.RoleAdmin, models.RoleDistrict, models.RoleBlock)
	s.Require().NoError(err)
	s.Require().Len(officers, 2)
	s.Equal(district.UserID, officers[0].UserID)
	s.Equal(admin.UserID, officers[1].UserID)
}

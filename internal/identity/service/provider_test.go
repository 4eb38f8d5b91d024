package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lscmis/internal/identity/store/credential"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
)

type ProviderSuite struct {
	suite.Suite
	provider *Provider
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) SetupTest() {
	s.provider = New(credential.NewInMemory())
}

func (s *ProviderSuite) TestCreateCredential() {
	ctx := context.Background()

	s.Run("normalizes email and authenticates", func() {
		userID, err := s.provider.CreateCredential(ctx, "  Operator@Example.com ", "pass1234")
		s.Require().NoError(err)
		s.False(userID.IsNil())

		got, err := s.provider.Authenticate(ctx, "operator@example.com", "pass1234")
		s.Require().NoError(err)
		s.Equal(userID, got)
	})

	s.Run("duplicate email is an auth error", func() {
		_, err := s.provider.CreateCredential(ctx, "twice@example.com", "pass1234")
		s.Require().NoError(err)
		_, err = s.provider.CreateCredential(ctx, "TWICE@example.com", "other")
		s.True(dErrors.HasCode(err, dErrors.CodeAuth))
	})

	s.Run("empty password is an auth error", func() {
		_, err := s.provider.CreateCredential(ctx, "nopass@example.com", "")
		s.True(dErrors.HasCode(err, dErrors.CodeAuth))
	})

	s.Run("malformed email is an auth error", func() {
		_, err := s.provider.CreateCredential(ctx, "not-an-email", "pass1234")
		s.True(dErrors.HasCode(err, dErrors.CodeAuth))
	})
}

func (s *ProviderSuite) TestAuthenticate() {
	ctx := context.Background()
	_, err := s.provider.CreateCredential(ctx, "login@example.com", "right")
	s.Require().NoError(err)

	s.Run("wrong password is unauthorized", func() {
		_, err := s.provider.Authenticate(ctx, "login@example.com", "wrong")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("unknown email is unauthorized", func() {
		_, err := s.provider.Authenticate(ctx, "nobody@example.com", "right")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *ProviderSuite) TestDeleteAndList() {
	ctx := context.Background()
	userID, err := s.provider.CreateCredential(ctx, "list@example.com", "pass")
	s.Require().NoError(err)

	users, err := s.provider.ListUsers(ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("list@example.com", users[0].Email)

	s.Require().NoError(s.provider.DeleteCredential(ctx, userID))

	err = s.provider.DeleteCredential(ctx, id.UserID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeAuth))

	users, err = s.provider.ListUsers(ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

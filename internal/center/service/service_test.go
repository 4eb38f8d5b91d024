package service

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks CenterStore,ProfileStore,AssociationStore,CatalogStore,TransactionStore,HierarchyStore,IdentityProvider,TokenIssuer,AuditPublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	centermetrics "lscmis/internal/center/metrics"
	"lscmis/internal/center/models"
	"lscmis/internal/center/service/mocks"
	"lscmis/internal/identity/token"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	centers      *mocks.MockCenterStore
	profiles     *mocks.MockProfileStore
	associations *mocks.MockAssociationStore
	catalog      *mocks.MockCatalogStore
	transactions *mocks.MockTransactionStore
	hierarchy    *mocks.MockHierarchyStore
	identity     *mocks.MockIdentityProvider
	tokens       *mocks.MockTokenIssuer
	publisher    *mocks.MockAuditPublisher
	metrics      *centermetrics.Metrics
	service      *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.reset()
}

func (s *ServiceSuite) SetupSubTest() {
	s.reset()
}

func (s *ServiceSuite) reset() {
	s.ctrl = gomock.NewController(s.T())
	s.centers = mocks.NewMockCenterStore(s.ctrl)
	s.profiles = mocks.NewMockProfileStore(s.ctrl)
	s.associations = mocks.NewMockAssociationStore(s.ctrl)
	s.catalog = mocks.NewMockCatalogStore(s.ctrl)
	s.transactions = mocks.NewMockTransactionStore(s.ctrl)
	s.hierarchy = mocks.NewMockHierarchyStore(s.ctrl)
	s.identity = mocks.NewMockIdentityProvider(s.ctrl)
	s.tokens = mocks.NewMockTokenIssuer(s.ctrl)
	s.publisher = mocks.NewMockAuditPublisher(s.ctrl)
	s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.metrics = centermetrics.NewWithRegisterer(prometheus.NewRegistry())

	s.service = New(Stores{
		Centers:      s.centers,
		Profiles:     s.profiles,
		Associations: s.associations,
		Catalog:      s.catalog,
		Transactions: s.transactions,
		Hierarchy:    s.hierarchy,
	}, s.identity,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(s.publisher),
		WithMetrics(s.metrics),
		WithTokenIssuer(s.tokens),
	)
}

func (s *ServiceSuite) provisionCommand(itemID id.ServiceItemID) models.ProvisionCenterCommand {
	return models.ProvisionCenterCommand{
		Email:          "operator@example.com",
		Password:       "secret-pass",
		Fields:         models.Fields{Name: "Gram Seva Kendra"},
		ServiceItemIDs: []id.ServiceItemID{itemID, itemID},
	}
}

func (s *ServiceSuite) TestProvisionCenter_Validation() {
	ctx := context.Background()
	itemID := id.ServiceItemID(uuid.New())

	s.Run("missing email fails before any call", func() {
		cmd := s.provisionCommand(itemID)
		cmd.Email = "  "
		_, err := s.service.ProvisionCenter(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "missing required fields")
	})

	s.Run("missing name fails before any call", func() {
		cmd := s.provisionCommand(itemID)
		cmd.Fields.Name = ""
		_, err := s.service.ProvisionCenter(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("no services selected", func() {
		cmd := s.provisionCommand(itemID)
		cmd.ServiceItemIDs = nil
		_, err := s.service.ProvisionCenter(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "no services selected")
	})

	s.Run("unknown service item", func() {
		s.catalog.EXPECT().ListItemsByIDs(gomock.Any(), []id.ServiceItemID{itemID}).Return(nil, nil)
		_, err := s.service.ProvisionCenter(ctx, s.provisionCommand(itemID))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestProvisionCenter_Compensation() {
	ctx := context.Background()
	itemID := id.ServiceItemID(uuid.New())
	userID := id.UserID(uuid.New())
	items := []*models.Item{{ID: itemID, IsActive: true}}

	s.Run("success links deduplicated services", func() {
		var created *models.Center
		gomock.InOrder(
			s.catalog.EXPECT().ListItemsByIDs(gomock.Any(), []id.ServiceItemID{itemID}).Return(items, nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), "operator@example.com", "secret-pass").Return(userID, nil),
			s.centers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Center) error {
				created = c
				return nil
			}),
			s.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Profile) error {
				s.Equal(models.RoleLSC, p.Role)
				s.Equal(userID, p.UserID)
				return nil
			}),
			s.associations.EXPECT().InsertMany(gomock.Any(), gomock.Len(1)).Return(nil),
		)

		res, err := s.service.ProvisionCenter(ctx, s.provisionCommand(itemID))
		s.Require().NoError(err)
		s.Equal(created.ID, res.CenterID)
		s.Equal(models.StatusApproved, created.Status)
		s.True(created.IsActive)
		s.Empty(created.ApplicationCode)
	})

	s.Run("credential failure creates nothing", func() {
		gomock.InOrder(
			s.catalog.EXPECT().ListItemsByIDs(gomock.Any(), gomock.Any()).Return(items, nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(id.UserID{}, dErrors.New(dErrors.CodeAuth, "email already registered")),
		)

		_, err := s.service.ProvisionCenter(ctx, s.provisionCommand(itemID))
		s.True(dErrors.HasCode(err, dErrors.CodeAuth))
	})

	s.Run("center failure deletes the credential", func() {
		gomock.InOrder(
			s.catalog.EXPECT().ListItemsByIDs(gomock.Any(), gomock.Any()).Return(items, nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), gomock.Any(), gomock.Any()).Return(userID, nil),
			s.centers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(nil),
		)

		_, err := s.service.ProvisionCenter(ctx, s.provisionCommand(itemID))
		s.True(dErrors.HasCode(err, dErrors.CodeStore))
	})

	s.Run("association failure unwinds profile, center and credential in reverse", func() {
		var centerID id.CenterID
		gomock.InOrder(
			s.catalog.EXPECT().ListItemsByIDs(gomock.Any(), gomock.Any()).Return(items, nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), gomock.Any(), gomock.Any()).Return(userID, nil),
			s.centers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Center) error {
				centerID = c.ID
				return nil
			}),
			s.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			s.associations.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(errors.New("write failed")),
			s.profiles.EXPECT().Delete(gomock.Any(), userID).Return(nil),
			s.centers.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got id.CenterID) error {
				s.Equal(centerID, got)
				return nil
			}),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(nil),
		)

		_, err := s.service.ProvisionCenter(ctx, s.provisionCommand(itemID))
		s.True(dErrors.HasCode(err, dErrors.CodeStore))
	})

	s.Run("failed compensation keeps the primary error and is counted", func() {
		gomock.InOrder(
			s.catalog.EXPECT().ListItemsByIDs(gomock.Any(), gomock.Any()).Return(items, nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), gomock.Any(), gomock.Any()).Return(userID, nil),
			s.centers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			s.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("profile insert failed")),
			s.centers.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("delete failed")),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(nil),
		)

		_, err := s.service.ProvisionCenter(ctx, s.provisionCommand(itemID))
		s.True(dErrors.HasCode(err, dErrors.CodeStore))
		s.Contains(err.Error(), "failed to create profile")
		s.Equal(1.0, promtest.ToFloat64(s.metrics.RollbackFailures.WithLabelValues(workflowProvision, "create_center")))
	})
}

func (s *ServiceSuite) TestReviewApplication() {
	ctx := context.Background()
	centerID := id.CenterID(uuid.New())

	review := func(status models.Status) func(context.Context, id.CenterID, func(*models.Center) error, func(*models.Center)) (*models.Center, error) {
		return func(_ context.Context, _ id.CenterID, validate func(*models.Center) error, mutate func(*models.Center)) (*models.Center, error) {
			c := &models.Center{ID: centerID, Status: status}
			if err := validate(c); err != nil {
				return nil, err
			}
			mutate(c)
			return c, nil
		}
	}

	s.Run("approve activates the center", func() {
		s.centers.EXPECT().Execute(gomock.Any(), centerID, gomock.Any(), gomock.Any()).DoAndReturn(review(models.StatusPending))

		c, err := s.service.ReviewApplication(ctx, centerID, models.StatusApproved)
		s.Require().NoError(err)
		s.Equal(models.StatusApproved, c.Status)
		s.True(c.IsActive)
	})

	s.Run("non-decision is a validation error", func() {
		_, err := s.service.ReviewApplication(ctx, centerID, models.StatusPending)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("already decided is invalid state", func() {
		s.centers.EXPECT().Execute(gomock.Any(), centerID, gomock.Any(), gomock.Any()).DoAndReturn(review(models.StatusRejected))

		_, err := s.service.ReviewApplication(ctx, centerID, models.StatusApproved)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown center", func() {
		s.centers.EXPECT().Execute(gomock.Any(), centerID, gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.ReviewApplication(ctx, centerID, models.StatusRejected)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestIssueCredentials() {
	ctx := context.Background()
	centerID := id.CenterID(uuid.New())
	userID := id.UserID(uuid.New())
	cmd := models.IssueCredentialsCommand{
		Email:           "operator@example.com",
		Password:        "secret-pass",
		CenterID:        centerID,
		ApplicationCode: "12345",
	}
	approved := func() *models.Center {
		return &models.Center{ID: centerID, Status: models.StatusApproved, ApplicationCode: "12345"}
	}

	s.Run("missing code", func() {
		bad := cmd
		bad.ApplicationCode = ""
		_, err := s.service.IssueCredentials(ctx, bad)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("pending application fails before mutation", func() {
		s.centers.EXPECT().FindByID(gomock.Any(), centerID).
			Return(&models.Center{ID: centerID, Status: models.StatusPending, ApplicationCode: "12345"}, nil)

		_, err := s.service.IssueCredentials(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("mismatched code is stale", func() {
		c := approved()
		c.ApplicationCode = "99999"
		s.centers.EXPECT().FindByID(gomock.Any(), centerID).Return(c, nil)

		_, err := s.service.IssueCredentials(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeStaleCode))
	})

	s.Run("code consumed concurrently rolls back profile then credential", func() {
		gomock.InOrder(
			s.centers.EXPECT().FindByID(gomock.Any(), centerID).Return(approved(), nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), cmd.Email, cmd.Password).Return(userID, nil),
			s.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			s.centers.EXPECT().ConsumeCode(gomock.Any(), centerID, "12345", gomock.Any()).Return(sentinel.ErrAlreadyUsed),
			s.profiles.EXPECT().Delete(gomock.Any(), userID).Return(nil),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(nil),
		)

		_, err := s.service.IssueCredentials(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeStaleCode))
	})

	s.Run("success consumes the code", func() {
		gomock.InOrder(
			s.centers.EXPECT().FindByID(gomock.Any(), centerID).Return(approved(), nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), cmd.Email, cmd.Password).Return(userID, nil),
			s.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			s.centers.EXPECT().ConsumeCode(gomock.Any(), centerID, "12345", gomock.Any()).Return(nil),
		)

		res, err := s.service.IssueCredentials(ctx, cmd)
		s.Require().NoError(err)
		s.Equal(userID, res.UserID)
	})
}

func (s *ServiceSuite) TestCreateUser() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())
	districtID := id.DistrictID(uuid.New())

	s.Run("center operator role is refused", func() {
		_, err := s.service.CreateUser(ctx, models.CreateUserCommand{Email: "a@b.c", Password: "pw", Role: "lsc"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("district role needs a district", func() {
		_, err := s.service.CreateUser(ctx, models.CreateUserCommand{Email: "a@b.c", Password: "pw", Role: "DISTRICT"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("profile failure deletes the credential", func() {
		gomock.InOrder(
			s.hierarchy.EXPECT().FindDistrict(gomock.Any(), districtID).Return(&models.District{ID: districtID}, nil),
			s.identity.EXPECT().CreateCredential(gomock.Any(), "officer@example.com", "pw").Return(userID, nil),
			s.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(nil),
		)

		_, err := s.service.CreateUser(ctx, models.CreateUserCommand{
			Email: "officer@example.com", Password: "pw", Role: "district", DistrictID: districtID,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeStore))
	})
}

func (s *ServiceSuite) TestDeleteUser() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())

	s.Run("missing profile mutates nothing", func() {
		s.profiles.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, sentinel.ErrNotFound)

		err := s.service.DeleteUser(ctx, userID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("profile delete failure keeps the credential", func() {
		gomock.InOrder(
			s.profiles.EXPECT().FindByUserID(gomock.Any(), userID).Return(&models.Profile{UserID: userID}, nil),
			s.profiles.EXPECT().Delete(gomock.Any(), userID).Return(errors.New("db down")),
		)

		err := s.service.DeleteUser(ctx, userID)
		s.True(dErrors.HasCode(err, dErrors.CodeStore))
	})

	s.Run("credential delete failure is reported as dangling", func() {
		gomock.InOrder(
			s.profiles.EXPECT().FindByUserID(gomock.Any(), userID).Return(&models.Profile{UserID: userID}, nil),
			s.profiles.EXPECT().Delete(gomock.Any(), userID).Return(nil),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(errors.New("identity down")),
		)

		err := s.service.DeleteUser(ctx, userID)
		s.True(dErrors.HasCode(err, dErrors.CodeAuth))
		s.Equal(1.0, promtest.ToFloat64(s.metrics.DanglingCredentials))
	})

	s.Run("success", func() {
		gomock.InOrder(
			s.profiles.EXPECT().FindByUserID(gomock.Any(), userID).Return(&models.Profile{UserID: userID}, nil),
			s.profiles.EXPECT().Delete(gomock.Any(), userID).Return(nil),
			s.identity.EXPECT().DeleteCredential(gomock.Any(), userID).Return(nil),
		)

		s.NoError(s.service.DeleteUser(ctx, userID))
	})
}

func (s *ServiceSuite) TestLogin() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())
	centerID := id.CenterID(uuid.New())

	s.Run("bad password", func() {
		s.identity.EXPECT().Authenticate(gomock.Any(), "op@example.com", "wrong").
			Return(id.UserID{}, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password"))

		_, err := s.service.Login(ctx, "op@example.com", "wrong")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("credential without profile cannot log in", func() {
		s.identity.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(userID, nil)
		s.profiles.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.Login(ctx, "op@example.com", "pw")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("token carries role and center scope", func() {
		expires := time.Now().Add(time.Hour)
		s.identity.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(userID, nil)
		s.profiles.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(&models.Profile{UserID: userID, Role: models.RoleLSC, Scope: models.Scope{CenterID: centerID}}, nil)
		s.tokens.EXPECT().Issue(token.Subject{
			UserID:   userID.String(),
			Role:     "LSC",
			CenterID: centerID.String(),
		}, gomock.Any()).Return("signed", expires, nil)

		session, err := s.service.Login(ctx, "op@example.com", "pw")
		s.Require().NoError(err)
		s.Equal("signed", session.Token)
		s.Equal(models.RoleLSC, session.Role)
	})
}

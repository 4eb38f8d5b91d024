package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"lscmis/internal/center/models"
	"lscmis/internal/identity/token"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/requestcontext"
)

const missingEmail = "—"

// CreateUser creates an officer account. Center operator accounts only come from
// provisioning and credential issuance.
func (s *Service) CreateUser(ctx context.Context, cmd models.CreateUserCommand) (userID id.UserID, err error) {
	start := time.Now()
	defer func() { s.observe(workflowCreateUser, start, err) }()

	email := strings.TrimSpace(cmd.Email)
	role := models.ParseRole(cmd.Role)
	if email == "" || cmd.Password == "" || role == "" {
		return id.UserID{}, dErrors.New(dErrors.CodeValidation, "missing required fields")
	}
	if !role.IsOfficer() {
		return id.UserID{}, dErrors.New(dErrors.CodeValidation, "role must be ADMIN, DISTRICT or BLOCK")
	}
	scope, err := s.officerScope(ctx, role, cmd.DistrictID, cmd.BlockID)
	if err != nil {
		return id.UserID{}, err
	}

	now := requestcontext.Now(ctx)
	err = s.newSaga(workflowCreateUser).Run(ctx,
		s.createCredentialStep(email, cmd.Password, &userID),
		s.createProfileStep(&userID, role, scope, now),
	)
	if err != nil {
		return id.UserID{}, err
	}

	s.audit.userCreated(ctx, models.UserCreated{UserID: userID, Email: email, Role: role})
	return userID, nil
}

func (s *Service) officerScope(ctx context.Context, role models.Role, districtID id.DistrictID, blockID id.BlockID) (models.Scope, error) {
	switch role {
	case models.RoleDistrict:
		if districtID.IsNil() {
			return models.Scope{}, dErrors.New(dErrors.CodeValidation, "district role requires a district")
		}
		fields, err := s.resolveHierarchy(ctx, models.Fields{DistrictID: districtID})
		if err != nil {
			return models.Scope{}, err
		}
		return models.Scope{DistrictID: fields.DistrictID}, nil
	case models.RoleBlock:
		if blockID.IsNil() {
			return models.Scope{}, dErrors.New(dErrors.CodeValidation, "block role requires a block")
		}
		fields, err := s.resolveHierarchy(ctx, models.Fields{DistrictID: districtID, BlockID: blockID})
		if err != nil {
			return models.Scope{}, err
		}
		return models.Scope{DistrictID: fields.DistrictID, BlockID: fields.BlockID}, nil
	default:
		return models.Scope{}, nil
	}
}

// DeleteUser removes the profile, then the credential. A credential that cannot be
// removed is reported for reconciliation; the profile is not restored.
func (s *Service) DeleteUser(ctx context.Context, userID id.UserID) (err error) {
	start := time.Now()
	defer func() { s.observe(workflowDeleteUser, start, err) }()

	if userID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "user id required")
	}
	if _, err := s.profiles.FindByUserID(ctx, userID); err != nil {
		return notFoundOr(err, "user not found", "failed to load user")
	}
	if err := s.profiles.Delete(ctx, userID); err != nil {
		return notFoundOr(err, "user not found", "failed to delete profile")
	}
	if err := s.identity.DeleteCredential(ctx, userID); err != nil {
		s.audit.danglingCredential(ctx, userID, err)
		if dErrors.HasCode(err, dErrors.CodeAuth) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeAuth, "failed to delete credential")
	}

	s.audit.userDeleted(ctx, models.UserDeleted{UserID: userID})
	return nil
}

// ListUsers returns officer profiles with their login emails.
func (s *Service) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	profiles, err := s.profiles.ListByRoles(ctx, models.RoleAdmin, models.RoleDistrict, models.RoleBlock)
	if err != nil {
		return nil, storeErr(err, "failed to list profiles")
	}
	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to list credentials")
	}
	emails := make(map[id.UserID]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}

	out := make([]models.UserSummary, 0, len(profiles))
	for _, p := range profiles {
		email, ok := emails[p.UserID]
		if !ok {
			email = missingEmail
		}
		out = append(out, models.UserSummary{UserID: p.UserID, Email: email, Role: p.Role, Scope: p.Scope})
	}
	return out, nil
}

// Login authenticates and issues a token carrying the profile's role and scope.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "email and password required")
	}
	if s.tokens == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "token issuer not configured")
	}

	userID, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		s.audit.loginFailed(ctx, email, "invalid credentials")
		if _, ok := dErrors.As(err); ok {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid email or password")
	}
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.audit.loginFailed(ctx, email, "no profile")
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
		}
		return nil, storeErr(err, "failed to load profile")
	}

	now := requestcontext.Now(ctx)
	tokenString, expiresAt, err := s.tokens.Issue(token.Subject{
		UserID:     userID.String(),
		Role:       string(profile.Role),
		CenterID:   scopeString(profile.Scope.CenterID),
		DistrictID: scopeString(profile.Scope.DistrictID),
		BlockID:    scopeString(profile.Scope.BlockID),
	}, now)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.audit.loggedIn(ctx, userID, profile.Role)
	return &models.Session{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		UserID:    userID,
		Role:      profile.Role,
		Scope:     profile.Scope,
	}, nil
}

// EnsureAdmin creates the bootstrap administrator unless the email is already taken.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.CreateUser(ctx, models.CreateUserCommand{
		Email:    email,
		Password: password,
		Role:     string(models.RoleAdmin),
	})
	if errors.Is(err, sentinel.ErrConflict) {
		s.logger.InfoContext(ctx, "bootstrap admin already present", "email", email)
		return nil
	}
	return err
}

type nillableID interface {
	IsNil() bool
	String() string
}

func scopeString(v nillableID) string {
	if v.IsNil() {
		return ""
	}
	return v.String()
}

// Package service is the identity provider: credential lifecycle and password checks.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"lscmis/internal/identity/models"
	"lscmis/internal/identity/secrets"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/collections"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/requestcontext"
)

type CredentialStore interface {
	Create(ctx context.Context, c *models.Credential) error
	FindByID(ctx context.Context, userID id.UserID) (*models.Credential, error)
	FindByEmail(ctx context.Context, email string) (*models.Credential, error)
	Delete(ctx context.Context, userID id.UserID) error
	List(ctx context.Context) ([]*models.Credential, error)
}

// Provider manages credentials. Every failure it returns carries CodeAuth, except
// Authenticate which answers CodeUnauthorized for bad email/password pairs.
type Provider struct {
	credentials CredentialStore
	logger      *slog.Logger
}

type Option func(p *Provider)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

func New(credentials CredentialStore, opts ...Option) *Provider {
	p := &Provider{credentials: credentials}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// CreateCredential registers an auto-confirmed credential and returns its user id.
func (p *Provider) CreateCredential(ctx context.Context, email, password string) (id.UserID, error) {
	email = collections.NormalizeEmail(email)
	hash, err := secrets.Hash(password)
	if err != nil {
		return id.UserID{}, dErrors.Wrap(err, dErrors.CodeAuth, "invalid password")
	}
	cred, err := models.NewCredential(id.UserID(uuid.New()), email, hash, requestcontext.Now(ctx))
	if err != nil {
		return id.UserID{}, dErrors.Wrap(err, dErrors.CodeAuth, "invalid credential")
	}
	if err := p.credentials.Create(ctx, cred); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return id.UserID{}, dErrors.Wrap(err, dErrors.CodeAuth, "email already registered")
		}
		return id.UserID{}, dErrors.Wrap(err, dErrors.CodeAuth, "failed to create credential")
	}
	p.logger.InfoContext(ctx, "credential created", "user_id", cred.ID.String())
	return cred.ID, nil
}

// DeleteCredential removes a credential.
func (p *Provider) DeleteCredential(ctx context.Context, userID id.UserID) error {
	if err := p.credentials.Delete(ctx, userID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeAuth, "credential not found")
		}
		return dErrors.Wrap(err, dErrors.CodeAuth, "failed to delete credential")
	}
	return nil
}

// ListUsers returns every credential's id and email.
func (p *Provider) ListUsers(ctx context.Context) ([]models.User, error) {
	creds, err := p.credentials.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeAuth, "failed to list users")
	}
	users := make([]models.User, 0, len(creds))
	for _, c := range creds {
		users = append(users, models.User{ID: c.ID, Email: c.Email})
	}
	return users, nil
}

// Authenticate checks an email/password pair and returns the user id.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (id.UserID, error) {
	cred, err := p.credentials.FindByEmail(ctx, collections.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return id.UserID{}, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
		}
		return id.UserID{}, dErrors.Wrap(err, dErrors.CodeAuth, "failed to look up credential")
	}
	if err := secrets.Verify(password, cred.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidInput) {
			return id.UserID{}, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
		}
		return id.UserID{}, dErrors.Wrap(err, dErrors.CodeAuth, "failed to verify password")
	}
	if !cred.Confirmed {
		return id.UserID{}, dErrors.New(dErrors.CodeUnauthorized, "credential not confirmed")
	}
	return cred.ID, nil
}

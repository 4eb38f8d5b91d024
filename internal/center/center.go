package center

import (
	"log/slog"

	"lscmis/internal/center/handler"
	"lscmis/internal/center/service"
	authmw "lscmis/pkg/platform/middleware/auth"
)

// Service exposes the center lifecycle, user, catalog and transaction workflows.
type Service = service.Service

// Stores groups the persistence ports the service needs.
type Stores = service.Stores

// Handler wires HTTP endpoints to the center service.
type Handler = handler.Handler

// NewService constructs the center service with required dependencies.
func NewService(stores Stores, identity service.IdentityProvider, opts ...service.Option) *Service {
	return service.New(stores, identity, opts...)
}

// NewHandler constructs the HTTP handler for public, admin and center operator routes.
func NewHandler(s *Service, validator authmw.JWTValidator, logger *slog.Logger, opts ...handler.Option) *Handler {
	return handler.New(s, validator, logger, opts...)
}

// Package handler exposes the center workflows over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lscmis/internal/center/models"
	"lscmis/internal/platform/ratelimit"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/httputil"
	authmw "lscmis/pkg/platform/middleware/auth"
	"lscmis/pkg/requestcontext"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// Service is the center workflow surface the handler drives.
type Service interface {
	ProvisionCenter(ctx context.Context, cmd models.ProvisionCenterCommand) (*models.ProvisionResult, error)
	UpdateCenter(ctx context.Context, cmd models.UpdateCenterCommand) (*models.Center, error)
	GetCenter(ctx context.Context, centerID id.CenterID) (*models.CenterDetail, error)

	SubmitApplication(ctx context.Context, cmd models.SubmitApplicationCommand) (*models.SubmitResult, error)
	ReviewApplication(ctx context.Context, centerID id.CenterID, decision models.Status) (*models.Center, error)
	IssueCredentials(ctx context.Context, cmd models.IssueCredentialsCommand) (*models.ProvisionResult, error)
	ApplicationStatus(ctx context.Context, code string) (*models.Center, error)
	ListApplications(ctx context.Context, status models.Status) ([]*models.Center, error)

	CreateUser(ctx context.Context, cmd models.CreateUserCommand) (id.UserID, error)
	DeleteUser(ctx context.Context, userID id.UserID) error
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)

	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, categoryID id.CategoryID, name string) error
	ListCategories(ctx context.Context) ([]models.CategorySummary, error)
	DeleteCategory(ctx context.Context, categoryID id.CategoryID) error
	CreateItem(ctx context.Context, categoryID id.CategoryID, name string) (*models.Item, error)
	RenameItem(ctx context.Context, itemID id.ServiceItemID, name string) (*models.Item, error)
	ToggleItem(ctx context.Context, itemID id.ServiceItemID) (*models.Item, error)
	ListItems(ctx context.Context, activeOnly bool) ([]*models.Item, error)
	DeleteItem(ctx context.Context, itemID id.ServiceItemID) error

	RecordTransaction(ctx context.Context, centerID id.CenterID, fields models.TransactionFields) (*models.Transaction, error)
	ListTransactions(ctx context.Context, centerID id.CenterID, filter models.TransactionFilter) ([]*models.Transaction, error)
	DeleteTransaction(ctx context.Context, centerID id.CenterID, txID id.TransactionID) error
	OfferedServices(ctx context.Context, centerID id.CenterID) ([]*models.Item, error)

	ListDistricts(ctx context.Context) ([]models.District, error)
	ListBlocks(ctx context.Context, districtID id.DistrictID) ([]models.Block, error)
}

// AuditLister reads recent audit events for the admin trail.
type AuditLister interface {
	ListRecent(ctx context.Context, category audit.EventCategory, limit int) ([]audit.Event, error)
}

type Handler struct {
	service   Service
	validator authmw.JWTValidator
	audit     AuditLister
	limiter   *ratelimit.Middleware
	logger    *slog.Logger
}

type Option func(*Handler)

func WithAuditLister(l AuditLister) Option {
	return func(h *Handler) {
		h.audit = l
	}
}

// WithRateLimiter throttles login and the public application routes.
func WithRateLimiter(m *ratelimit.Middleware) Option {
	return func(h *Handler) {
		h.limiter = m
	}
}

func New(service Service, validator authmw.JWTValidator, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, validator: validator, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// Register mounts the public, admin and center operator routes.
func (h *Handler) Register(r chi.Router) {
	r.With(h.limit(ratelimit.ClassAuth)).Post("/auth/login", h.handleLogin)

	r.Route("/public", func(r chi.Router) {
		r.With(h.limit(ratelimit.ClassPublic)).Post("/applications", h.handleSubmitApplication)
		r.With(h.limit(ratelimit.ClassPublic)).Post("/applications/credentials", h.handleIssueCredentials)
		r.With(h.limit(ratelimit.ClassPublic)).Get("/applications/{code}", h.handleApplicationStatus)
		r.Get("/districts", h.handleListDistricts)
		r.Get("/districts/{districtID}/blocks", h.handleListBlocks)
		r.Get("/catalog/items", h.handlePublicItems)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authmw.RequireAuth(h.validator, h.logger))
		r.Use(authmw.RequireRole(h.logger, string(models.RoleAdmin)))

		r.Post("/centers", h.handleProvisionCenter)
		r.Get("/centers/{centerID}", h.handleGetCenter)
		r.Put("/centers/{centerID}", h.handleUpdateCenter)
		r.Get("/applications", h.handleListApplications)
		r.Post("/applications/{centerID}/review", h.handleReviewApplication)

		r.Post("/users", h.handleCreateUser)
		r.Get("/users", h.handleListUsers)
		r.Delete("/users/{userID}", h.handleDeleteUser)

		r.Get("/categories", h.handleListCategories)
		r.Post("/categories", h.handleCreateCategory)
		r.Put("/categories/{categoryID}", h.handleRenameCategory)
		r.Delete("/categories/{categoryID}", h.handleDeleteCategory)
		r.Get("/items", h.handleListItems)
		r.Post("/items", h.handleCreateItem)
		r.Put("/items/{itemID}", h.handleRenameItem)
		r.Delete("/items/{itemID}", h.handleDeleteItem)
		r.Post("/items/{itemID}/toggle", h.handleToggleItem)

		r.Get("/audit", h.handleListAudit)
	})

	r.Route("/center", func(r chi.Router) {
		r.Use(authmw.RequireAuth(h.validator, h.logger))
		r.Use(authmw.RequireRole(h.logger, string(models.RoleLSC)))

		r.Get("/services", h.handleOfferedServices)
		r.Get("/transactions", h.handleListTransactions)
		r.Post("/transactions", h.handleRecordTransaction)
		r.Delete("/transactions/{transactionID}", h.handleDeleteTransaction)
	})
}

func (h *Handler) limit(class ratelimit.Class) func(http.Handler) http.Handler {
	if h.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return h.limiter.Limit(class)
}

// fail logs the failure at a level matching its class and writes the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	attrs := []any{"request_id", requestcontext.RequestID(ctx), "error", err}
	if dErrors.CodeOf(err).IsInternal() {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

// pathID parses a typed id from a chi URL parameter.
func pathID[T any](r *http.Request, param string, parse func(string) (T, error)) (T, error) {
	v, err := parse(chi.URLParam(r, param))
	if err != nil {
		var zero T
		return zero, dErrors.New(dErrors.CodeValidation, "invalid "+param)
	}
	return v, nil
}

// scopedCenter returns the caller's center from the session.
func scopedCenter(ctx context.Context) (id.CenterID, error) {
	centerID := requestcontext.CenterID(ctx)
	if centerID.IsNil() {
		return id.CenterID{}, dErrors.New(dErrors.CodeForbidden, "session is not bound to a center")
	}
	return centerID, nil
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultAuditLimit
	}
	return min(n, maxAuditLimit)
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"lscmis/internal/center/appcode"
	centermetrics "lscmis/internal/center/metrics"
	"lscmis/internal/platform/config"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/saga"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/platform/tx"
)

const (
	workflowProvision        = "provision_center"
	workflowUpdate           = "update_center"
	workflowSubmit           = "submit_application"
	workflowReview           = "review_application"
	workflowIssueCredentials = "issue_credentials"
	workflowCreateUser       = "create_user"
	workflowDeleteUser       = "delete_user"
)

// Stores groups the persistence ports the service orchestrates.
type Stores struct {
	Centers      CenterStore
	Profiles     ProfileStore
	Associations AssociationStore
	Catalog      CatalogStore
	Transactions TransactionStore
	Hierarchy    HierarchyStore
}

// Service runs the center workflows: provisioning, the application lifecycle,
// officer accounts, the service catalog and operator transactions.
type Service struct {
	centers      CenterStore
	profiles     ProfileStore
	associations AssociationStore
	catalog      CatalogStore
	transactions TransactionStore
	hierarchy    HierarchyStore
	identity     IdentityProvider

	codes   CodeGenerator
	tokens  TokenIssuer
	tx      tx.Runner
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *centermetrics.Metrics
	audit   *auditEmitter
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *centermetrics.Metrics
	tx             tx.Runner
	codes          CodeGenerator
	tokens         TokenIssuer
	tracer         trace.Tracer
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(c *serviceConfig) {
		c.auditPublisher = publisher
	}
}

func WithMetrics(m *centermetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithTx sets the runner for multi-store updates. Defaults to a sharded lock runner,
// which is what the in-memory stores need.
func WithTx(runner tx.Runner) Option {
	return func(c *serviceConfig) {
		c.tx = runner
	}
}

func WithCodeGenerator(g CodeGenerator) Option {
	return func(c *serviceConfig) {
		c.codes = g
	}
}

func WithTokenIssuer(issuer TokenIssuer) Option {
	return func(c *serviceConfig) {
		c.tokens = issuer
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = tracer
	}
}

func New(stores Stores, identity IdentityProvider, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tx == nil {
		cfg.tx = tx.NewLockRunner(tx.DefaultTimeout)
	}
	if cfg.codes == nil {
		codeCfg := config.DefaultAppCodeConfig()
		genOpts := []appcode.Option{
			appcode.WithReserver(appcode.NewMemoryReserver(codeCfg.ReservationTTL)),
			appcode.WithLogger(cfg.logger),
		}
		if cfg.metrics != nil {
			genOpts = append(genOpts, appcode.WithObserver(cfg.metrics))
		}
		cfg.codes = appcode.New(codeCfg, stores.Centers, genOpts...)
	}

	s := &Service{
		centers:      stores.Centers,
		profiles:     stores.Profiles,
		associations: stores.Associations,
		catalog:      stores.Catalog,
		transactions: stores.Transactions,
		hierarchy:    stores.Hierarchy,
		identity:     identity,
		codes:        cfg.codes,
		tokens:       cfg.tokens,
		tx:           cfg.tx,
		logger:       cfg.logger,
		tracer:       cfg.tracer,
		metrics:      cfg.metrics,
	}
	s.audit = newAuditEmitter(cfg.logger, cfg.auditPublisher, cfg.metrics)
	return s
}

// newSaga builds a runner that reports failed compensations to metrics and audit.
func (s *Service) newSaga(name string) *saga.Runner {
	opts := []saga.Option{
		saga.WithLogger(s.logger),
		saga.OnRollbackFailure(s.audit.rollbackFailed),
	}
	if s.tracer != nil {
		opts = append(opts, saga.WithTracer(s.tracer))
	}
	return saga.New(name, opts...)
}

func (s *Service) observe(workflow string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
	}
	s.metrics.ObserveWorkflow(workflow, outcome, start)
}

// storeErr codes an infrastructure failure, leaving already coded errors alone.
func storeErr(err error, msg string) error {
	if _, ok := dErrors.As(err); ok {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeStore, msg)
}

// invariantToValidation surfaces model invariant failures as caller validation errors.
func invariantToValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		de, _ := dErrors.As(err)
		return dErrors.New(dErrors.CodeValidation, de.Message)
	}
	return err
}

func notFoundOr(err error, notFoundMsg, storeMsg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	}
	return storeErr(err, storeMsg)
}

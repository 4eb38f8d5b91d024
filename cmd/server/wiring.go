package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lscmis/internal/center"
	"lscmis/internal/center/handler"
	"lscmis/internal/center/service"
	"lscmis/internal/center/store"
	"lscmis/internal/center/store/association"
	"lscmis/internal/center/store/catalog"
	centerstore "lscmis/internal/center/store/center"
	"lscmis/internal/center/store/hierarchy"
	"lscmis/internal/center/store/profile"
	"lscmis/internal/center/store/transaction"
	identitysvc "lscmis/internal/identity/service"
	"lscmis/internal/identity/store/credential"
	"lscmis/internal/platform/config"
	"lscmis/internal/platform/kafka"
	"lscmis/internal/platform/kafka/consumer"
	"lscmis/internal/platform/metrics"
	"lscmis/internal/platform/ratelimit"
	"lscmis/internal/platform/redis"
	"lscmis/pkg/platform/audit"
	auditconsumer "lscmis/pkg/platform/audit/consumer"
	auditmemory "lscmis/pkg/platform/audit/store/memory"
	auditpostgres "lscmis/pkg/platform/audit/store/postgres"
	"lscmis/pkg/platform/audit/worker"
	"lscmis/pkg/platform/httputil"
	adminmw "lscmis/pkg/platform/middleware/admin"
	"lscmis/pkg/platform/middleware/metadata"
	"lscmis/pkg/platform/middleware/request"
	"lscmis/pkg/platform/middleware/requesttime"
	"lscmis/pkg/platform/tx"
)

const auditConsumerGroup = "lscmis-audit"

// seedableHierarchy is a hierarchy store the reference data can be seeded into.
type seedableHierarchy interface {
	service.HierarchyStore
	store.HierarchyWriter
}

// storeSet is the persistence wiring for one backend.
type storeSet struct {
	stores      center.Stores
	hierarchy   seedableHierarchy
	credentials identitysvc.CredentialStore
	runner      tx.Runner
}

// buildStores returns postgres-backed stores when db is set, in-memory ones otherwise.
func buildStores(db *sql.DB, txTimeout time.Duration) storeSet {
	if db == nil {
		h := hierarchy.NewInMemory()
		return storeSet{
			stores: center.Stores{
				Centers:      centerstore.NewInMemory(),
				Profiles:     profile.NewInMemory(),
				Associations: association.NewInMemory(),
				Catalog:      catalog.NewInMemory(),
				Transactions: transaction.NewInMemory(),
				Hierarchy:    h,
			},
			hierarchy:   h,
			credentials: credential.NewInMemory(),
			runner:      tx.NewLockRunner(txTimeout),
		}
	}
	h := hierarchy.NewPostgres(db)
	return storeSet{
		stores: center.Stores{
			Centers:      centerstore.NewPostgres(db),
			Profiles:     profile.NewPostgres(db),
			Associations: association.NewPostgres(db),
			Catalog:      catalog.NewPostgres(db),
			Transactions: transaction.NewPostgres(db),
			Hierarchy:    h,
		},
		hierarchy:   h,
		credentials: credential.NewPostgres(db),
		runner:      tx.NewSQLRunner(db, txTimeout),
	}
}

// auditTrail is where audit events are written and read back, plus any background
// workers the backend needs.
type auditTrail struct {
	store   audit.Store
	lister  handler.AuditLister
	workers []func(ctx context.Context) error
}

// buildAuditTrail uses the postgres outbox with a Kafka relay when both are
// configured. The queryable audit table is filled by the consumer, so without Kafka
// events stay in memory.
func buildAuditTrail(db *sql.DB, producer *kafka.Producer, cfg config.KafkaConfig, m *metrics.Metrics, log *slog.Logger) (auditTrail, error) {
	if db == nil || producer == nil {
		mem := auditmemory.NewInMemoryStore()
		return auditTrail{store: mem, lister: mem}, nil
	}
	outbox := auditpostgres.New(db)
	relay := worker.NewRelay(outbox, producer, tx.NewSQLRunner(db, tx.DefaultTimeout), log)

	sub, err := consumer.New(cfg, auditConsumerGroup, log)
	if err != nil {
		return auditTrail{}, err
	}
	router := auditconsumer.NewRouter(log, nil, auditconsumer.WithDropCounter(m)).
		Register(cfg.AuditTopic, auditconsumer.NewEventHandler(outbox, log))

	return auditTrail{
		store:  outbox,
		lister: outbox,
		workers: []func(ctx context.Context) error{
			relay.Run,
			func(ctx context.Context) error {
				defer sub.Close()
				return sub.Run(ctx, router)
			},
		},
	}, nil
}

// healthChecks pings the configured backends. Nil members are skipped.
type healthChecks struct {
	db    *sql.DB
	redis *redis.Client
	kafka *kafka.Producer
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (c healthChecks) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	results := map[string]string{}
	healthy := true
	record := func(name string, err error) {
		if err != nil {
			healthy = false
			results[name] = err.Error()
			return
		}
		results[name] = "ok"
	}
	if c.db != nil {
		record("postgres", c.db.PingContext(ctx))
	}
	if c.redis != nil {
		record("redis", c.redis.Health(ctx))
	}
	if c.kafka != nil {
		record("kafka", c.kafka.Health(ctx))
	}

	if !healthy {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Checks: results})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Checks: results})
}

func newRouter(cfg config.Server, log *slog.Logger, m *metrics.Metrics, h *center.Handler, checks healthChecks) *chi.Mux {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recovery(log))
	r.Use(request.Logger(log))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(request.Metrics(m))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", checks.ServeHTTP)
	r.With(adminmw.RequireOpsToken(cfg.MetricsToken, log)).Handle("/metrics", promhttp.Handler())

	h.Register(r)
	return r
}

// buildRateLimiter shares windows through Redis when configured so replicas
// enforce one budget per client.
func buildRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client, log *slog.Logger) *ratelimit.Middleware {
	var store ratelimit.Store = ratelimit.NewMemoryStore()
	if rdb != nil {
		store = ratelimit.NewRedisStore(rdb.Client)
	}
	return ratelimit.New(store, map[ratelimit.Class]ratelimit.Limit{
		ratelimit.ClassAuth:   {Requests: cfg.AuthRequests, Window: cfg.AuthWindow},
		ratelimit.ClassPublic: {Requests: cfg.PublicRequests, Window: cfg.PublicWindow},
	}, log)
}

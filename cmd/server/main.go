package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"lscmis/internal/center"
	"lscmis/internal/center/appcode"
	"lscmis/internal/center/handler"
	centermetrics "lscmis/internal/center/metrics"
	"lscmis/internal/center/service"
	"lscmis/internal/center/store"
	identitysvc "lscmis/internal/identity/service"
	"lscmis/internal/identity/token"
	"lscmis/internal/platform/config"
	"lscmis/internal/platform/httpserver"
	"lscmis/internal/platform/kafka"
	"lscmis/internal/platform/logger"
	"lscmis/internal/platform/metrics"
	"lscmis/internal/platform/postgres"
	"lscmis/internal/platform/redis"
	"lscmis/pkg/platform/audit/publisher"
)

const (
	tokenIssuer     = "lscmis"
	shutdownTimeout = 10 * time.Second
	auditBuffer     = 256
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run wires dependencies and serves until SIGINT or SIGTERM.
func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("postgres connected, migrations applied")
	} else {
		log.Warn("DATABASE_URL not set, running on in-memory stores")
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	producer, err := kafka.NewProducer(ctx, cfg.Kafka)
	if err != nil {
		return err
	}
	if producer != nil {
		defer producer.Close()
		if err := producer.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.Replicas); err != nil {
			return err
		}
	}

	httpMetrics := metrics.New()
	workflowMetrics := centermetrics.New()

	deps := buildStores(db, cfg.Database.TxTimeout)
	trail, err := buildAuditTrail(db, producer, cfg.Kafka, httpMetrics, log)
	if err != nil {
		return err
	}
	pub := publisher.NewPublisher(trail.store,
		publisher.WithAsyncBuffer(auditBuffer),
		publisher.WithLogger(log),
		publisher.WithMetrics(httpMetrics),
	)
	defer pub.Close()

	reserver := appcode.Reserver(appcode.NewMemoryReserver(cfg.AppCode.ReservationTTL))
	if rdb != nil {
		reserver = appcode.NewRedisReserver(rdb.Client, cfg.AppCode.ReservationTTL, log)
	}
	codes := appcode.New(cfg.AppCode, deps.stores.Centers,
		appcode.WithReserver(reserver),
		appcode.WithObserver(workflowMetrics),
		appcode.WithLogger(log),
	)

	tokens := token.NewJWTService(cfg.JWTSigningKey, tokenIssuer, cfg.TokenTTL)
	identity := identitysvc.New(deps.credentials, identitysvc.WithLogger(log))

	svc := center.NewService(deps.stores, identity,
		service.WithLogger(log),
		service.WithAuditPublisher(pub),
		service.WithMetrics(workflowMetrics),
		service.WithTx(deps.runner),
		service.WithCodeGenerator(codes),
		service.WithTokenIssuer(tokens),
		service.WithTracer(otel.Tracer("lscmis/center")),
	)

	if err := store.SeedHierarchy(ctx, deps.hierarchy, store.DefaultHierarchy); err != nil {
		return err
	}
	if err := svc.EnsureAdmin(ctx, cfg.Bootstrap.Email, cfg.Bootstrap.Password); err != nil {
		return err
	}

	handlerOpts := []handler.Option{handler.WithAuditLister(trail.lister)}
	if !cfg.RateLimit.Disabled {
		handlerOpts = append(handlerOpts, handler.WithRateLimiter(buildRateLimiter(cfg.RateLimit, rdb, log)))
	}
	h := center.NewHandler(svc, tokens, log, handlerOpts...)
	checks := healthChecks{db: db, redis: rdb, kafka: producer}
	srv := httpserver.New(cfg.Addr, newRouter(cfg, log, httpMetrics, h, checks))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting lscmis", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	for _, worker := range trail.workers {
		g.Go(func() error { return worker(gctx) })
	}
	return g.Wait()
}

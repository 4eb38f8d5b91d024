//go:build integration

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lscmis/internal/platform/config"
	"lscmis/internal/platform/kafka"
	"lscmis/internal/platform/kafka/consumer"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/audit"
	auditconsumer "lscmis/pkg/platform/audit/consumer"
	auditpostgres "lscmis/pkg/platform/audit/store/postgres"
	"lscmis/pkg/platform/audit/worker"
	"lscmis/pkg/platform/tx"
	"lscmis/pkg/testutil/containers"
)

// RelaySuite moves outbox rows through a real broker into the queryable audit table.
type RelaySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	redpanda *containers.RedpandaContainer
	store    *auditpostgres.Store
	cfg      config.KafkaConfig
	logger   *slog.Logger
}

func TestRelaySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
	s.store = auditpostgres.New(s.postgres.DB)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *RelaySuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "outbox", "audit_events"))
	s.cfg = config.KafkaConfig{
		Brokers:    s.redpanda.Brokers,
		AuditTopic: "lsc.audit." + uuid.NewString()[:8],
		ClientID:   "lscmis-test",
	}
}

func (s *RelaySuite) TestOutboxReachesAuditTable() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	producer, err := kafka.NewProducer(ctx, s.cfg)
	s.Require().NoError(err)
	defer producer.Close()
	s.Require().NoError(producer.EnsureTopic(ctx, 1, 1))

	userID := id.UserID(uuid.New())
	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Action:    string(audit.EventCenterProvisioned),
		Timestamp: time.Now(),
		UserID:    userID,
		Subject:   "center-1",
	}))

	relay := worker.NewRelay(s.store, producer, tx.NewSQLRunner(s.postgres.DB, tx.DefaultTimeout), s.logger)
	n, err := relay.RelayOnce(ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	n, err = relay.RelayOnce(ctx)
	s.Require().NoError(err)
	s.Zero(n, "published rows are not relayed twice")

	sub, err := consumer.New(s.cfg, "relay-test-"+uuid.NewString()[:8], s.logger)
	s.Require().NoError(err)
	defer sub.Close()

	router := auditconsumer.NewRouter(s.logger, nil)
	router.Register(s.cfg.AuditTopic, auditconsumer.NewEventHandler(s.store, s.logger))

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sub.Run(runCtx, router)
	}()

	s.Eventually(func() bool {
		events, err := s.store.ListByUser(ctx, userID)
		return err == nil && len(events) == 1
	}, 30*time.Second, 200*time.Millisecond)
	stop()
	<-done

	events, err := s.store.ListRecent(ctx, audit.CategoryCompliance, 10)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("center-1", events[0].Subject)
}

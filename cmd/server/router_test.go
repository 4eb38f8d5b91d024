package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"lscmis/internal/center"
	identitysvc "lscmis/internal/identity/service"
	"lscmis/internal/identity/token"
	"lscmis/internal/platform/config"
	"lscmis/internal/platform/metrics"
	"lscmis/pkg/platform/tx"
	"lscmis/pkg/testutil"
)

func TestRouter(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := buildStores(nil, tx.DefaultTimeout)
	tokens := token.NewJWTService("router-test-key", tokenIssuer, time.Hour)
	svc := center.NewService(deps.stores, identitysvc.New(deps.credentials))
	h := center.NewHandler(svc, tokens, log)

	cfg := config.Server{MetricsToken: "ops-token"}
	router := newRouter(cfg, log, metrics.NewWithRegisterer(prometheus.NewRegistry()), h, healthChecks{})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	testutil.Given(t, "the HTTP router on in-memory stores", func(t *testing.T) {
		testutil.When(t, "calling GET /healthz with no backends configured", func(t *testing.T) {
			rec := serve(httptest.NewRequest(http.MethodGet, "/healthz", nil))

			testutil.Then(t, "it should report ok", func(t *testing.T) {
				testutil.AssertStatusOK(t, rec)
				testutil.AssertJSONContains(t, rec, "status", "ok")
			})
		})

		testutil.When(t, "calling GET /metrics without the ops token", func(t *testing.T) {
			rec := serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

			testutil.Then(t, "it should respond unauthorized", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusUnauthorized)
			})
		})

		testutil.When(t, "calling GET /metrics with the ops token", func(t *testing.T) {
			rec := serve(testutil.WithBearer(httptest.NewRequest(http.MethodGet, "/metrics", nil), "ops-token"))

			testutil.Then(t, "it should expose the registry", func(t *testing.T) {
				testutil.AssertStatusOK(t, rec)
			})
		})

		testutil.When(t, "calling an admin route anonymously", func(t *testing.T) {
			rec := serve(httptest.NewRequest(http.MethodGet, "/admin/users", nil))

			testutil.Then(t, "it should respond unauthorized", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusUnauthorized)
			})
		})

		testutil.When(t, "calling a public route", func(t *testing.T) {
			rec := serve(httptest.NewRequest(http.MethodGet, "/public/catalog/items", nil))

			testutil.Then(t, "it should be served without a session", func(t *testing.T) {
				testutil.AssertStatusOK(t, rec)
			})
			testutil.And(t, "it should carry a request id", func(t *testing.T) {
				if got := rec.Header().Get("X-Request-ID"); got == "" {
					t.Fatalf("expected X-Request-ID header to be set")
				}
			})
		})
	})
}

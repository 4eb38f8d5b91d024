package ratelimit

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/httputil"
	"lscmis/pkg/platform/middleware/metadata"
	"lscmis/pkg/requestcontext"
)

// Middleware applies per-class limits keyed by client IP.
type Middleware struct {
	store  Store
	limits map[Class]Limit
	logger *slog.Logger
}

func New(store Store, limits map[Class]Limit, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{store: store, limits: limits, logger: logger}
}

// Limit returns middleware for class. Classes without a configured limit pass
// through. Store failures fail open.
func (m *Middleware) Limit(class Class) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limit, ok := m.limits[class]
		if !ok || limit.Requests <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := requestcontext.ClientIP(ctx)
			if ip == "" {
				ip = metadata.ClientIPFromRequest(r)
			}

			result, err := m.store.Allow(ctx, string(class)+":"+ip, limit)
			if err != nil {
				m.logger.ErrorContext(ctx, "rate limit check failed",
					"request_id", requestcontext.RequestID(ctx),
					"class", class,
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				h.Set("Retry-After", strconv.Itoa(retryAfter(result.ResetAt)))
				m.logger.WarnContext(ctx, "rate limit exceeded",
					"request_id", requestcontext.RequestID(ctx),
					"class", class,
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfter(resetAt time.Time) int {
	return max(1, int(math.Ceil(time.Until(resetAt).Seconds())))
}

package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/httputil"
	"lscmis/pkg/requestcontext"
)

// RequireOpsToken guards operational endpoints such as /metrics with a static bearer token.
// An empty expected token disables the check.
func RequireOpsToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if expectedToken == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				ctx := r.Context()
				logger.WarnContext(ctx, "ops token mismatch",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "ops token required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

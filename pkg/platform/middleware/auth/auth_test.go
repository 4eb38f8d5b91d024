package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	id "lscmis/pkg/domain"
	"lscmis/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (v stubValidator) ValidateToken(string) (*JWTClaims, error) { return v.claims, v.err }

type AuthMiddlewareSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *AuthMiddlewareSuite) serve(v JWTValidator, header string, next http.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/center/services", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	RequireAuth(v, s.logger)(next).ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareSuite) TestRequireAuth() {
	userID := uuid.New()
	centerID := uuid.New()

	s.Run("valid token populates context", func() {
		var gotUser id.UserID
		var gotCenter id.CenterID
		var gotRole string
		v := stubValidator{claims: &JWTClaims{UserID: userID.String(), Role: "LSC", CenterID: centerID.String()}}

		w := s.serve(v, "Bearer token", func(w http.ResponseWriter, r *http.Request) {
			gotUser = requestcontext.UserID(r.Context())
			gotRole = requestcontext.Role(r.Context())
			gotCenter = requestcontext.CenterID(r.Context())
		})

		s.Equal(http.StatusOK, w.Code)
		s.Equal(id.UserID(userID), gotUser)
		s.Equal("LSC", gotRole)
		s.Equal(id.CenterID(centerID), gotCenter)
	})

	s.Run("missing header is unauthorized", func() {
		w := s.serve(stubValidator{}, "", func(http.ResponseWriter, *http.Request) {
			s.Fail("handler must not run")
		})
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("invalid token is unauthorized", func() {
		w := s.serve(stubValidator{err: errors.New("expired")}, "Bearer stale", func(http.ResponseWriter, *http.Request) {
			s.Fail("handler must not run")
		})
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed subject is unauthorized", func() {
		w := s.serve(stubValidator{claims: &JWTClaims{UserID: "nope"}}, "Bearer x", func(http.ResponseWriter, *http.Request) {
			s.Fail("handler must not run")
		})
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := RequireRole(logger, "ADMIN")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(requestcontext.WithRole(req.Context(), "LSC")))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(requestcontext.WithRole(req.Context(), "ADMIN")))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

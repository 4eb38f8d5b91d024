package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lscmis/pkg/domain-errors"
)

var jwtService = NewJWTService("test-signing-key", "test-issuer", time.Hour)

func Test_IssueAndValidate(t *testing.T) {
	userID := uuid.NewString()
	centerID := uuid.NewString()

	signed, expiresAt, err := jwtService.Issue(Subject{UserID: userID, Role: "LSC", CenterID: centerID}, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := jwtService.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "LSC", claims.Role)
	assert.Equal(t, centerID, claims.CenterID)
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := jwtService.ValidateToken("invalid-token-string")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_ExpiredToken(t *testing.T) {
	signed, _, err := jwtService.Issue(Subject{UserID: uuid.NewString(), Role: "ADMIN"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = jwtService.Parse(signed)
	require.Error(t, err)
	assert.Equal(t, "token has expired", err.Error())
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	other := NewJWTService("other-key", "test-issuer", time.Hour)
	signed, _, err := other.Issue(Subject{UserID: uuid.NewString(), Role: "ADMIN"}, time.Now())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

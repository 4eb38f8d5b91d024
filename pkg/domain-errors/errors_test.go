package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeStore, "failed to insert center")

	assert.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeStore))
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, Wrap(nil, CodeStore, "ignored"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	wrapped := fmt.Errorf("outer: %w", New(CodeStaleCode, "stale"))
	assert.Equal(t, CodeStaleCode, CodeOf(wrapped))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:     http.StatusBadRequest,
		CodeAuth:           http.StatusBadRequest,
		CodeStore:          http.StatusInternalServerError,
		CodeConflict:       http.StatusConflict,
		CodeStaleCode:      http.StatusConflict,
		CodeCodeGeneration: http.StatusInternalServerError,
		CodeNotFound:       http.StatusNotFound,
		CodeInvalidState:   http.StatusConflict,
		CodeUnauthorized:   http.StatusUnauthorized,
		CodeForbidden:      http.StatusForbidden,
		CodeRateLimited:    http.StatusTooManyRequests,
	}
	for code, status := range cases {
		assert.Equal(t, status, ToHTTPStatus(code), string(code))
	}
}

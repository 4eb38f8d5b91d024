package models

import (
	"strings"
	"time"

	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
)

// Credential is a login identity owned by the identity provider.
//
// Invariants:
//   - Email is stored normalized (trimmed, lowercase) and is unique
//   - PasswordHash is a bcrypt hash, never the plaintext password
type Credential struct {
	ID           id.UserID
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
}

// NewCredential builds an auto-confirmed credential. Returns CodeInvariantViolation
// when the email or hash is missing.
func NewCredential(userID id.UserID, email, passwordHash string, now time.Time) (*Credential, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "credential id required")
	}
	if !strings.Contains(email, "@") {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "valid email required")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash required")
	}
	return &Credential{
		ID:           userID,
		Email:        email,
		PasswordHash: passwordHash,
		Confirmed:    true,
		CreatedAt:    now,
	}, nil
}

// User is the public projection of a credential.
type User struct {
	ID    id.UserID
	Email string
}

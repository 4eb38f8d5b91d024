package models

import (
	"strings"
	"time"

	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
)

// Role decides which scope id a profile carries.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleDistrict Role = "DISTRICT"
	RoleBlock    Role = "BLOCK"
	RoleLSC      Role = "LSC"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDistrict, RoleBlock, RoleLSC:
		return true
	}
	return false
}

// IsOfficer reports whether r can be created through the plain user workflow.
func (r Role) IsOfficer() bool {
	return r == RoleAdmin || r == RoleDistrict || r == RoleBlock
}

func ParseRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

// Scope is the organizational unit a profile is bound to.
type Scope struct {
	DistrictID id.DistrictID
	BlockID    id.BlockID
	CenterID   id.CenterID
}

// Profile binds a credential to a role. There is exactly one per credential.
//
// Invariants:
//   - DISTRICT carries DistrictID
//   - BLOCK carries BlockID (DistrictID when known)
//   - LSC carries CenterID
//   - ADMIN carries no scope
type Profile struct {
	UserID    id.UserID
	Role      Role
	Scope     Scope
	CreatedAt time.Time
}

func NewProfile(userID id.UserID, role Role, scope Scope, now time.Time) (*Profile, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "profile user id required")
	}
	switch role {
	case RoleAdmin:
		scope = Scope{}
	case RoleDistrict:
		if scope.DistrictID.IsNil() {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "district role requires a district")
		}
		scope = Scope{DistrictID: scope.DistrictID}
	case RoleBlock:
		if scope.BlockID.IsNil() {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "block role requires a block")
		}
		scope = Scope{DistrictID: scope.DistrictID, BlockID: scope.BlockID}
	case RoleLSC:
		if scope.CenterID.IsNil() {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "center role requires a center")
		}
		scope = Scope{CenterID: scope.CenterID}
	default:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "unknown role")
	}
	return &Profile{
		UserID:    userID,
		Role:      role,
		Scope:     scope,
		CreatedAt: now,
	}, nil
}

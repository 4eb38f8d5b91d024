package models

import (
	"time"

	id "lscmis/pkg/domain"
)

// Workflow inputs and results, shared by the service and its transport.

type ProvisionCenterCommand struct {
	Email          string
	Password       string
	Fields         Fields
	ServiceItemIDs []id.ServiceItemID
}

type ProvisionResult struct {
	CenterID id.CenterID
	UserID   id.UserID
}

type SubmitApplicationCommand struct {
	Fields         Fields
	ServiceItemIDs []id.ServiceItemID
}

type SubmitResult struct {
	CenterID        id.CenterID
	ApplicationCode string
}

type IssueCredentialsCommand struct {
	Email           string
	Password        string
	CenterID        id.CenterID
	ApplicationCode string
}

type UpdateCenterCommand struct {
	CenterID       id.CenterID
	Fields         Fields
	ServiceItemIDs []id.ServiceItemID
}

type CreateUserCommand struct {
	Email      string
	Password   string
	Role       string
	DistrictID id.DistrictID
	BlockID    id.BlockID
}

// CenterDetail is a center with its service associations.
type CenterDetail struct {
	Center   *Center
	Services []Association
}

// UserSummary is an officer profile joined with its credential email.
type UserSummary struct {
	UserID id.UserID
	Email  string
	Role   Role
	Scope  Scope
}

// Session is an issued login token with the identity it carries.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    id.UserID
	Role      Role
	Scope     Scope
}

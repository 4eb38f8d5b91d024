package models

import id "lscmis/pkg/domain"

// Domain events, translated to audit events by the service.

type CenterProvisioned struct {
	CenterID id.CenterID
	UserID   id.UserID
	Email    string
}

type ApplicationSubmitted struct {
	CenterID id.CenterID
}

type ApplicationReviewed struct {
	CenterID id.CenterID
	Decision Status
}

type CredentialsIssued struct {
	CenterID id.CenterID
	UserID   id.UserID
	Email    string
}

type UserCreated struct {
	UserID id.UserID
	Email  string
	Role   Role
}

type UserDeleted struct {
	UserID id.UserID
}

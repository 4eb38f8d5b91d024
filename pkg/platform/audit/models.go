package audit

import (
	"context"
	"time"

	id "lscmis/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing downstream.
type EventCategory string

const (
	// CategoryCompliance covers account and onboarding changes that must be retained.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers authentication failures and access violations.
	CategorySecurity EventCategory = "security"

	// CategoryReconciliation covers partial failures that left data needing manual repair,
	// such as a compensation step that could not undo its action.
	CategoryReconciliation EventCategory = "reconciliation"

	// CategoryOperations covers routine activity.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    id.UserID     `json:"user_id"`
	Subject   string        `json:"subject"`
	Action    string        `json:"action"`
	Decision  string        `json:"decision,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Email     string        `json:"email,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	// ActorID is the authenticated caller when different from UserID, e.g. the admin
	// who provisioned a center.
	ActorID   string `json:"actor_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

type AuditEvent string

const (
	// Onboarding events
	EventCenterProvisioned    AuditEvent = "center_provisioned"
	EventCenterUpdated        AuditEvent = "center_updated"
	EventApplicationSubmitted AuditEvent = "application_submitted"
	EventApplicationReviewed  AuditEvent = "application_reviewed"
	EventCredentialsIssued    AuditEvent = "credentials_issued"

	// Account events
	EventUserCreated AuditEvent = "user_created"
	EventUserDeleted AuditEvent = "user_deleted"
	EventLoginFailed AuditEvent = "login_failed"
	EventLoggedIn    AuditEvent = "logged_in"

	// Catalog and transaction events
	EventCategoryDeleted    AuditEvent = "category_deleted"
	EventItemDeleted        AuditEvent = "item_deleted"
	EventTransactionDeleted AuditEvent = "transaction_deleted"

	// Reconciliation events
	EventRollbackFailed     AuditEvent = "rollback_failed"
	EventDanglingCredential AuditEvent = "dangling_credential"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventCenterProvisioned:    CategoryCompliance,
	EventCenterUpdated:        CategoryCompliance,
	EventApplicationSubmitted: CategoryCompliance,
	EventApplicationReviewed:  CategoryCompliance,
	EventCredentialsIssued:    CategoryCompliance,
	EventUserCreated:          CategoryCompliance,
	EventUserDeleted:          CategoryCompliance,

	EventLoginFailed: CategorySecurity,

	EventRollbackFailed:     CategoryReconciliation,
	EventDanglingCredential: CategoryReconciliation,

	EventLoggedIn:           CategoryOperations,
	EventCategoryDeleted:    CategoryOperations,
	EventItemDeleted:        CategoryOperations,
	EventTransactionDeleted: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

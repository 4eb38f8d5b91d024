package service

import (
	"context"
	"fmt"
	"log/slog"

	centermetrics "lscmis/internal/center/metrics"
	"lscmis/internal/center/models"
	"lscmis/pkg/attrs"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/saga"
	"lscmis/pkg/requestcontext"
)

// auditEmitter writes an audit log line for every event and forwards it to the
// publisher when one is configured. Publish failures are logged and swallowed: the
// workflow that produced the event has already committed.
type auditEmitter struct {
	logger    *slog.Logger
	publisher AuditPublisher
	metrics   *centermetrics.Metrics
}

func newAuditEmitter(logger *slog.Logger, publisher AuditPublisher, metrics *centermetrics.Metrics) *auditEmitter {
	return &auditEmitter{logger: logger, publisher: publisher, metrics: metrics}
}

func (e *auditEmitter) emit(ctx context.Context, event audit.AuditEvent, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(event), "log_type", "audit")
	e.logger.InfoContext(ctx, string(event), args...)

	if e.publisher == nil {
		return
	}
	record := audit.Event{
		Category:  event.Category(),
		Timestamp: requestcontext.Now(ctx),
		UserID:    attrs.UserID(attributes),
		Subject:   attrs.Subject(attributes),
		Action:    string(event),
		Decision:  attrs.String(attributes, attrs.KeyDecision),
		Reason:    attrs.String(attributes, attrs.KeyReason),
		Email:     attrs.String(attributes, attrs.KeyEmail),
	}
	if actor := requestcontext.UserID(ctx); !actor.IsNil() {
		record.ActorID = actor.String()
	}
	if err := e.publisher.Emit(ctx, record); err != nil {
		e.logger.WarnContext(ctx, "audit publish failed", "event", string(event), "error", err)
	}
}

func (e *auditEmitter) centerProvisioned(ctx context.Context, ev models.CenterProvisioned) {
	e.emit(ctx, audit.EventCenterProvisioned,
		attrs.KeyCenterID, ev.CenterID,
		attrs.KeyUserID, ev.UserID,
		attrs.KeyEmail, ev.Email,
	)
}

func (e *auditEmitter) centerUpdated(ctx context.Context, centerID id.CenterID) {
	e.emit(ctx, audit.EventCenterUpdated, attrs.KeyCenterID, centerID)
}

func (e *auditEmitter) applicationSubmitted(ctx context.Context, ev models.ApplicationSubmitted) {
	e.emit(ctx, audit.EventApplicationSubmitted, attrs.KeyCenterID, ev.CenterID)
}

func (e *auditEmitter) applicationReviewed(ctx context.Context, ev models.ApplicationReviewed) {
	e.emit(ctx, audit.EventApplicationReviewed,
		attrs.KeyCenterID, ev.CenterID,
		attrs.KeyDecision, string(ev.Decision),
	)
}

func (e *auditEmitter) credentialsIssued(ctx context.Context, ev models.CredentialsIssued) {
	e.emit(ctx, audit.EventCredentialsIssued,
		attrs.KeyCenterID, ev.CenterID,
		attrs.KeyUserID, ev.UserID,
		attrs.KeyEmail, ev.Email,
	)
}

func (e *auditEmitter) userCreated(ctx context.Context, ev models.UserCreated) {
	e.emit(ctx, audit.EventUserCreated,
		attrs.KeyUserID, ev.UserID,
		attrs.KeyEmail, ev.Email,
		attrs.KeyDecision, string(ev.Role),
	)
}

func (e *auditEmitter) userDeleted(ctx context.Context, ev models.UserDeleted) {
	e.emit(ctx, audit.EventUserDeleted, attrs.KeyUserID, ev.UserID)
}

func (e *auditEmitter) loginFailed(ctx context.Context, email, reason string) {
	e.emit(ctx, audit.EventLoginFailed, attrs.KeyEmail, email, attrs.KeyReason, reason)
}

func (e *auditEmitter) loggedIn(ctx context.Context, userID id.UserID, role models.Role) {
	e.emit(ctx, audit.EventLoggedIn,
		attrs.KeyUserID, userID,
		attrs.KeyDecision, string(role),
	)
}

func (e *auditEmitter) deleted(ctx context.Context, event audit.AuditEvent, subject string) {
	e.emit(ctx, event, attrs.KeySubject, subject)
}

// rollbackFailed is the saga hook for compensations that left data behind.
func (e *auditEmitter) rollbackFailed(ctx context.Context, f saga.RollbackFailure) {
	if e.metrics != nil {
		e.metrics.IncRollbackFailure(f.Saga, f.Step)
	}
	e.emit(ctx, audit.EventRollbackFailed,
		attrs.KeySubject, f.Saga,
		attrs.KeyReason, fmt.Sprintf("%s: %v", f.Step, f.Err),
	)
}

// danglingCredential records a credential whose profile is already gone.
func (e *auditEmitter) danglingCredential(ctx context.Context, userID id.UserID, err error) {
	e.logger.ErrorContext(ctx, "credential left without profile",
		"user_id", userID.String(),
		"error", err,
	)
	if e.metrics != nil {
		e.metrics.IncDanglingCredential()
	}
	e.emit(ctx, audit.EventDanglingCredential,
		attrs.KeyUserID, userID,
		attrs.KeyReason, err.Error(),
	)
}

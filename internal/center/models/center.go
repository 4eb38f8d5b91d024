package models

import (
	"strings"
	"time"

	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
)

// Status is the application state of a center.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsDecision reports whether s is a valid review outcome.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo allows PENDING → APPROVED and PENDING → REJECTED only.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target.IsDecision()
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "status must be PENDING, APPROVED or REJECTED")
	}
	return s, nil
}

// Details is the descriptive part of a center registration.
type Details struct {
	EstablishedOn    time.Time
	Village          string
	GramPanchayat    string
	CLFCode          string
	CLFName          string
	CLFFormationDate time.Time
	OperatorName     string
	Address          string
	StaffCount       int
	Contact          string
}

type Banking struct {
	BankName  string
	AccountNo string
	IFSC      string
	Branch    string
}

// Geo holds optional coordinates; nil means not captured.
type Geo struct {
	Latitude  *float64
	Longitude *float64
}

type Facilities struct {
	HasBuilding  bool
	HasFurniture bool
}

// Fields is everything an admin or applicant can set on a center.
type Fields struct {
	Name       string
	DistrictID id.DistrictID
	BlockID    id.BlockID
	Details    Details
	Banking    Banking
	Geo        Geo
	Facilities Facilities
}

// Center is the aggregate root for a local service center.
//
// Invariants:
//   - Name is non-empty
//   - Status is PENDING, APPROVED or REJECTED; only PENDING may be reviewed
//   - ApplicationCode is set only while an application awaits credentials ("" means none)
//   - A center created by an admin is APPROVED and active with no code
//   - CreatedAt is immutable after construction
type Center struct {
	ID              id.CenterID
	Fields          Fields
	IsActive        bool
	Status          Status
	ApplicationCode string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidateFields checks the field invariants shared by every center constructor.
func ValidateFields(fields Fields) error {
	if strings.TrimSpace(fields.Name) == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "center name cannot be empty")
	}
	if fields.Details.StaffCount < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "staff count cannot be negative")
	}
	if lat := fields.Geo.Latitude; lat != nil && (*lat < -90 || *lat > 90) {
		return dErrors.New(dErrors.CodeInvariantViolation, "latitude out of range")
	}
	if lng := fields.Geo.Longitude; lng != nil && (*lng < -180 || *lng > 180) {
		return dErrors.New(dErrors.CodeInvariantViolation, "longitude out of range")
	}
	return nil
}

// NewProvisionedCenter builds a center created directly by an admin.
func NewProvisionedCenter(centerID id.CenterID, fields Fields, now time.Time) (*Center, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}
	return &Center{
		ID:        centerID,
		Fields:    fields,
		IsActive:  true,
		Status:    StatusApproved,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewApplication builds a self-registered center awaiting review.
func NewApplication(centerID id.CenterID, fields Fields, code string, now time.Time) (*Center, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "application code required")
	}
	return &Center{
		ID:              centerID,
		Fields:          fields,
		IsActive:        false,
		Status:          StatusPending,
		ApplicationCode: code,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// CanReview checks the center may receive decision.
// Use with ApplyReview in Execute callbacks.
func (c *Center) CanReview(decision Status) error {
	if !decision.IsDecision() {
		return dErrors.New(dErrors.CodeInvariantViolation, "decision must be APPROVED or REJECTED")
	}
	if !c.Status.CanTransitionTo(decision) {
		return dErrors.New(dErrors.CodeInvalidState, "application is not pending")
	}
	return nil
}

// ApplyReview records the decision. Call CanReview first.
func (c *Center) ApplyReview(decision Status, now time.Time) {
	c.Status = decision
	c.IsActive = decision == StatusApproved
	c.UpdatedAt = now
}

// CanIssueCredentials checks an approved application still holds code.
func (c *Center) CanIssueCredentials(code string) error {
	if c.Status != StatusApproved {
		return dErrors.New(dErrors.CodeInvalidState, "application is not approved")
	}
	if c.ApplicationCode == "" || c.ApplicationCode != code {
		return dErrors.New(dErrors.CodeStaleCode, "application code is invalid or already used")
	}
	return nil
}

// ApplyCredentialsIssued activates the center and consumes its code.
func (c *Center) ApplyCredentialsIssued(now time.Time) {
	c.IsActive = true
	c.ApplicationCode = ""
	c.UpdatedAt = now
}

// ApplyFields replaces the editable fields.
func (c *Center) ApplyFields(fields Fields, now time.Time) error {
	if err := ValidateFields(fields); err != nil {
		return err
	}
	c.Fields = fields
	c.UpdatedAt = now
	return nil
}

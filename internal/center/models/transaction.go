package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
)

// Transaction is one service rendered to a beneficiary. Append-only.
//
// Invariants:
//   - AmountCollected >= 0
//   - EndDate, when set, is not before StartDate
type Transaction struct {
	ID                 id.TransactionID
	CenterID           id.CenterID
	ServiceItemID      id.ServiceItemID
	StartDate          time.Time
	EndDate            *time.Time
	BeneficiaryName    string
	BeneficiaryAddress string
	BeneficiaryPhone   string
	AmountCollected    decimal.Decimal
	CreatedAt          time.Time
}

// TransactionFields is the operator-supplied part of a transaction.
type TransactionFields struct {
	ServiceItemID      id.ServiceItemID
	StartDate          time.Time
	EndDate            *time.Time
	BeneficiaryName    string
	BeneficiaryAddress string
	BeneficiaryPhone   string
	AmountCollected    decimal.Decimal
}

func NewTransaction(txID id.TransactionID, centerID id.CenterID, f TransactionFields, now time.Time) (*Transaction, error) {
	if f.ServiceItemID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "service item required")
	}
	if f.StartDate.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "start date required")
	}
	if strings.TrimSpace(f.BeneficiaryName) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "beneficiary name required")
	}
	if f.AmountCollected.IsNegative() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "amount collected cannot be negative")
	}
	if f.EndDate != nil && f.EndDate.Before(f.StartDate) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "end date is before start date")
	}
	return &Transaction{
		ID:                 txID,
		CenterID:           centerID,
		ServiceItemID:      f.ServiceItemID,
		StartDate:          f.StartDate,
		EndDate:            f.EndDate,
		BeneficiaryName:    strings.TrimSpace(f.BeneficiaryName),
		BeneficiaryAddress: f.BeneficiaryAddress,
		BeneficiaryPhone:   f.BeneficiaryPhone,
		AmountCollected:    f.AmountCollected,
		CreatedAt:          now,
	}, nil
}

// TransactionFilter narrows a listing to a start date range. Zero bounds are open.
type TransactionFilter struct {
	From time.Time
	To   time.Time
}

func (f TransactionFilter) Matches(t *Transaction) bool {
	if !f.From.IsZero() && t.StartDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.StartDate.After(f.To) {
		return false
	}
	return true
}

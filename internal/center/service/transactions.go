package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/requestcontext"
)

// RecordTransaction logs a service the center rendered. The item must be active
// and one the center currently offers.
func (s *Service) RecordTransaction(ctx context.Context, centerID id.CenterID, fields models.TransactionFields) (*models.Transaction, error) {
	if centerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "center id required")
	}
	txn, err := models.NewTransaction(id.TransactionID(uuid.New()), centerID, fields, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}
	item, err := s.catalog.FindItem(ctx, fields.ServiceItemID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeValidation, "service is not offered by this center")
		}
		return nil, storeErr(err, "failed to load service")
	}
	if !item.IsActive {
		return nil, dErrors.New(dErrors.CodeValidation, "service is not offered by this center")
	}
	offered, err := s.associations.IsOffered(ctx, centerID, fields.ServiceItemID)
	if err != nil {
		return nil, storeErr(err, "failed to check center services")
	}
	if !offered {
		return nil, dErrors.New(dErrors.CodeValidation, "service is not offered by this center")
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, storeErr(err, "failed to record transaction")
	}
	return txn, nil
}

// ListTransactions returns the center's transactions, newest first.
func (s *Service) ListTransactions(ctx context.Context, centerID id.CenterID, filter models.TransactionFilter) ([]*models.Transaction, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, dErrors.New(dErrors.CodeValidation, "from date is after to date")
	}
	txns, err := s.transactions.ListByCenter(ctx, centerID, filter)
	if err != nil {
		return nil, storeErr(err, "failed to list transactions")
	}
	return txns, nil
}

// DeleteTransaction removes a transaction owned by centerID. Another center's
// transaction is reported as not found.
func (s *Service) DeleteTransaction(ctx context.Context, centerID id.CenterID, txID id.TransactionID) error {
	if err := s.transactions.Delete(ctx, centerID, txID); err != nil {
		return notFoundOr(err, "transaction not found", "failed to delete transaction")
	}
	s.audit.deleted(ctx, audit.EventTransactionDeleted, txID.String())
	return nil
}

// OfferedServices lists the active catalog items the center has available.
func (s *Service) OfferedServices(ctx context.Context, centerID id.CenterID) ([]*models.Item, error) {
	associations, err := s.associations.ListByCenter(ctx, centerID)
	if err != nil {
		return nil, storeErr(err, "failed to load center services")
	}
	itemIDs := make([]id.ServiceItemID, 0, len(associations))
	for _, a := range associations {
		if a.IsAvailable {
			itemIDs = append(itemIDs, a.ServiceItemID)
		}
	}
	if len(itemIDs) == 0 {
		return []*models.Item{}, nil
	}
	items, err := s.catalog.ListItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, storeErr(err, "failed to load services")
	}
	out := make([]*models.Item, 0, len(items))
	for _, it := range items {
		if it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}

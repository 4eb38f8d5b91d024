package models

import (
	"strings"
	"time"

	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
)

// Category groups service items. Names are unique case-insensitively.
type Category struct {
	ID        id.CategoryID
	Name      string
	CreatedAt time.Time
}

// CategorySummary is a category with the number of items filed under it.
type CategorySummary struct {
	Category
	ItemCount int
}

// Item is a service a center may offer.
type Item struct {
	ID         id.ServiceItemID
	CategoryID id.CategoryID
	Name       string
	IsActive   bool
	CreatedAt  time.Time
}

// Association records that a center offers an item. Keyed by (CenterID, ServiceItemID).
type Association struct {
	CenterID      id.CenterID
	ServiceItemID id.ServiceItemID
	IsAvailable   bool
}

func NewCategory(categoryID id.CategoryID, name string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name cannot be empty")
	}
	return &Category{ID: categoryID, Name: name, CreatedAt: now}, nil
}

func NewItem(itemID id.ServiceItemID, categoryID id.CategoryID, name string, now time.Time) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "item name cannot be empty")
	}
	if categoryID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "item category required")
	}
	return &Item{
		ID:         itemID,
		CategoryID: categoryID,
		Name:       name,
		IsActive:   true,
		CreatedAt:  now,
	}, nil
}

// NewAssociations builds available associations for each item.
func NewAssociations(centerID id.CenterID, itemIDs []id.ServiceItemID) []Association {
	out := make([]Association, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		out = append(out, Association{CenterID: centerID, ServiceItemID: itemID, IsAvailable: true})
	}
	return out
}

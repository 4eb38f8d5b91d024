package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/requestcontext"
)

func (s *Service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category, err := models.NewCategory(id.CategoryID(uuid.New()), name, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}
	if err := s.catalog.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "category name already exists")
		}
		return nil, storeErr(err, "failed to create category")
	}
	return category, nil
}

func (s *Service) RenameCategory(ctx context.Context, categoryID id.CategoryID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return dErrors.New(dErrors.CodeValidation, "category name cannot be empty")
	}
	if err := s.catalog.RenameCategory(ctx, categoryID, name); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeConflict, "category name already exists")
		}
		return notFoundOr(err, "category not found", "failed to rename category")
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to list categories")
	}
	return categories, nil
}

// DeleteCategory removes an empty category. A category that still files items is
// refused without touching the store.
func (s *Service) DeleteCategory(ctx context.Context, categoryID id.CategoryID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.catalog.FindCategory(ctx, categoryID); err != nil {
			return notFoundOr(err, "category not found", "failed to load category")
		}
		count, err := s.catalog.CountItemsInCategory(ctx, categoryID)
		if err != nil {
			return storeErr(err, "failed to count items")
		}
		if count > 0 {
			return dErrors.New(dErrors.CodeConflict, "in use")
		}
		if err := s.catalog.DeleteCategory(ctx, categoryID); err != nil {
			if errors.Is(err, sentinel.ErrInUse) {
				return dErrors.New(dErrors.CodeConflict, "in use")
			}
			return notFoundOr(err, "category not found", "failed to delete category")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.deleted(ctx, audit.EventCategoryDeleted, categoryID.String())
	return nil
}

func (s *Service) CreateItem(ctx context.Context, categoryID id.CategoryID, name string) (*models.Item, error) {
	item, err := models.NewItem(id.ServiceItemID(uuid.New()), categoryID, name, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}
	if err := s.catalog.CreateItem(ctx, item); err != nil {
		return nil, notFoundOr(err, "category not found", "failed to create item")
	}
	return item, nil
}

func (s *Service) RenameItem(ctx context.Context, itemID id.ServiceItemID, name string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "item name cannot be empty")
	}
	return s.updateItem(ctx, itemID, func(it *models.Item) {
		it.Name = name
	})
}

// ToggleItem flips whether an item can be offered.
func (s *Service) ToggleItem(ctx context.Context, itemID id.ServiceItemID) (*models.Item, error) {
	return s.updateItem(ctx, itemID, func(it *models.Item) {
		it.IsActive = !it.IsActive
	})
}

func (s *Service) updateItem(ctx context.Context, itemID id.ServiceItemID, mutate func(*models.Item)) (*models.Item, error) {
	var item *models.Item
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.catalog.FindItem(ctx, itemID)
		if err != nil {
			return notFoundOr(err, "item not found", "failed to load item")
		}
		mutate(found)
		if err := s.catalog.UpdateItem(ctx, found); err != nil {
			return notFoundOr(err, "item not found", "failed to update item")
		}
		item = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context, activeOnly bool) ([]*models.Item, error) {
	items, err := s.catalog.ListItems(ctx, activeOnly)
	if err != nil {
		return nil, storeErr(err, "failed to list items")
	}
	return items, nil
}

// DeleteItem removes an item no center offers and no transaction references.
func (s *Service) DeleteItem(ctx context.Context, itemID id.ServiceItemID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.catalog.FindItem(ctx, itemID); err != nil {
			return notFoundOr(err, "item not found", "failed to load item")
		}
		offered, err := s.associations.CountByItem(ctx, itemID)
		if err != nil {
			return storeErr(err, "failed to count center services")
		}
		recorded, err := s.transactions.CountByItem(ctx, itemID)
		if err != nil {
			return storeErr(err, "failed to count transactions")
		}
		if offered > 0 || recorded > 0 {
			return dErrors.New(dErrors.CodeConflict, "in use")
		}
		if err := s.catalog.DeleteItem(ctx, itemID); err != nil {
			if errors.Is(err, sentinel.ErrInUse) {
				return dErrors.New(dErrors.CodeConflict, "in use")
			}
			return notFoundOr(err, "item not found", "failed to delete item")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.deleted(ctx, audit.EventItemDeleted, itemID.String())
	return nil
}

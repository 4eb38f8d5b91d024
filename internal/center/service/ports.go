package service

import (
	"context"
	"time"

	"lscmis/internal/center/models"
	identity "lscmis/internal/identity/models"
	"lscmis/internal/identity/token"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/audit"
)

type CenterStore interface {
	Create(ctx context.Context, c *models.Center) error
	FindByID(ctx context.Context, centerID id.CenterID) (*models.Center, error)
	FindByCode(ctx context.Context, code string) (*models.Center, error)
	ExistsCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Center, error)
	Update(ctx context.Context, c *models.Center) error
	Execute(ctx context.Context, centerID id.CenterID, validate func(*models.Center) error, mutate func(*models.Center)) (*models.Center, error)
	ConsumeCode(ctx context.Context, centerID id.CenterID, code string, now time.Time) error
	Delete(ctx context.Context, centerID id.CenterID) error
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	FindByUserID(ctx context.Context, userID id.UserID) (*models.Profile, error)
	Delete(ctx context.Context, userID id.UserID) error
	ListByRoles(ctx context.Context, roles ...models.Role) ([]*models.Profile, error)
}

type AssociationStore interface {
	InsertMany(ctx context.Context, rows []models.Association) error
	DeleteByCenter(ctx context.Context, centerID id.CenterID) error
	ListByCenter(ctx context.Context, centerID id.CenterID) ([]models.Association, error)
	CountByItem(ctx context.Context, itemID id.ServiceItemID) (int, error)
	IsOffered(ctx context.Context, centerID id.CenterID, itemID id.ServiceItemID) (bool, error)
}

type CatalogStore interface {
	CreateCategory(ctx context.Context, c *models.Category) error
	RenameCategory(ctx context.Context, categoryID id.CategoryID, name string) error
	FindCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.CategorySummary, error)
	CountItemsInCategory(ctx context.Context, categoryID id.CategoryID) (int, error)
	DeleteCategory(ctx context.Context, categoryID id.CategoryID) error

	CreateItem(ctx context.Context, it *models.Item) error
	UpdateItem(ctx context.Context, it *models.Item) error
	FindItem(ctx context.Context, itemID id.ServiceItemID) (*models.Item, error)
	ListItems(ctx context.Context, activeOnly bool) ([]*models.Item, error)
	ListItemsByIDs(ctx context.Context, itemIDs []id.ServiceItemID) ([]*models.Item, error)
	DeleteItem(ctx context.Context, itemID id.ServiceItemID) error
}

type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	ListByCenter(ctx context.Context, centerID id.CenterID, filter models.TransactionFilter) ([]*models.Transaction, error)
	Delete(ctx context.Context, centerID id.CenterID, txID id.TransactionID) error
	CountByItem(ctx context.Context, itemID id.ServiceItemID) (int, error)
}

type HierarchyStore interface {
	ListDistricts(ctx context.Context) ([]models.District, error)
	ListBlocks(ctx context.Context, districtID id.DistrictID) ([]models.Block, error)
	FindDistrict(ctx context.Context, districtID id.DistrictID) (*models.District, error)
	FindBlock(ctx context.Context, blockID id.BlockID) (*models.Block, error)
}

// IdentityProvider owns credentials. Its errors are already coded.
type IdentityProvider interface {
	CreateCredential(ctx context.Context, email, password string) (id.UserID, error)
	DeleteCredential(ctx context.Context, userID id.UserID) error
	ListUsers(ctx context.Context) ([]identity.User, error)
	Authenticate(ctx context.Context, email, password string) (id.UserID, error)
}

type TokenIssuer interface {
	Issue(subject token.Subject, now time.Time) (string, time.Time, error)
}

// CodeGenerator draws application codes, retrying while claim reports a collision.
type CodeGenerator interface {
	Generate(ctx context.Context, offset int, claim func(ctx context.Context, code string) error) (string, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

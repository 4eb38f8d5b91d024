package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/audit"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    id.UserID `json:"user_id"`
	Role      string    `json:"role"`
	CenterID  string    `json:"center_id,omitempty"`
}

type ProvisionResponse struct {
	Success  bool        `json:"success"`
	CenterID id.CenterID `json:"center_id"`
	UserID   id.UserID   `json:"user_id"`
}

type SubmitApplicationResponse struct {
	Success         bool        `json:"success"`
	CenterID        id.CenterID `json:"center_id"`
	ApplicationCode string      `json:"application_code"`
}

// ApplicationStatusResponse is the public view of an application. It leaves out
// banking and contact details.
type ApplicationStatusResponse struct {
	Success  bool        `json:"success"`
	CenterID id.CenterID `json:"center_id"`
	Name     string      `json:"name"`
	Status   string      `json:"status"`
	IsActive bool        `json:"is_active"`
}

type Center struct {
	ID              id.CenterID  `json:"id"`
	Fields          CenterFields `json:"center"`
	Status          string       `json:"status"`
	IsActive        bool         `json:"is_active"`
	ApplicationCode string       `json:"application_code,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type CenterResponse struct {
	Success        bool     `json:"success"`
	Center         Center   `json:"data"`
	ServiceItemIDs []string `json:"service_item_ids,omitempty"`
}

type CenterListResponse struct {
	Success bool     `json:"success"`
	Centers []Center `json:"data"`
}

type UserCreatedResponse struct {
	Success bool      `json:"success"`
	UserID  id.UserID `json:"user_id"`
}

type User struct {
	UserID     id.UserID `json:"user_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	DistrictID string    `json:"district_id,omitempty"`
	BlockID    string    `json:"block_id,omitempty"`
}

type UserListResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"data"`
}

type Category struct {
	ID        id.CategoryID `json:"id"`
	Name      string        `json:"name"`
	ItemCount int           `json:"item_count"`
	CreatedAt time.Time     `json:"created_at"`
}

type CategoryResponse struct {
	Success  bool     `json:"success"`
	Category Category `json:"data"`
}

type CategoryListResponse struct {
	Success    bool       `json:"success"`
	Categories []Category `json:"data"`
}

type Item struct {
	ID         id.ServiceItemID `json:"id"`
	CategoryID id.CategoryID    `json:"category_id"`
	Name       string           `json:"name"`
	IsActive   bool             `json:"is_active"`
}

type ItemResponse struct {
	Success bool `json:"success"`
	Item    Item `json:"data"`
}

type ItemListResponse struct {
	Success bool   `json:"success"`
	Items   []Item `json:"data"`
}

type Transaction struct {
	ID                 id.TransactionID `json:"id"`
	ServiceItemID      id.ServiceItemID `json:"service_item_id"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date,omitempty"`
	BeneficiaryName    string           `json:"beneficiary_name"`
	BeneficiaryAddress string           `json:"beneficiary_address,omitempty"`
	BeneficiaryPhone   string           `json:"beneficiary_phone,omitempty"`
	AmountCollected    decimal.Decimal  `json:"amount_collected"`
	CreatedAt          time.Time        `json:"created_at"`
}

type TransactionResponse struct {
	Success     bool        `json:"success"`
	Transaction Transaction `json:"data"`
}

type TransactionListResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"data"`
}

type District struct {
	ID   id.DistrictID `json:"id"`
	Name string        `json:"name"`
}

type Block struct {
	ID         id.BlockID    `json:"id"`
	DistrictID id.DistrictID `json:"district_id"`
	Name       string        `json:"name"`
}

type DistrictListResponse struct {
	Success   bool       `json:"success"`
	Districts []District `json:"data"`
}

type BlockListResponse struct {
	Success bool    `json:"success"`
	Blocks  []Block `json:"data"`
}

type AuditListResponse struct {
	Success bool          `json:"success"`
	Events  []audit.Event `json:"data"`
}

func toCenter(c *models.Center) Center {
	return Center{
		ID:              c.ID,
		Fields:          fromModelFields(c.Fields),
		Status:          string(c.Status),
		IsActive:        c.IsActive,
		ApplicationCode: c.ApplicationCode,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toCenters(centers []*models.Center) []Center {
	out := make([]Center, 0, len(centers))
	for _, c := range centers {
		out = append(out, toCenter(c))
	}
	return out
}

func toItem(it *models.Item) Item {
	return Item{ID: it.ID, CategoryID: it.CategoryID, Name: it.Name, IsActive: it.IsActive}
}

func toItems(items []*models.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, toItem(it))
	}
	return out
}

func toTransaction(t *models.Transaction) Transaction {
	out := Transaction{
		ID:                 t.ID,
		ServiceItemID:      t.ServiceItemID,
		StartDate:          formatDate(t.StartDate),
		BeneficiaryName:    t.BeneficiaryName,
		BeneficiaryAddress: t.BeneficiaryAddress,
		BeneficiaryPhone:   t.BeneficiaryPhone,
		AmountCollected:    t.AmountCollected,
		CreatedAt:          t.CreatedAt,
	}
	if t.EndDate != nil {
		out.EndDate = formatDate(*t.EndDate)
	}
	return out
}

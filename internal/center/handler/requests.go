package handler

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/collections"
)

const (
	dateLayout = "2006-01-02"

	maxServiceItems = 200
	maxTextLength   = 500
)

// CenterFields is the wire form of a center's editable fields.
type CenterFields struct {
	Name             string   `json:"name"`
	DistrictID       string   `json:"district_id,omitempty"`
	BlockID          string   `json:"block_id,omitempty"`
	EstablishedOn    string   `json:"established_on,omitempty"`
	Village          string   `json:"village,omitempty"`
	GramPanchayat    string   `json:"gram_panchayat,omitempty"`
	CLFCode          string   `json:"clf_code,omitempty"`
	CLFName          string   `json:"clf_name,omitempty"`
	CLFFormationDate string   `json:"clf_formation_date,omitempty"`
	OperatorName     string   `json:"operator_name,omitempty"`
	Address          string   `json:"address,omitempty"`
	StaffCount       int      `json:"staff_count,omitempty"`
	Contact          string   `json:"contact,omitempty"`
	BankName         string   `json:"bank_name,omitempty"`
	AccountNo        string   `json:"account_no,omitempty"`
	IFSC             string   `json:"ifsc,omitempty"`
	Branch           string   `json:"branch,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	HasBuilding      bool     `json:"has_building"`
	HasFurniture     bool     `json:"has_furniture"`
}

func (f *CenterFields) Normalize() {
	for _, p := range []*string{
		&f.Name, &f.DistrictID, &f.BlockID, &f.EstablishedOn, &f.Village, &f.GramPanchayat,
		&f.CLFCode, &f.CLFName, &f.CLFFormationDate, &f.OperatorName, &f.Address, &f.Contact,
		&f.BankName, &f.AccountNo, &f.IFSC, &f.Branch,
	} {
		*p = strings.TrimSpace(*p)
	}
	f.IFSC = strings.ToUpper(f.IFSC)
}

func (f *CenterFields) Validate() error {
	if len(f.Name) > maxTextLength || len(f.Address) > maxTextLength {
		return dErrors.New(dErrors.CodeValidation, "text field too long")
	}
	_, err := f.toModel()
	return err
}

func (f *CenterFields) toModel() (models.Fields, error) {
	districtID, err := optionalID(f.DistrictID, id.ParseDistrictID, "district_id")
	if err != nil {
		return models.Fields{}, err
	}
	blockID, err := optionalID(f.BlockID, id.ParseBlockID, "block_id")
	if err != nil {
		return models.Fields{}, err
	}
	established, err := optionalDate(f.EstablishedOn, "established_on")
	if err != nil {
		return models.Fields{}, err
	}
	formed, err := optionalDate(f.CLFFormationDate, "clf_formation_date")
	if err != nil {
		return models.Fields{}, err
	}
	return models.Fields{
		Name:       f.Name,
		DistrictID: districtID,
		BlockID:    blockID,
		Details: models.Details{
			EstablishedOn:    established,
			Village:          f.Village,
			GramPanchayat:    f.GramPanchayat,
			CLFCode:          f.CLFCode,
			CLFName:          f.CLFName,
			CLFFormationDate: formed,
			OperatorName:     f.OperatorName,
			Address:          f.Address,
			StaffCount:       f.StaffCount,
			Contact:          f.Contact,
		},
		Banking: models.Banking{
			BankName:  f.BankName,
			AccountNo: f.AccountNo,
			IFSC:      f.IFSC,
			Branch:    f.Branch,
		},
		Geo:        models.Geo{Latitude: f.Latitude, Longitude: f.Longitude},
		Facilities: models.Facilities{HasBuilding: f.HasBuilding, HasFurniture: f.HasFurniture},
	}, nil
}

func fromModelFields(m models.Fields) CenterFields {
	return CenterFields{
		Name:             m.Name,
		DistrictID:       nilToEmpty(m.DistrictID),
		BlockID:          nilToEmpty(m.BlockID),
		EstablishedOn:    formatDate(m.Details.EstablishedOn),
		Village:          m.Details.Village,
		GramPanchayat:    m.Details.GramPanchayat,
		CLFCode:          m.Details.CLFCode,
		CLFName:          m.Details.CLFName,
		CLFFormationDate: formatDate(m.Details.CLFFormationDate),
		OperatorName:     m.Details.OperatorName,
		Address:          m.Details.Address,
		StaffCount:       m.Details.StaffCount,
		Contact:          m.Details.Contact,
		BankName:         m.Banking.BankName,
		AccountNo:        m.Banking.AccountNo,
		IFSC:             m.Banking.IFSC,
		Branch:           m.Banking.Branch,
		Latitude:         m.Geo.Latitude,
		Longitude:        m.Geo.Longitude,
		HasBuilding:      m.Facilities.HasBuilding,
		HasFurniture:     m.Facilities.HasFurniture,
	}
}

type ProvisionCenterRequest struct {
	Email          string       `json:"email"`
	Password       string       `json:"password"`
	Center         CenterFields `json:"center"`
	ServiceItemIDs []string     `json:"service_item_ids"`
}

func (r *ProvisionCenterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Center.Normalize()
}

func (r *ProvisionCenterRequest) Validate() error {
	if err := r.Center.Validate(); err != nil {
		return err
	}
	_, err := parseItemIDs(r.ServiceItemIDs)
	return err
}

func (r *ProvisionCenterRequest) command() models.ProvisionCenterCommand {
	fields, _ := r.Center.toModel()
	itemIDs, _ := parseItemIDs(r.ServiceItemIDs)
	return models.ProvisionCenterCommand{
		Email:          r.Email,
		Password:       r.Password,
		Fields:         fields,
		ServiceItemIDs: itemIDs,
	}
}

type UpdateCenterRequest struct {
	Center         CenterFields `json:"center"`
	ServiceItemIDs []string     `json:"service_item_ids"`
}

func (r *UpdateCenterRequest) Normalize() {
	r.Center.Normalize()
}

func (r *UpdateCenterRequest) Validate() error {
	if err := r.Center.Validate(); err != nil {
		return err
	}
	_, err := parseItemIDs(r.ServiceItemIDs)
	return err
}

func (r *UpdateCenterRequest) command(centerID id.CenterID) models.UpdateCenterCommand {
	fields, _ := r.Center.toModel()
	itemIDs, _ := parseItemIDs(r.ServiceItemIDs)
	return models.UpdateCenterCommand{CenterID: centerID, Fields: fields, ServiceItemIDs: itemIDs}
}

type SubmitApplicationRequest struct {
	Center         CenterFields `json:"center"`
	ServiceItemIDs []string     `json:"service_item_ids"`
}

func (r *SubmitApplicationRequest) Normalize() {
	r.Center.Normalize()
}

func (r *SubmitApplicationRequest) Validate() error {
	if err := r.Center.Validate(); err != nil {
		return err
	}
	_, err := parseItemIDs(r.ServiceItemIDs)
	return err
}

func (r *SubmitApplicationRequest) command() models.SubmitApplicationCommand {
	fields, _ := r.Center.toModel()
	itemIDs, _ := parseItemIDs(r.ServiceItemIDs)
	return models.SubmitApplicationCommand{Fields: fields, ServiceItemIDs: itemIDs}
}

type ReviewApplicationRequest struct {
	Decision string `json:"decision"`
}

func (r *ReviewApplicationRequest) Normalize() {
	r.Decision = strings.ToUpper(strings.TrimSpace(r.Decision))
}

func (r *ReviewApplicationRequest) Validate() error {
	if !models.Status(r.Decision).IsDecision() {
		return dErrors.New(dErrors.CodeValidation, "decision must be APPROVED or REJECTED")
	}
	return nil
}

type IssueCredentialsRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	CenterID        string `json:"center_id"`
	ApplicationCode string `json:"application_code"`
}

func (r *IssueCredentialsRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.CenterID = strings.TrimSpace(r.CenterID)
	r.ApplicationCode = strings.TrimSpace(r.ApplicationCode)
}

func (r *IssueCredentialsRequest) Validate() error {
	if r.Email == "" || r.Password == "" || r.CenterID == "" || r.ApplicationCode == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required fields")
	}
	if _, err := id.ParseCenterID(r.CenterID); err != nil {
		return dErrors.New(dErrors.CodeValidation, "invalid center_id")
	}
	return nil
}

func (r *IssueCredentialsRequest) command() models.IssueCredentialsCommand {
	centerID, _ := id.ParseCenterID(r.CenterID)
	return models.IssueCredentialsCommand{
		Email:           r.Email,
		Password:        r.Password,
		CenterID:        centerID,
		ApplicationCode: r.ApplicationCode,
	}
}

type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	DistrictID string `json:"district_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
	r.DistrictID = strings.TrimSpace(r.DistrictID)
	r.BlockID = strings.TrimSpace(r.BlockID)
}

func (r *CreateUserRequest) Validate() error {
	if _, err := optionalID(r.DistrictID, id.ParseDistrictID, "district_id"); err != nil {
		return err
	}
	_, err := optionalID(r.BlockID, id.ParseBlockID, "block_id")
	return err
}

func (r *CreateUserRequest) command() models.CreateUserCommand {
	districtID, _ := optionalID(r.DistrictID, id.ParseDistrictID, "district_id")
	blockID, _ := optionalID(r.BlockID, id.ParseBlockID, "block_id")
	return models.CreateUserCommand{
		Email:      r.Email,
		Password:   r.Password,
		Role:       r.Role,
		DistrictID: districtID,
		BlockID:    blockID,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "email and password required")
	}
	return nil
}

type NameRequest struct {
	Name string `json:"name"`
}

func (r *NameRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *NameRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if len(r.Name) > maxTextLength {
		return dErrors.New(dErrors.CodeValidation, "name too long")
	}
	return nil
}

type CreateItemRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

func (r *CreateItemRequest) Normalize() {
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateItemRequest) Validate() error {
	if r.Name == "" || r.CategoryID == "" {
		return dErrors.New(dErrors.CodeValidation, "name and category_id are required")
	}
	if _, err := id.ParseCategoryID(r.CategoryID); err != nil {
		return dErrors.New(dErrors.CodeValidation, "invalid category_id")
	}
	return nil
}

type RecordTransactionRequest struct {
	ServiceItemID      string          `json:"service_item_id"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date,omitempty"`
	BeneficiaryName    string          `json:"beneficiary_name"`
	BeneficiaryAddress string          `json:"beneficiary_address,omitempty"`
	BeneficiaryPhone   string          `json:"beneficiary_phone,omitempty"`
	AmountCollected    decimal.Decimal `json:"amount_collected"`
}

func (r *RecordTransactionRequest) Normalize() {
	r.ServiceItemID = strings.TrimSpace(r.ServiceItemID)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.BeneficiaryName = strings.TrimSpace(r.BeneficiaryName)
	r.BeneficiaryAddress = strings.TrimSpace(r.BeneficiaryAddress)
	r.BeneficiaryPhone = strings.TrimSpace(r.BeneficiaryPhone)
}

func (r *RecordTransactionRequest) Validate() error {
	if r.ServiceItemID == "" || r.StartDate == "" || r.BeneficiaryName == "" {
		return dErrors.New(dErrors.CodeValidation, "service_item_id, start_date and beneficiary_name are required")
	}
	_, err := r.fields()
	return err
}

func (r *RecordTransactionRequest) fields() (models.TransactionFields, error) {
	itemID, err := id.ParseServiceItemID(r.ServiceItemID)
	if err != nil {
		return models.TransactionFields{}, dErrors.New(dErrors.CodeValidation, "invalid service_item_id")
	}
	start, err := optionalDate(r.StartDate, "start_date")
	if err != nil {
		return models.TransactionFields{}, err
	}
	var end *time.Time
	if r.EndDate != "" {
		parsed, err := optionalDate(r.EndDate, "end_date")
		if err != nil {
			return models.TransactionFields{}, err
		}
		end = &parsed
	}
	return models.TransactionFields{
		ServiceItemID:      itemID,
		StartDate:          start,
		EndDate:            end,
		BeneficiaryName:    r.BeneficiaryName,
		BeneficiaryAddress: r.BeneficiaryAddress,
		BeneficiaryPhone:   r.BeneficiaryPhone,
		AmountCollected:    r.AmountCollected,
	}, nil
}

func parseItemIDs(raw []string) ([]id.ServiceItemID, error) {
	if len(raw) > maxServiceItems {
		return nil, dErrors.New(dErrors.CodeValidation, "too many service items")
	}
	out := make([]id.ServiceItemID, 0, len(raw))
	for _, s := range collections.Dedupe(raw) {
		itemID, err := id.ParseServiceItemID(strings.TrimSpace(s))
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid service item id")
		}
		out = append(out, itemID)
	}
	return out, nil
}

func optionalID[T any](raw string, parse func(string) (T, error), field string) (T, error) {
	var zero T
	if raw == "" {
		return zero, nil
	}
	parsed, err := parse(raw)
	if err != nil {
		return zero, dErrors.New(dErrors.CodeValidation, "invalid "+field)
	}
	return parsed, nil
}

func optionalDate(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "invalid "+field+", expected YYYY-MM-DD")
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func nilToEmpty[T interface {
	IsNil() bool
	String() string
}](v T) string {
	if v.IsNil() {
		return ""
	}
	return v.String()
}

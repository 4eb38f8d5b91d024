package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "lscmis/pkg/domain-errors"
)

// Typed identifiers keep a center id from being passed where a user id is expected.
type (
	UserID        uuid.UUID
	CenterID      uuid.UUID
	DistrictID    uuid.UUID
	BlockID       uuid.UUID
	CategoryID    uuid.UUID
	ServiceItemID uuid.UUID
	TransactionID uuid.UUID
)

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id CenterID) String() string      { return uuid.UUID(id).String() }
func (id DistrictID) String() string    { return uuid.UUID(id).String() }
func (id BlockID) String() string       { return uuid.UUID(id).String() }
func (id CategoryID) String() string    { return uuid.UUID(id).String() }
func (id ServiceItemID) String() string { return uuid.UUID(id).String() }
func (id TransactionID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id CenterID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id DistrictID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id BlockID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id CategoryID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ServiceItemID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id TransactionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id UserID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }
func (id CenterID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id DistrictID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id BlockID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id CategoryID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id ServiceItemID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id TransactionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error        { return unmarshalID((*uuid.UUID)(id), b) }
func (id *CenterID) UnmarshalText(b []byte) error      { return unmarshalID((*uuid.UUID)(id), b) }
func (id *DistrictID) UnmarshalText(b []byte) error    { return unmarshalID((*uuid.UUID)(id), b) }
func (id *BlockID) UnmarshalText(b []byte) error       { return unmarshalID((*uuid.UUID)(id), b) }
func (id *CategoryID) UnmarshalText(b []byte) error    { return unmarshalID((*uuid.UUID)(id), b) }
func (id *ServiceItemID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(id), b) }
func (id *TransactionID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(id), b) }

// ParseUserID parses a user id at a trust boundary.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user_id")
	return UserID(u), err
}

func ParseCenterID(s string) (CenterID, error) {
	u, err := parseUUID(s, "center_id")
	return CenterID(u), err
}

func ParseDistrictID(s string) (DistrictID, error) {
	u, err := parseUUID(s, "district_id")
	return DistrictID(u), err
}

func ParseBlockID(s string) (BlockID, error) {
	u, err := parseUUID(s, "block_id")
	return BlockID(u), err
}

func ParseCategoryID(s string) (CategoryID, error) {
	u, err := parseUUID(s, "category_id")
	return CategoryID(u), err
}

func ParseServiceItemID(s string) (ServiceItemID, error) {
	u, err := parseUUID(s, "service_item_id")
	return ServiceItemID(u), err
}

func ParseTransactionID(s string) (TransactionID, error) {
	u, err := parseUUID(s, "transaction_id")
	return TransactionID(u), err
}

// parseUUID rejects empty, malformed and nil UUIDs.
func parseUUID(s, field string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be nil")
	}
	return u, nil
}

func unmarshalID(dst *uuid.UUID, b []byte) error {
	if len(b) == 0 {
		*dst = uuid.Nil
		return nil
	}
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid identifier")
	}
	*dst = u
	return nil
}

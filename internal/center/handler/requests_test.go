package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lscmis/pkg/domain-errors"
)

func TestCenterFieldsNormalize(t *testing.T) {
	f := CenterFields{Name: "  Kendra  ", IFSC: " sbin0001234 ", Contact: " 98765 "}
	f.Normalize()

	assert.Equal(t, "Kendra", f.Name)
	assert.Equal(t, "SBIN0001234", f.IFSC)
	assert.Equal(t, "98765", f.Contact)
}

func TestCenterFieldsValidate(t *testing.T) {
	t.Run("bad district id", func(t *testing.T) {
		f := CenterFields{Name: "Kendra", DistrictID: "district-1"}
		err := f.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("bad established date", func(t *testing.T) {
		f := CenterFields{Name: "Kendra", EstablishedOn: "02/03/2024"}
		require.Error(t, f.Validate())
	})

	t.Run("dates round trip through the model", func(t *testing.T) {
		f := CenterFields{Name: "Kendra", EstablishedOn: "2024-03-02"}
		require.NoError(t, f.Validate())
		m, err := f.toModel()
		require.NoError(t, err)
		assert.Equal(t, "2024-03-02", fromModelFields(m).EstablishedOn)
	})
}

func TestParseItemIDs(t *testing.T) {
	const itemID = "6f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b"

	ids, err := parseItemIDs([]string{itemID, itemID})
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	_, err = parseItemIDs([]string{"nope"})
	require.Error(t, err)

	_, err = parseItemIDs(make([]string, maxServiceItems+1))
	require.Error(t, err)
}

func TestRecordTransactionRequest(t *testing.T) {
	req := RecordTransactionRequest{
		ServiceItemID:   "6f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b",
		StartDate:       " 2026-01-05 ",
		EndDate:         "2026-01-06",
		BeneficiaryName: " Asha ",
	}
	req.Normalize()
	require.NoError(t, req.Validate())

	fields, err := req.fields()
	require.NoError(t, err)
	assert.Equal(t, "Asha", fields.BeneficiaryName)
	require.NotNil(t, fields.EndDate)
	assert.Equal(t, "2026-01-06", formatDate(*fields.EndDate))

	req.StartDate = ""
	assert.Error(t, req.Validate())
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, defaultAuditLimit, parseLimit(""))
	assert.Equal(t, defaultAuditLimit, parseLimit("-3"))
	assert.Equal(t, 20, parseLimit("20"))
	assert.Equal(t, maxAuditLimit, parseLimit("100000"))
}

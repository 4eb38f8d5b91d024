package collections

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		input    []uuid.UUID
		expected []uuid.UUID
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []uuid.UUID{}, expected: []uuid.UUID{}},
		{name: "single element", input: []uuid.UUID{a}, expected: []uuid.UUID{a}},
		{name: "removes duplicates preserving order", input: []uuid.UUID{b, a, b, a}, expected: []uuid.UUID{b, a}},
		{name: "drops zero values", input: []uuid.UUID{uuid.Nil, a, uuid.Nil}, expected: []uuid.UUID{a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dedupe(tt.input))
		})
	}
}

func TestDedupe_Strings(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, Dedupe([]string{"foo", "", "bar", "foo"}))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "op@center.example", NormalizeEmail("  Op@Center.EXAMPLE "))
}

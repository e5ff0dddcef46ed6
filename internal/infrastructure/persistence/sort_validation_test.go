package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"asc", "ASC"},
		{"ASC", "ASC"},
		{" asc ", "ASC"},
		{"desc", "DESC"},
		{"DESC", "DESC"},
		{"", "DESC"},
		{"sideways", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	t.Run("allows whitelisted field", func(t *testing.T) {
		got := ValidateSortField("imo_number", VesselSortFields, "created_at")
		assert.Equal(t, "imo_number", got)
	})

	t.Run("falls back for unknown field", func(t *testing.T) {
		got := ValidateSortField("password_hash", UserSortFields, "created_at")
		assert.Equal(t, "created_at", got)
	})

	t.Run("falls back for injection attempt", func(t *testing.T) {
		got := ValidateSortField("name; DROP TABLE users", UserSortFields, "created_at")
		assert.Equal(t, "created_at", got)
	})

	t.Run("falls back for empty input", func(t *testing.T) {
		got := ValidateSortField("", ReportSortFields, "inspection_date")
		assert.Equal(t, "inspection_date", got)
	})
}

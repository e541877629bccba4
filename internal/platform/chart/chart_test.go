package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	def, err := c.Lookup(domain.RentalRevenue)
	require.NoError(t, err)
	assert.Equal(t, "600", def.Code)
	assert.Equal(t, "Rental Revenue", def.Name)
}

func TestLoad_AppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
accounts:
  - type: RENTAL_REVENUE
    name: Kiralama Gelirleri
  - type: CASH_ASSET
    code: "1000"
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	revenue := c.MustLookup(domain.RentalRevenue)
	assert.Equal(t, "600", revenue.Code)
	assert.Equal(t, "Kiralama Gelirleri", revenue.Name)
	assert.Equal(t, domain.CategoryRevenue, revenue.Category)

	cash := c.MustLookup(domain.CashAsset)
	assert.Equal(t, "1000", cash.Code)
	assert.Equal(t, "Cash", cash.Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{name: "malformed", yaml: "accounts: [", want: apperrors.ErrValidation},
		{name: "unknown type", yaml: "accounts:\n  - type: GOODWILL\n    code: '999'\n", want: apperrors.ErrUnknownAccountType},
		{name: "duplicate override", yaml: "accounts:\n  - type: CAPITAL\n  - type: CAPITAL\n", want: apperrors.ErrValidation},
		{name: "code collision", yaml: "accounts:\n  - type: BANK_ASSET\n    code: '100'\n", want: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

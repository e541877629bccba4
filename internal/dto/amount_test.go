package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalsTwoDecimals(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"whole", decimal.NewFromInt(1000), `"1000.00"`},
		{"one decimal", decimal.RequireFromString("12.5"), `"12.50"`},
		{"zero value", decimal.Decimal{}, `"0.00"`},
		{"negative", decimal.RequireFromString("-3.1"), `"-3.10"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(NewAmount(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(raw))
		})
	}
}

func TestAmount_RoundTripsThroughResponse(t *testing.T) {
	raw, err := json.Marshal(AccountBalanceResponse{AccountType: "CASH_ASSET", Balance: NewAmount(decimal.NewFromInt(300))})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"balance":"300.00"`)

	var decoded AccountBalanceResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Balance.Equal(decimal.NewFromInt(300)))
}

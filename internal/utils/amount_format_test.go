package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.345", "12.35"},
		{"12.344", "12.34"},
		{"0.004", "0"},
		{"-5.005", "-5.01"},
		{"100", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundAmount(decimal.RequireFromString(tt.in))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12.00", FormatAmount(decimal.NewFromInt(12)))
	assert.Equal(t, "0.10", FormatAmount(decimal.RequireFromString("0.1")))
}

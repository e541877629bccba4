package utils

import "github.com/shopspring/decimal"

// AmountPrecision is the number of decimal places every ledger amount carries.
const AmountPrecision = 2

// RoundAmount rounds half away from zero to ledger precision.
// Example: 12.345 returns 12.35
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPrecision)
}

// FormatAmount formats an amount with exactly two decimals.
// Example: 12 returns "12.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountPrecision)
}

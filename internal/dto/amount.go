package dto

import (
	"encoding/json"

	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// Amount is a ledger amount that always serializes with two decimals, e.g. "1000.00".
// Decoding accepts anything decimal.Decimal accepts.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d for a response body.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(utils.FormatAmount(a.Decimal))
}

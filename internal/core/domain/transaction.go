package domain

// TransactionType classifies the business nature of a journal entry.
type TransactionType string

const (
	TransactionRevenue   TransactionType = "REVENUE"
	TransactionExpense   TransactionType = "EXPENSE"
	TransactionAsset     TransactionType = "ASSET"
	TransactionLiability TransactionType = "LIABILITY"
	TransactionEquity    TransactionType = "EQUITY"
	TransactionTransfer  TransactionType = "TRANSFER"
)

// TransactionTypes lists every transaction type.
var TransactionTypes = []TransactionType{
	TransactionRevenue,
	TransactionExpense,
	TransactionAsset,
	TransactionLiability,
	TransactionEquity,
	TransactionTransfer,
}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

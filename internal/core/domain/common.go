package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryFilter narrows ledger queries. Zero values mean "no restriction".
// From and To are inclusive bounds on the transaction date.
type EntryFilter struct {
	From             *time.Time
	To               *time.Time
	TransactionTypes []TransactionType
	AccountTypes     []AccountType
	Reconciled       *bool
	ReferenceType    *string
	ReferenceID      *string
}

// Matches reports whether e satisfies every restriction of the filter.
func (f EntryFilter) Matches(e LedgerEntry) bool {
	if f.From != nil && e.TransactionDate.Before(*f.From) {
		return false
	}
	if f.To != nil && e.TransactionDate.After(*f.To) {
		return false
	}
	if len(f.TransactionTypes) > 0 && !containsTransactionType(f.TransactionTypes, e.TransactionType) {
		return false
	}
	if len(f.AccountTypes) > 0 && !containsAccountType(f.AccountTypes, e.AccountType) {
		return false
	}
	if f.Reconciled != nil && e.Reconciled != *f.Reconciled {
		return false
	}
	if f.ReferenceType != nil && !stringPtrEquals(e.ReferenceType, *f.ReferenceType) {
		return false
	}
	if f.ReferenceID != nil && !stringPtrEquals(e.ReferenceID, *f.ReferenceID) {
		return false
	}
	return true
}

func stringPtrEquals(p *string, want string) bool {
	return p != nil && *p == want
}

func containsTransactionType(types []TransactionType, t TransactionType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func containsAccountType(types []AccountType, t AccountType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

// AccountTotals holds debit and credit sums for one
// (transaction type, account type) group.
type AccountTotals struct {
	TransactionType TransactionType
	AccountType     AccountType
	AccountCode     string
	AccountName     string
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference types stamped on entries created by the business event recorders.
const (
	ReferencePayment = "PAYMENT"
	ReferenceInvoice = "INVOICE"
)

// LedgerEntry is one row of the general ledger. A row is either a pure debit
// or a pure credit; the other amount is zero.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	TransactionType TransactionType `json:"transactionType"`
	AccountType     AccountType     `json:"accountType"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	ReferenceID     *string         `json:"referenceID,omitempty"`
	ReferenceType   *string         `json:"referenceType,omitempty"`
	DocumentNumber  string          `json:"documentNumber"`
	Reconciled      bool            `json:"reconciled"`
	ReconciledAt    *time.Time      `json:"reconciledAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// IsDebit reports whether the row records a debit.
func (e LedgerEntry) IsDebit() bool {
	return e.DebitAmount.IsPositive()
}

// Amount returns the non-zero side of the row.
func (e LedgerEntry) Amount() decimal.Decimal {
	if e.IsDebit() {
		return e.DebitAmount
	}
	return e.CreditAmount
}

// HasSingleSide reports whether exactly one of the two amounts is non-zero
// and neither is negative.
func (e LedgerEntry) HasSingleSide() bool {
	if e.DebitAmount.IsNegative() || e.CreditAmount.IsNegative() {
		return false
	}
	return e.DebitAmount.IsZero() != e.CreditAmount.IsZero()
}

// JournalEntry is the balanced pair of rows written for one posting.
type JournalEntry struct {
	DocumentNumber string      `json:"documentNumber"`
	Debit          LedgerEntry `json:"debit"`
	Credit         LedgerEntry `json:"credit"`
}

// IsBalanced reports whether both sides carry the same amount under the same
// document number.
func (j JournalEntry) IsBalanced() bool {
	return j.Debit.DocumentNumber == j.DocumentNumber &&
		j.Credit.DocumentNumber == j.DocumentNumber &&
		j.Debit.HasSingleSide() && j.Credit.HasSingleSide() &&
		j.Debit.DebitAmount.Equal(j.Credit.CreditAmount)
}

// NewJournalEntryFromRows reassembles a journal entry from the rows sharing a
// document number. ok is false unless exactly one debit and one credit row
// are present.
func NewJournalEntryFromRows(rows []LedgerEntry) (entry JournalEntry, ok bool) {
	if len(rows) != 2 {
		return JournalEntry{}, false
	}
	debit, credit := rows[0], rows[1]
	if !debit.IsDebit() {
		debit, credit = credit, debit
	}
	if !debit.IsDebit() || credit.IsDebit() {
		return JournalEntry{}, false
	}
	return JournalEntry{DocumentNumber: debit.DocumentNumber, Debit: debit, Credit: credit}, true
}

// PostingRequest carries everything the posting engine needs to write one
// journal entry. A nil TransactionDate means "now".
type PostingRequest struct {
	TransactionType TransactionType
	DebitAccount    AccountType
	CreditAccount   AccountType
	Amount          decimal.Decimal
	Description     string
	ReferenceID     *string
	ReferenceType   *string
	TransactionDate *time.Time
}

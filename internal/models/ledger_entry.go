package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of the general_ledger table.
type LedgerEntry struct {
	ID              string          `db:"id"`
	TransactionType string          `db:"transaction_type"`
	AccountType     string          `db:"account_type"`
	AccountCode     string          `db:"account_code"`
	AccountName     string          `db:"account_name"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	DebitAmount     decimal.Decimal `db:"debit_amount"`
	CreditAmount    decimal.Decimal `db:"credit_amount"`
	ReferenceID     sql.NullString  `db:"reference_id"`
	ReferenceType   sql.NullString  `db:"reference_type"`
	DocumentNumber  string          `db:"document_number"`
	Reconciled      bool            `db:"reconciled"`
	ReconciledAt    sql.NullTime    `db:"reconciled_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

// ScanTargets returns pointers to every column in LedgerEntryColumns order.
func (m *LedgerEntry) ScanTargets() []any {
	return []any{
		&m.ID,
		&m.TransactionType,
		&m.AccountType,
		&m.AccountCode,
		&m.AccountName,
		&m.TransactionDate,
		&m.Description,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.ReferenceID,
		&m.ReferenceType,
		&m.DocumentNumber,
		&m.Reconciled,
		&m.ReconciledAt,
		&m.CreatedAt,
	}
}

// InsertArgs returns the column values in LedgerEntryColumns order.
func (m *LedgerEntry) InsertArgs() []any {
	return []any{
		m.ID,
		m.TransactionType,
		m.AccountType,
		m.AccountCode,
		m.AccountName,
		m.TransactionDate,
		m.Description,
		m.DebitAmount,
		m.CreditAmount,
		m.ReferenceID,
		m.ReferenceType,
		m.DocumentNumber,
		m.Reconciled,
		m.ReconciledAt,
		m.CreatedAt,
	}
}

// LedgerEntryColumns lists the general_ledger columns in scan order.
const LedgerEntryColumns = `id, transaction_type, account_type, account_code, account_name,
	transaction_date, description, debit_amount, credit_amount, reference_id, reference_type,
	document_number, reconciled, reconciled_at, created_at`

package mapping

import (
	"database/sql"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		ID:              d.EntryID,
		TransactionType: string(d.TransactionType),
		AccountType:     string(d.AccountType),
		AccountCode:     d.AccountCode,
		AccountName:     d.AccountName,
		TransactionDate: d.TransactionDate,
		Description:     d.Description,
		DebitAmount:     d.DebitAmount,
		CreditAmount:    d.CreditAmount,
		ReferenceID:     toNullString(d.ReferenceID),
		ReferenceType:   toNullString(d.ReferenceType),
		DocumentNumber:  d.DocumentNumber,
		Reconciled:      d.Reconciled,
		CreatedAt:       d.CreatedAt,
	}
	if d.ReconciledAt != nil {
		m.ReconciledAt = sql.NullTime{Time: *d.ReconciledAt, Valid: true}
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:         m.ID,
		TransactionType: domain.TransactionType(m.TransactionType),
		AccountType:     domain.AccountType(m.AccountType),
		AccountCode:     m.AccountCode,
		AccountName:     m.AccountName,
		TransactionDate: m.TransactionDate.UTC(),
		Description:     m.Description,
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		ReferenceID:     fromNullString(m.ReferenceID),
		ReferenceType:   fromNullString(m.ReferenceType),
		DocumentNumber:  m.DocumentNumber,
		Reconciled:      m.Reconciled,
		CreatedAt:       m.CreatedAt.UTC(),
	}
	if m.ReconciledAt.Valid {
		at := m.ReconciledAt.Time.UTC()
		d.ReconciledAt = &at
	}
	return d
}

// ToDomainLedgerEntries converts a slice of models. Never returns nil.
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainLedgerEntry(m)
	}
	return entries
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

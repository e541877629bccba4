package services

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// PostingSvc is the only writer allowed to create ledger rows.
type PostingSvc interface {
	// Post validates the request and writes one balanced debit/credit pair.
	Post(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error)
}

// BusinessEventRecorderSvc translates business events into postings.
type BusinessEventRecorderSvc interface {
	RecordPaymentReceived(ctx context.Context, payment domain.Payment) (*domain.JournalEntry, error)
	RecordInvoiceIssued(ctx context.Context, invoice domain.Invoice) (*domain.JournalEntry, error)
	RecordExpense(ctx context.Context, amount decimal.Decimal, description string, expenseAccount domain.AccountType) (*domain.JournalEntry, error)
	RecordRevenue(ctx context.Context, amount decimal.Decimal, description string, revenueAccount domain.AccountType) (*domain.JournalEntry, error)
}

// LedgerEntryReaderSvc defines read operations for ledger rows
type LedgerEntryReaderSvc interface {
	// GetEntryByID retrieves a specific ledger row.
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a page of ledger rows.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// GetJournalEntry reassembles both rows of one posting.
	GetJournalEntry(ctx context.Context, documentNumber string) (*domain.JournalEntry, error)

	// AccountTransactions lists the rows of one account between start and end.
	AccountTransactions(ctx context.Context, accountType domain.AccountType, start, end time.Time) ([]domain.LedgerEntry, error)

	// FindEntriesByReference lists the rows posted for one business reference.
	FindEntriesByReference(ctx context.Context, referenceType, referenceID string) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriterSvc defines administrative write operations for ledger rows
type LedgerEntryWriterSvc interface {
	// DeleteEntry removes a single row.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerEntrySvcFacade combines all ledger entry service interfaces
type LedgerEntrySvcFacade interface {
	LedgerEntryReaderSvc
	LedgerEntryWriterSvc
}

// ReconciliationSvc tracks which ledger rows were verified externally.
type ReconciliationSvc interface {
	ListUnreconciled(ctx context.Context) ([]domain.LedgerEntry, error)
	MarkReconciled(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
}

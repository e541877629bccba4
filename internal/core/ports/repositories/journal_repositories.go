package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// LedgerReader defines read operations for ledger rows
type LedgerReader interface {
	// FindEntryByID retrieves one ledger row. Returns apperrors.ErrNotFound if absent.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// FindEntriesByDocumentNumber retrieves every row posted under a document number.
	FindEntriesByDocumentNumber(ctx context.Context, documentNumber string) ([]domain.LedgerEntry, error)

	// ListEntries retrieves a page of rows matching the filter, ordered by transaction date then id,
	// using token-based pagination. It returns the rows, a token for the next page, and an error.
	ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// FindEntries retrieves every row matching the filter, ordered by transaction date then id.
	FindEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error)

	// ListUnreconciled retrieves every unreconciled row, oldest transaction date first.
	ListUnreconciled(ctx context.Context) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for ledger rows
type LedgerWriter interface {
	// SaveJournalEntry persists the debit and credit rows of one journal entry atomically.
	SaveJournalEntry(ctx context.Context, debit, credit domain.LedgerEntry) error

	// MarkReconciled flags a row as reconciled at the given time and returns the updated row.
	MarkReconciled(ctx context.Context, entryID string, at time.Time) (*domain.LedgerEntry, error)

	// DeleteEntry removes one row. Administrative use only.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	LedgerAggregator
}

// DocumentNumberGenerator hands out ledger-wide unique document numbers.
// Implementations must be safe for concurrent use.
type DocumentNumberGenerator interface {
	NextDocumentNumber(ctx context.Context) (string, error)
}

// EventPublisher announces committed journal entries to other systems.
type EventPublisher interface {
	PublishJournalPosted(ctx context.Context, entry domain.JournalEntry) error
}

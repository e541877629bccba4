package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// LedgerAggregator defines the aggregate queries the reporting engine runs
type LedgerAggregator interface {
	// SumByAccount returns debit and credit sums grouped by (transaction type, account type)
	// for rows matching the filter. Never returns a nil slice on success.
	SumByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.AccountTotals, error)
}

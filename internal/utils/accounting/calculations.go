package accounting

import (
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetForCategory returns the balance of an account in its natural direction.
// ASSET and EXPENSE accounts carry debit balances (debit - credit);
// LIABILITY, EQUITY and REVENUE accounts carry credit balances (credit - debit).
func NetForCategory(category domain.AccountCategory, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch category {
	case domain.CategoryAsset, domain.CategoryExpense:
		return debit.Sub(credit), nil
	case domain.CategoryLiability, domain.CategoryEquity, domain.CategoryRevenue:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account category '%s'", category)
	}
}

// ValidateJournalBalance checks that the rows of one document form a balanced
// debit/credit pair.
func ValidateJournalBalance(rows []domain.LedgerEntry) error {
	if len(rows) != 2 {
		return fmt.Errorf("journal entry must have exactly two rows, got %d", len(rows))
	}

	debits, credits := decimal.Zero, decimal.Zero
	for _, row := range rows {
		if !row.HasSingleSide() {
			return fmt.Errorf("ledger row %s must be a pure debit or a pure credit", row.EntryID)
		}
		if row.DocumentNumber != rows[0].DocumentNumber {
			return fmt.Errorf("ledger rows belong to different documents: %s and %s", rows[0].DocumentNumber, row.DocumentNumber)
		}
		debits = debits.Add(row.DebitAmount)
		credits = credits.Add(row.CreditAmount)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal entry does not balance: debits %s, credits %s", debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

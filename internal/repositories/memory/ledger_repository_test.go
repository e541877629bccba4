package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revenueRequest(amount string, at time.Time) domain.PostingRequest {
	return domain.PostingRequest{
		TransactionType: domain.TransactionRevenue,
		DebitAccount:    domain.CashAsset,
		CreditAccount:   domain.RentalRevenue,
		Amount:          decimal.RequireFromString(amount),
		Description:     "rental",
		TransactionDate: &at,
	}
}

func TestSaveJournalEntry_FailedSecondRowLeavesNothing(t *testing.T) {
	ctx := context.Background()
	writes := 0
	repo := memory.NewLedgerRepository(memory.WithWriteHook(func(entry domain.LedgerEntry) error {
		writes++
		if entry.CreditAmount.IsPositive() {
			return errors.New("disk full")
		}
		return nil
	}))
	posting := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	_, err := posting.Post(ctx, revenueRequest("100.00", time.Now()))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, 2, writes, "the debit row was attempted before the failure")
	assert.Equal(t, 0, repo.Len())

	totals, err := repo.SumByAccount(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestSaveJournalEntry_CanceledContext(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveJournalEntry(ctx, domain.LedgerEntry{EntryID: "a"}, domain.LedgerEntry{EntryID: "b"})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, 0, repo.Len())
}

func TestPost_ConcurrentPostingsGetDistinctDocumentNumbers(t *testing.T) {
	const workers = 64
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	posting := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	var wg sync.WaitGroup
	numbers := make(chan string, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry, err := posting.Post(ctx, revenueRequest("10.00", time.Now()))
			if err != nil {
				errs <- err
				return
			}
			numbers <- entry.DocumentNumber
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("unexpected post error: %v", err)
	}
	seen := make(map[string]bool, workers)
	for n := range numbers {
		assert.False(t, seen[n], "duplicate document number %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, 2*workers, repo.Len())

	for n := range seen {
		rows, err := repo.FindEntriesByDocumentNumber(ctx, n)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.True(t, rows[0].DebitAmount.Add(rows[1].DebitAmount).Equal(rows[0].CreditAmount.Add(rows[1].CreditAmount)))
	}
}

func TestListEntries_Paginates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	posting := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := posting.Post(ctx, revenueRequest("1.00", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	var all []domain.LedgerEntry
	var token *string
	pages := 0
	for {
		page, next, err := repo.ListEntries(ctx, domain.EntryFilter{}, 4, token)
		require.NoError(t, err)
		all = append(all, page...)
		pages++
		if next == nil {
			break
		}
		token = next
	}

	assert.Equal(t, 3, pages)
	require.Len(t, all, 10)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].TransactionDate.Before(all[i-1].TransactionDate), "rows must be ordered by transaction date")
	}

	bad := "%%%"
	_, _, err := repo.ListEntries(ctx, domain.EntryFilter{}, 4, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReconciliationRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	posting := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	entry, err := posting.Post(ctx, revenueRequest("250.00", time.Now()))
	require.NoError(t, err)

	unreconciled, err := repo.ListUnreconciled(ctx)
	require.NoError(t, err)
	assert.Len(t, unreconciled, 2)

	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	updated, err := repo.MarkReconciled(ctx, entry.Debit.EntryID, at)
	require.NoError(t, err)
	assert.True(t, updated.Reconciled)
	assert.Equal(t, at, *updated.ReconciledAt)

	unreconciled, err = repo.ListUnreconciled(ctx)
	require.NoError(t, err)
	require.Len(t, unreconciled, 1)
	assert.Equal(t, entry.Credit.EntryID, unreconciled[0].EntryID)

	got, err := repo.FindEntryByID(ctx, entry.Debit.EntryID)
	require.NoError(t, err)
	assert.True(t, got.Reconciled)

	_, err = repo.MarkReconciled(ctx, "missing", at)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	posting := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	entry, err := posting.Post(ctx, revenueRequest("5.00", time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEntry(ctx, entry.Credit.EntryID))
	assert.ErrorIs(t, repo.DeleteEntry(ctx, entry.Credit.EntryID), apperrors.ErrNotFound)

	_, err = repo.FindEntryByID(ctx, entry.Credit.EntryID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 1, repo.Len())
}

func TestSumByAccount_GroupsAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	posting := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	_, err := posting.Post(ctx, revenueRequest("100.00", june))
	require.NoError(t, err)
	_, err = posting.Post(ctx, revenueRequest("50.00", july))
	require.NoError(t, err)
	_, err = posting.Post(ctx, domain.PostingRequest{
		TransactionType: domain.TransactionExpense,
		DebitAccount:    domain.FuelExpense,
		CreditAccount:   domain.CashAsset,
		Amount:          decimal.RequireFromString("30.00"),
		TransactionDate: &june,
	})
	require.NoError(t, err)

	totals, err := repo.SumByAccount(ctx, domain.EntryFilter{AccountTypes: []domain.AccountType{domain.CashAsset}})
	require.NoError(t, err)
	require.Len(t, totals, 2, "cash appears under REVENUE and EXPENSE")
	for _, tt := range totals {
		switch tt.TransactionType {
		case domain.TransactionRevenue:
			assert.True(t, decimal.NewFromInt(150).Equal(tt.TotalDebit))
			assert.True(t, tt.TotalCredit.IsZero())
		case domain.TransactionExpense:
			assert.True(t, tt.TotalDebit.IsZero())
			assert.True(t, decimal.NewFromInt(30).Equal(tt.TotalCredit))
		default:
			t.Fatalf("unexpected transaction type %s", tt.TransactionType)
		}
	}

	end := june.Add(24 * time.Hour)
	totals, err = repo.SumByAccount(ctx, domain.EntryFilter{To: &end})
	require.NoError(t, err)
	assert.Len(t, totals, 4)
}

func TestFindEntries_ByReference(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	chart := domain.DefaultChartOfAccounts()
	posting := services.NewPostingService(chart, repo)
	recorder := services.NewBusinessEventRecorderService(chart, posting)

	_, err := recorder.RecordPaymentReceived(ctx, domain.Payment{ID: "PAY-1", Amount: decimal.NewFromInt(80), Method: domain.PaymentCash})
	require.NoError(t, err)
	_, err = recorder.RecordInvoiceIssued(ctx, domain.Invoice{ID: "PAY-1", TotalAmount: decimal.NewFromInt(80)})
	require.NoError(t, err)
	_, err = posting.Post(ctx, revenueRequest("5.00", time.Now()))
	require.NoError(t, err)

	refType, refID := domain.ReferencePayment, "PAY-1"
	rows, err := repo.FindEntries(ctx, domain.EntryFilter{ReferenceType: &refType, ReferenceID: &refID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].DocumentNumber, rows[1].DocumentNumber)

	other := "PAY-2"
	rows, err = repo.FindEntries(ctx, domain.EntryFilter{ReferenceType: &refType, ReferenceID: &other})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

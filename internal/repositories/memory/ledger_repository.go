// Package memory implements the ledger store in process memory. It serves
// single-instance deployments and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// WriteHook is called for every row about to be written by SaveJournalEntry.
// A non-nil error aborts the whole journal entry.
type WriteHook func(entry domain.LedgerEntry) error

// LedgerRepository is a mutex-guarded ledger store.
type LedgerRepository struct {
	mu        sync.RWMutex
	entries   map[string]domain.LedgerEntry
	writeHook WriteHook
}

// Option configures a LedgerRepository.
type Option func(*LedgerRepository)

// WithWriteHook installs a hook run before each row write.
func WithWriteHook(hook WriteHook) Option {
	return func(r *LedgerRepository) {
		r.writeHook = hook
	}
}

// NewLedgerRepository creates an empty in-memory ledger store.
func NewLedgerRepository(options ...Option) *LedgerRepository {
	r := &LedgerRepository{entries: make(map[string]domain.LedgerEntry)}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

// SaveJournalEntry stages both rows and commits them together under the write lock,
// so readers see both rows or neither.
func (r *LedgerRepository) SaveJournalEntry(ctx context.Context, debit, credit domain.LedgerEntry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make([]domain.LedgerEntry, 0, 2)
	for _, entry := range []domain.LedgerEntry{debit, credit} {
		if _, exists := r.entries[entry.EntryID]; exists {
			return fmt.Errorf("%w: ledger entry %s", apperrors.ErrDuplicate, entry.EntryID)
		}
		if r.writeHook != nil {
			if err := r.writeHook(entry); err != nil {
				return fmt.Errorf("%w: failed to write ledger entry %s: %w", apperrors.ErrPersistence, entry.EntryID, err)
			}
		}
		staged = append(staged, entry)
	}

	for _, entry := range staged {
		r.entries[entry.EntryID] = entry
	}
	return nil
}

func (r *LedgerRepository) FindEntryByID(_ context.Context, entryID string) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
	}
	return &entry, nil
}

func (r *LedgerRepository) FindEntriesByDocumentNumber(_ context.Context, documentNumber string) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []domain.LedgerEntry{}
	for _, entry := range r.entries {
		if entry.DocumentNumber == documentNumber {
			entries = append(entries, entry)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func (r *LedgerRepository) FindEntries(_ context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	return r.matching(filter), nil
}

func (r *LedgerRepository) ListEntries(_ context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	cursor, err := pagination.DecodeOptional(nextToken)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	page := make([]domain.LedgerEntry, 0, limit+1)
	for _, entry := range r.matching(filter) {
		if cursor != nil && !cursor.After(entry.TransactionDate, entry.EntryID) {
			continue
		}
		page = append(page, entry)
		if len(page) > limit {
			break
		}
	}

	var next *string
	if len(page) > limit {
		page = page[:limit]
		last := page[len(page)-1]
		token := pagination.EncodeToken(pagination.Cursor{TransactionDate: last.TransactionDate, EntryID: last.EntryID})
		next = &token
	}
	return page, next, nil
}

func (r *LedgerRepository) ListUnreconciled(_ context.Context) ([]domain.LedgerEntry, error) {
	unreconciled := false
	return r.matching(domain.EntryFilter{Reconciled: &unreconciled}), nil
}

func (r *LedgerRepository) MarkReconciled(_ context.Context, entryID string, at time.Time) (*domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
	}
	entry.Reconciled = true
	entry.ReconciledAt = &at
	r.entries[entryID] = entry
	return &entry, nil
}

func (r *LedgerRepository) DeleteEntry(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entryID]; !ok {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
	}
	delete(r.entries, entryID)
	return nil
}

type totalsKey struct {
	transactionType domain.TransactionType
	accountType     domain.AccountType
}

func (r *LedgerRepository) SumByAccount(_ context.Context, filter domain.EntryFilter) ([]domain.AccountTotals, error) {
	grouped := make(map[totalsKey]*domain.AccountTotals)
	order := make([]totalsKey, 0)

	for _, entry := range r.matching(filter) {
		key := totalsKey{entry.TransactionType, entry.AccountType}
		totals, ok := grouped[key]
		if !ok {
			totals = &domain.AccountTotals{
				TransactionType: entry.TransactionType,
				AccountType:     entry.AccountType,
				AccountCode:     entry.AccountCode,
				AccountName:     entry.AccountName,
				TotalDebit:      decimal.Zero,
				TotalCredit:     decimal.Zero,
			}
			grouped[key] = totals
			order = append(order, key)
		}
		totals.TotalDebit = totals.TotalDebit.Add(entry.DebitAmount)
		totals.TotalCredit = totals.TotalCredit.Add(entry.CreditAmount)
	}

	result := make([]domain.AccountTotals, 0, len(order))
	for _, key := range order {
		result = append(result, *grouped[key])
	}
	return result, nil
}

// Len returns the number of stored rows.
func (r *LedgerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// matching returns a sorted snapshot of rows accepted by filter.
func (r *LedgerRepository) matching(filter domain.EntryFilter) []domain.LedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []domain.LedgerEntry{}
	for _, entry := range r.entries {
		if filter.Matches(entry) {
			entries = append(entries, entry)
		}
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []domain.LedgerEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TransactionDate.Equal(entries[j].TransactionDate) {
			return entries[i].EntryID < entries[j].EntryID
		}
		return entries[i].TransactionDate.Before(entries[j].TransactionDate)
	})
}

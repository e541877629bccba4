package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

// Ensure MockLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByDocumentNumber(ctx context.Context, documentNumber string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) FindEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListUnreconciled(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveJournalEntry(ctx context.Context, debit, credit domain.LedgerEntry) error {
	args := m.Called(ctx, debit, credit)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkReconciled(ctx context.Context, entryID string, at time.Time) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockLedgerRepository) SumByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.AccountTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotals), args.Error(1)
}

// --- Mock DocumentNumberGenerator ---
type MockDocumentNumbers struct {
	mock.Mock
}

var _ portsrepo.DocumentNumberGenerator = (*MockDocumentNumbers)(nil)

func (m *MockDocumentNumbers) NextDocumentNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portsrepo.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishJournalPosted(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock PostingSvc (as used by the recorders) ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvc = (*MockPostingService)(nil)

func (m *MockPostingService) Post(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostingSvc ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) Post(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.PostingSvc = (*MockPostingService)(nil)

// --- Mock BusinessEventRecorderSvc ---
type MockRecorderService struct {
	mock.Mock
}

func (m *MockRecorderService) RecordPaymentReceived(ctx context.Context, payment domain.Payment) (*domain.JournalEntry, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockRecorderService) RecordInvoiceIssued(ctx context.Context, invoice domain.Invoice) (*domain.JournalEntry, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockRecorderService) RecordExpense(ctx context.Context, amount decimal.Decimal, description string, expenseAccount domain.AccountType) (*domain.JournalEntry, error) {
	args := m.Called(ctx, amount, description, expenseAccount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockRecorderService) RecordRevenue(ctx context.Context, amount decimal.Decimal, description string, revenueAccount domain.AccountType) (*domain.JournalEntry, error) {
	args := m.Called(ctx, amount, description, revenueAccount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.BusinessEventRecorderSvc = (*MockRecorderService)(nil)

// --- Mock LedgerEntrySvcFacade ---
type MockLedgerEntryService struct {
	mock.Mock
}

func (m *MockLedgerEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockLedgerEntryService) GetJournalEntry(ctx context.Context, documentNumber string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerEntryService) AccountTransactions(ctx context.Context, accountType domain.AccountType, start, end time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountType, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryService) FindEntriesByReference(ctx context.Context, referenceType, referenceID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, referenceType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

var _ portssvc.LedgerEntrySvcFacade = (*MockLedgerEntryService)(nil)

// --- Mock ReconciliationSvc ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) ListUnreconciled(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockReconciliationService) MarkReconciled(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

var _ portssvc.ReconciliationSvc = (*MockReconciliationService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) CashFlowStatement(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowStatement), args.Error(1)
}

func (m *MockReportingService) FinancialSummary(ctx context.Context, start, end time.Time) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockReportingService) AccountBalance(ctx context.Context, accountType domain.AccountType) (decimal.Decimal, error) {
	args := m.Called(ctx, accountType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

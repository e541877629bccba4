package services

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance lists lifetime debit and credit totals per account
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)

	// IncomeStatement summarises revenue and expenses between start and end (inclusive)
	IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet reports assets, liabilities and equity as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)

	// CashFlowStatement summarises cash and bank movements between start and end
	CashFlowStatement(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error)

	// FinancialSummary produces all four statements for one period
	FinancialSummary(ctx context.Context, start, end time.Time) (*domain.FinancialSummary, error)

	// AccountBalance returns lifetime debits minus credits for one account
	AccountBalance(ctx context.Context, accountType domain.AccountType) (decimal.Decimal, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	chart         *domain.ChartOfAccounts
	reportingRepo portsrepo.LedgerAggregator
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the time source.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(chart *domain.ChartOfAccounts, repo portsrepo.LedgerAggregator, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		chart:         chart,
		reportingRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// accountSums is the debit/credit total of one account across transaction types.
type accountSums struct {
	debit, credit decimal.Decimal
}

func (s *reportingService) sumByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.AccountTotals, error) {
	totals, err := s.reportingRepo.SumByAccount(ctx, filter)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []domain.AccountTotals{}
	}
	return totals, nil
}

// collapse merges transaction-type groups into one sum per account type.
func collapse(totals []domain.AccountTotals) map[domain.AccountType]accountSums {
	byAccount := make(map[domain.AccountType]accountSums)
	for _, t := range totals {
		sums, ok := byAccount[t.AccountType]
		if !ok {
			sums = accountSums{debit: decimal.Zero, credit: decimal.Zero}
		}
		sums.debit = sums.debit.Add(t.TotalDebit)
		sums.credit = sums.credit.Add(t.TotalCredit)
		byAccount[t.AccountType] = sums
	}
	return byAccount
}

// TrialBalance lists lifetime debit and credit totals per account
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	totals, err := s.sumByAccount(ctx, domain.EntryFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data")
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalance{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for accountType, sums := range collapse(totals) {
		def, err := s.chart.Lookup(accountType)
		if err != nil {
			s.LogError(ctx, err, "Ledger holds an account type missing from the chart", slog.String("account_type", string(accountType)))
			return nil, fmt.Errorf("failed to build trial balance: %w", err)
		}
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountType: def.Type,
			AccountCode: def.Code,
			AccountName: def.Name,
			Debit:       sums.debit,
			Credit:      sums.credit,
		})
		report.TotalDebit = report.TotalDebit.Add(sums.debit)
		report.TotalCredit = report.TotalCredit.Add(sums.credit)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		return s.chart.Less(report.Rows[i].AccountType, report.Rows[j].AccountType)
	})

	if !report.IsBalanced() {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully", slog.Int("row_count", len(report.Rows)))
	return report, nil
}

// IncomeStatement summarises REVENUE and EXPENSE postings between start and end.
// Revenue is the credit side of REVENUE postings, expenses the debit side of
// EXPENSE postings. Each side always has at least one line.
func (s *reportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	totals, err := s.sumByAccount(ctx, domain.EntryFilter{
		From:             &start,
		To:               &end,
		TransactionTypes: []domain.TransactionType{domain.TransactionRevenue, domain.TransactionExpense},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data",
			slog.String("from", start.Format(time.RFC3339)),
			slog.String("to", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve income statement data: %w", err)
	}

	revenueByAccount := make(map[domain.AccountType]decimal.Decimal)
	expenseByAccount := make(map[domain.AccountType]decimal.Decimal)
	for _, t := range totals {
		switch t.TransactionType {
		case domain.TransactionRevenue:
			if t.TotalCredit.IsPositive() {
				revenueByAccount[t.AccountType] = revenueByAccount[t.AccountType].Add(t.TotalCredit)
			}
		case domain.TransactionExpense:
			if t.TotalDebit.IsPositive() {
				expenseByAccount[t.AccountType] = expenseByAccount[t.AccountType].Add(t.TotalDebit)
			}
		}
	}

	revenues, totalRevenue := s.lineItems(revenueByAccount, domain.RentalRevenue)
	expenses, totalExpenses := s.lineItems(expenseByAccount, domain.OperatingExpense)

	report := &domain.IncomeStatement{
		StartDate:     start,
		EndDate:       end,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     totalRevenue.Sub(totalExpenses),
		Revenues:      revenues,
		Expenses:      expenses,
	}

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("from", start.Format(time.RFC3339)),
		slog.String("to", end.Format(time.RFC3339)),
		slog.Int("revenue_lines", len(revenues)),
		slog.Int("expense_lines", len(expenses)))
	return report, nil
}

// lineItems turns per-account amounts into chart-ordered lines. When there are
// none, a single zero line for placeholder is emitted.
func (s *reportingService) lineItems(amounts map[domain.AccountType]decimal.Decimal, placeholder domain.AccountType) ([]domain.LineItem, decimal.Decimal) {
	total := decimal.Zero
	items := make([]domain.LineItem, 0, len(amounts))
	for accountType, amount := range amounts {
		items = append(items, domain.LineItem{
			AccountType: accountType,
			Name:        s.accountName(accountType),
			Amount:      amount,
		})
		total = total.Add(amount)
	}
	sort.Slice(items, func(i, j int) bool {
		return s.chart.Less(items[i].AccountType, items[j].AccountType)
	})
	if len(items) == 0 {
		items = append(items, domain.LineItem{
			AccountType: placeholder,
			Name:        s.accountName(placeholder),
			Amount:      decimal.Zero,
		})
	}
	return items, total
}

func (s *reportingService) accountName(accountType domain.AccountType) string {
	if def, err := s.chart.Lookup(accountType); err == nil {
		return def.Name
	}
	return string(accountType)
}

// BalanceSheet classifies every account by its chart category and reports its
// balance in the natural direction as of asOf.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	totals, err := s.sumByAccount(ctx, domain.EntryFilter{To: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data", slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	report := &domain.BalanceSheet{
		AsOfDate:         asOf,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		Assets:           []domain.LineItem{},
		Liabilities:      []domain.LineItem{},
		Equity:           []domain.LineItem{},
	}

	byAccount := collapse(totals)
	for _, accountType := range s.chart.Types() {
		sums, ok := byAccount[accountType]
		if !ok {
			continue
		}
		def := s.chart.MustLookup(accountType)
		net, err := accounting.NetForCategory(def.Category, sums.debit, sums.credit)
		if err != nil {
			return nil, fmt.Errorf("failed to build balance sheet: %w", err)
		}
		line := domain.LineItem{AccountType: accountType, Name: def.Name, Amount: net}

		switch def.Category {
		case domain.CategoryAsset:
			report.Assets = append(report.Assets, line)
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.CategoryLiability:
			report.Liabilities = append(report.Liabilities, line)
			report.TotalLiabilities = report.TotalLiabilities.Add(net)
		case domain.CategoryEquity:
			report.Equity = append(report.Equity, line)
			report.TotalEquity = report.TotalEquity.Add(net)
		}
	}

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return report, nil
}

// CashFlowStatement sums the cash and bank rows in the period. Debits are
// reported as outflows and credits as inflows.
func (s *reportingService) CashFlowStatement(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	totals, err := s.sumByAccount(ctx, domain.EntryFilter{
		From:         &start,
		To:           &end,
		AccountTypes: []domain.AccountType{domain.CashAsset, domain.BankAsset},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cash flow data",
			slog.String("from", start.Format(time.RFC3339)),
			slog.String("to", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve cash flow data: %w", err)
	}

	outflows, inflows := decimal.Zero, decimal.Zero
	for _, t := range totals {
		outflows = outflows.Add(t.TotalDebit)
		inflows = inflows.Add(t.TotalCredit)
	}

	report := &domain.CashFlowStatement{
		StartDate:    start,
		EndDate:      end,
		CashInflows:  inflows,
		CashOutflows: outflows,
		NetCashFlow:  inflows.Sub(outflows),
	}

	s.LogInfo(ctx, "Cash flow statement generated successfully",
		slog.String("from", start.Format(time.RFC3339)),
		slog.String("to", end.Format(time.RFC3339)))
	return report, nil
}

// FinancialSummary runs the four statements concurrently; the balance sheet is as of end.
func (s *reportingService) FinancialSummary(ctx context.Context, start, end time.Time) (*domain.FinancialSummary, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	summary := &domain.FinancialSummary{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.TrialBalance, err = s.TrialBalance(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.IncomeStatement, err = s.IncomeStatement(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		summary.BalanceSheet, err = s.BalanceSheet(gctx, end)
		return err
	})
	g.Go(func() (err error) {
		summary.CashFlowStatement, err = s.CashFlowStatement(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// AccountBalance returns lifetime debits minus credits for one account
func (s *reportingService) AccountBalance(ctx context.Context, accountType domain.AccountType) (decimal.Decimal, error) {
	if _, err := s.chart.Lookup(accountType); err != nil {
		return decimal.Zero, err
	}

	totals, err := s.sumByAccount(ctx, domain.EntryFilter{AccountTypes: []domain.AccountType{accountType}})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account balance", slog.String("account_type", string(accountType)))
		return decimal.Zero, fmt.Errorf("failed to retrieve account balance: %w", err)
	}

	sums := collapse(totals)[accountType]
	balance := decimal.Zero.Add(sums.debit).Sub(sums.credit)
	return balance, nil
}

func validatePeriod(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

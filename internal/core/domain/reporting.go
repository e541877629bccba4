package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow holds lifetime debit and credit totals for one account.
type TrialBalanceRow struct {
	AccountType AccountType     `json:"accountType"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with activity plus grand totals.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// IsBalanced reports whether total debits equal total credits.
func (tb TrialBalance) IsBalanced() bool {
	return tb.TotalDebit.Equal(tb.TotalCredit)
}

// LineItem is one named amount of a financial statement.
type LineItem struct {
	AccountType AccountType     `json:"accountType,omitempty"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatement summarises revenue and expense activity in a period.
type IncomeStatement struct {
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	Revenues      []LineItem      `json:"revenues"`
	Expenses      []LineItem      `json:"expenses"`
}

// BalanceSheet reports assets, liabilities and equity as of a date.
type BalanceSheet struct {
	AsOfDate         time.Time       `json:"asOfDate"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Assets           []LineItem      `json:"assets"`
	Liabilities      []LineItem      `json:"liabilities"`
	Equity           []LineItem      `json:"equity"`
}

// CashFlowStatement summarises movements on the cash and bank accounts.
type CashFlowStatement struct {
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	CashInflows  decimal.Decimal `json:"cashInflows"`
	CashOutflows decimal.Decimal `json:"cashOutflows"`
	NetCashFlow  decimal.Decimal `json:"netCashFlow"`
}

// FinancialSummary bundles the four statements for one period.
type FinancialSummary struct {
	TrialBalance      *TrialBalance      `json:"trialBalance"`
	IncomeStatement   *IncomeStatement   `json:"incomeStatement"`
	BalanceSheet      *BalanceSheet      `json:"balanceSheet"`
	CashFlowStatement *CashFlowStatement `json:"cashFlowStatement"`
}

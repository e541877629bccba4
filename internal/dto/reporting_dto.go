package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountType string `json:"accountType"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit    Amount `json:"debit"`
		Credit   Amount `json:"credit"`
		Balanced bool   `json:"balanced"`
	} `json:"totals"`
}

// LineItemResponse represents a named amount in a financial statement
type LineItemResponse struct {
	AccountType string `json:"accountType,omitempty"`
	Name        string `json:"name"`
	Amount      Amount `json:"amount"`
}

// IncomeStatementResponse represents the income statement response
type IncomeStatementResponse struct {
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	TotalRevenue  Amount             `json:"totalRevenue"`
	TotalExpenses Amount             `json:"totalExpenses"`
	NetProfit     Amount             `json:"netProfit"`
	Revenues      []LineItemResponse `json:"revenues"`
	Expenses      []LineItemResponse `json:"expenses"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOfDate         time.Time          `json:"asOfDate"`
	TotalAssets      Amount             `json:"totalAssets"`
	TotalLiabilities Amount             `json:"totalLiabilities"`
	TotalEquity      Amount             `json:"totalEquity"`
	Assets           []LineItemResponse `json:"assets"`
	Liabilities      []LineItemResponse `json:"liabilities"`
	Equity           []LineItemResponse `json:"equity"`
}

// CashFlowStatementResponse represents the cash flow statement response
type CashFlowStatementResponse struct {
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	CashInflows  Amount    `json:"cashInflows"`
	CashOutflows Amount    `json:"cashOutflows"`
	NetCashFlow  Amount    `json:"netCashFlow"`
}

// FinancialSummaryResponse bundles all four statements
type FinancialSummaryResponse struct {
	TrialBalance      TrialBalanceResponse      `json:"trialBalance"`
	IncomeStatement   IncomeStatementResponse   `json:"incomeStatement"`
	BalanceSheet      BalanceSheetResponse      `json:"balanceSheet"`
	CashFlowStatement CashFlowStatementResponse `json:"cashFlowStatement"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance to its DTO
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{Rows: make([]TrialBalanceRowResponse, len(tb.Rows))}
	for i, row := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountType: string(row.AccountType),
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Debit:       NewAmount(row.Debit),
			Credit:      NewAmount(row.Credit),
		}
	}
	resp.Totals.Debit = NewAmount(tb.TotalDebit)
	resp.Totals.Credit = NewAmount(tb.TotalCredit)
	resp.Totals.Balanced = tb.IsBalanced()
	return resp
}

func toLineItemResponses(items []domain.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i, item := range items {
		responses[i] = LineItemResponse{
			AccountType: string(item.AccountType),
			Name:        item.Name,
			Amount:      NewAmount(item.Amount),
		}
	}
	return responses
}

// ToIncomeStatementResponse converts a domain.IncomeStatement to its DTO
func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		StartDate:     is.StartDate,
		EndDate:       is.EndDate,
		TotalRevenue:  NewAmount(is.TotalRevenue),
		TotalExpenses: NewAmount(is.TotalExpenses),
		NetProfit:     NewAmount(is.NetProfit),
		Revenues:      toLineItemResponses(is.Revenues),
		Expenses:      toLineItemResponses(is.Expenses),
	}
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its DTO
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOfDate:         bs.AsOfDate,
		TotalAssets:      NewAmount(bs.TotalAssets),
		TotalLiabilities: NewAmount(bs.TotalLiabilities),
		TotalEquity:      NewAmount(bs.TotalEquity),
		Assets:           toLineItemResponses(bs.Assets),
		Liabilities:      toLineItemResponses(bs.Liabilities),
		Equity:           toLineItemResponses(bs.Equity),
	}
}

// ToCashFlowStatementResponse converts a domain.CashFlowStatement to its DTO
func ToCashFlowStatementResponse(cf *domain.CashFlowStatement) CashFlowStatementResponse {
	return CashFlowStatementResponse{
		StartDate:    cf.StartDate,
		EndDate:      cf.EndDate,
		CashInflows:  NewAmount(cf.CashInflows),
		CashOutflows: NewAmount(cf.CashOutflows),
		NetCashFlow:  NewAmount(cf.NetCashFlow),
	}
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its DTO
func ToFinancialSummaryResponse(fs *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TrialBalance:      ToTrialBalanceResponse(fs.TrialBalance),
		IncomeStatement:   ToIncomeStatementResponse(fs.IncomeStatement),
		BalanceSheet:      ToBalanceSheetResponse(fs.BalanceSheet),
		CashFlowStatement: ToCashFlowStatementResponse(fs.CashFlowStatement),
	}
}

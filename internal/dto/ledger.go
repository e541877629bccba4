package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest is the administrative request to post a journal entry.
type CreateJournalEntryRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,transactiontype"`
	DebitAccount    domain.AccountType     `json:"debitAccount" binding:"required,accounttype"`
	CreditAccount   domain.AccountType     `json:"creditAccount" binding:"required,accounttype"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description" binding:"max=500"`
	ReferenceID     *string                `json:"referenceID" binding:"omitempty,max=100"`
	ReferenceType   *string                `json:"referenceType" binding:"omitempty,max=50"`
	TransactionDate *time.Time             `json:"transactionDate"`
}

// ToPostingRequest converts the request into the posting engine input.
func (r CreateJournalEntryRequest) ToPostingRequest() domain.PostingRequest {
	return domain.PostingRequest{
		TransactionType: r.TransactionType,
		DebitAccount:    r.DebitAccount,
		CreditAccount:   r.CreditAccount,
		Amount:          r.Amount,
		Description:     r.Description,
		ReferenceID:     r.ReferenceID,
		ReferenceType:   r.ReferenceType,
		TransactionDate: r.TransactionDate,
	}
}

// LedgerEntryResponse defines the data returned for a ledger row.
type LedgerEntryResponse struct {
	EntryID         string     `json:"entryID"`
	TransactionType string     `json:"transactionType"`
	AccountType     string     `json:"accountType"`
	AccountCode     string     `json:"accountCode"`
	AccountName     string     `json:"accountName"`
	TransactionDate time.Time  `json:"transactionDate"`
	Description     string     `json:"description"`
	DebitAmount     Amount     `json:"debitAmount"`
	CreditAmount    Amount     `json:"creditAmount"`
	ReferenceID     *string    `json:"referenceID,omitempty"`
	ReferenceType   *string    `json:"referenceType,omitempty"`
	DocumentNumber  string     `json:"documentNumber"`
	Reconciled      bool       `json:"reconciled"`
	ReconciledAt    *time.Time `json:"reconciledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// JournalEntryResponse is both sides of one posting.
type JournalEntryResponse struct {
	DocumentNumber string              `json:"documentNumber"`
	Debit          LedgerEntryResponse `json:"debit"`
	Credit         LedgerEntryResponse `json:"credit"`
}

// ListEntriesParams carries filters and paging for listing ledger rows.
type ListEntriesParams struct {
	Filter    domain.EntryFilter
	Limit     int
	NextToken *string
}

// ListEntriesResponse is one page of ledger rows.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// AccountResponse is one chart-of-accounts row.
type AccountResponse struct {
	AccountType string `json:"accountType"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	Category    string `json:"category"`
}

// AccountBalanceResponse is the lifetime balance of one account.
type AccountBalanceResponse struct {
	AccountType string `json:"accountType"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	Balance     Amount `json:"balance"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		TransactionType: string(e.TransactionType),
		AccountType:     string(e.AccountType),
		AccountCode:     e.AccountCode,
		AccountName:     e.AccountName,
		TransactionDate: e.TransactionDate,
		Description:     e.Description,
		DebitAmount:     NewAmount(e.DebitAmount),
		CreditAmount:    NewAmount(e.CreditAmount),
		ReferenceID:     e.ReferenceID,
		ReferenceType:   e.ReferenceType,
		DocumentNumber:  e.DocumentNumber,
		Reconciled:      e.Reconciled,
		ReconciledAt:    e.ReconciledAt,
		CreatedAt:       e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to DTOs. Never returns nil.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(j *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		DocumentNumber: j.DocumentNumber,
		Debit:          ToLedgerEntryResponse(&j.Debit),
		Credit:         ToLedgerEntryResponse(&j.Credit),
	}
}

// ToAccountResponses converts chart rows to DTOs.
func ToAccountResponses(defs []domain.AccountDefinition) []AccountResponse {
	responses := make([]AccountResponse, len(defs))
	for i, def := range defs {
		responses[i] = AccountResponse{
			AccountType: string(def.Type),
			AccountCode: def.Code,
			AccountName: def.Name,
			Category:    string(def.Category),
		}
	}
	return responses
}

// ListEntriesQuery is the query string accepted by the entry listing endpoint.
type ListEntriesQuery struct {
	From             string   `form:"from"`
	To               string   `form:"to"`
	TransactionTypes []string `form:"transactionType" binding:"dive,transactiontype"`
	AccountTypes     []string `form:"accountType" binding:"dive,accounttype"`
	Reconciled       *bool    `form:"reconciled"`
	ReferenceType    *string  `form:"referenceType" binding:"omitempty,max=50"`
	ReferenceID      *string  `form:"referenceID" binding:"omitempty,max=100"`
	Limit            int      `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken        *string  `form:"nextToken"`
}

package dto

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest records a confirmed customer payment.
type RecordPaymentRequest struct {
	PaymentID string          `json:"paymentID" binding:"required,max=100"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required,paymentmethod"`
}

// ToPayment converts the request into the recorder input.
func (r RecordPaymentRequest) ToPayment() domain.Payment {
	return domain.Payment{ID: r.PaymentID, Amount: r.Amount, Method: domain.PaymentMethod(r.Method)}
}

// RecordInvoiceRequest records an issued invoice.
type RecordInvoiceRequest struct {
	InvoiceID   string          `json:"invoiceID" binding:"required,max=100"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ToInvoice converts the request into the recorder input.
func (r RecordInvoiceRequest) ToInvoice() domain.Invoice {
	return domain.Invoice{ID: r.InvoiceID, TotalAmount: r.TotalAmount}
}

// RecordExpenseRequest records a generic expense paid in cash.
type RecordExpenseRequest struct {
	Amount         decimal.Decimal    `json:"amount"`
	Description    string             `json:"description" binding:"required,max=500"`
	ExpenseAccount domain.AccountType `json:"expenseAccount" binding:"required,accounttype"`
}

// RecordRevenueRequest records generic revenue received in cash.
type RecordRevenueRequest struct {
	Amount         decimal.Decimal    `json:"amount"`
	Description    string             `json:"description" binding:"required,max=500"`
	RevenueAccount domain.AccountType `json:"revenueAccount" binding:"required,accounttype"`
}

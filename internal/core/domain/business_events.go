package domain

import "github.com/shopspring/decimal"

// PaymentMethod is how a customer settled a payment.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentCreditCard, PaymentDebitCard:
		return true
	}
	return false
}

// SettlesThroughBank reports whether money for this method lands in a bank account.
func (m PaymentMethod) SettlesThroughBank() bool {
	switch m {
	case PaymentBankTransfer, PaymentCreditCard, PaymentDebitCard:
		return true
	}
	return false
}

// Payment is the read-only view of a confirmed payment from the payment subsystem.
type Payment struct {
	ID     string
	Amount decimal.Decimal
	Method PaymentMethod
}

// Invoice is the read-only view of an issued invoice.
type Invoice struct {
	ID          string
	TotalAmount decimal.Decimal
}

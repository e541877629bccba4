package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Business event types accepted on the events queue.
const (
	EventPaymentReceived = "payment.received"
	EventInvoiceIssued   = "invoice.issued"
)

// BusinessEventMessage is a payment or invoice raised by another service.
// The ledger dates the posting when it records the event, so producer
// timestamps are not part of the message.
type BusinessEventMessage struct {
	Type   string          `json:"type"`
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method,omitempty"`
}

// Validate checks the fields required by the message type.
func (m *BusinessEventMessage) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: event id is required", apperrors.ErrValidation)
	}
	switch m.Type {
	case EventPaymentReceived:
		if !domain.PaymentMethod(m.Method).IsValid() {
			return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, m.Method)
		}
	case EventInvoiceIssued:
	default:
		return fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, m.Type)
	}
	return nil
}

// Payment converts a payment.received message.
func (m *BusinessEventMessage) Payment() domain.Payment {
	return domain.Payment{ID: m.ID, Amount: m.Amount, Method: domain.PaymentMethod(m.Method)}
}

// Invoice converts an invoice.issued message.
func (m *BusinessEventMessage) Invoice() domain.Invoice {
	return domain.Invoice{ID: m.ID, TotalAmount: m.Amount}
}

// ToJSON converts the message to JSON bytes
func (m *BusinessEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BusinessEventMessageFromJSON decodes and validates a business event.
func BusinessEventMessageFromJSON(data []byte) (*BusinessEventMessage, error) {
	var msg BusinessEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}

// JournalPostedMessage announces a committed journal entry.
type JournalPostedMessage struct {
	DocumentNumber  string          `json:"documentNumber"`
	TransactionType string          `json:"transactionType"`
	DebitAccount    string          `json:"debitAccount"`
	CreditAccount   string          `json:"creditAccount"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ReferenceID     *string         `json:"referenceId,omitempty"`
	ReferenceType   *string         `json:"referenceType,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	Timestamp       time.Time       `json:"timestamp"`
}

// NewJournalPostedMessage builds the event for a journal entry.
func NewJournalPostedMessage(entry domain.JournalEntry) *JournalPostedMessage {
	return &JournalPostedMessage{
		DocumentNumber:  entry.DocumentNumber,
		TransactionType: string(entry.Debit.TransactionType),
		DebitAccount:    string(entry.Debit.AccountType),
		CreditAccount:   string(entry.Credit.AccountType),
		Amount:          entry.Debit.DebitAmount,
		Description:     entry.Debit.Description,
		ReferenceID:     entry.Debit.ReferenceID,
		ReferenceType:   entry.Debit.ReferenceType,
		TransactionDate: entry.Debit.TransactionDate,
		Timestamp:       time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *JournalPostedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// JournalPostedMessageFromJSON decodes a journal posted event.
func JournalPostedMessageFromJSON(data []byte) (*JournalPostedMessage, error) {
	var msg JournalPostedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// recorderService implements the BusinessEventRecorderSvc interface
type recorderService struct {
	BaseService
	chart                  *domain.ChartOfAccounts
	posting                portssvc.PostingSvc
	paymentAccountByMethod bool
}

// RecorderServiceOption is a functional option for configuring the recorder service
type RecorderServiceOption func(*recorderService)

// WithPaymentAccountByMethod debits BANK_ASSET for payments settled through a bank
// (transfer or card) instead of always debiting CASH_ASSET.
func WithPaymentAccountByMethod(enabled bool) RecorderServiceOption {
	return func(s *recorderService) {
		s.paymentAccountByMethod = enabled
	}
}

// NewBusinessEventRecorderService creates the business event recorders
func NewBusinessEventRecorderService(chart *domain.ChartOfAccounts, posting portssvc.PostingSvc, options ...RecorderServiceOption) portssvc.BusinessEventRecorderSvc {
	svc := &recorderService{
		chart:   chart,
		posting: posting,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BusinessEventRecorderSvc = (*recorderService)(nil)

func (s *recorderService) RecordPaymentReceived(ctx context.Context, payment domain.Payment) (*domain.JournalEntry, error) {
	if payment.ID == "" {
		return nil, fmt.Errorf("%w: payment id is required", apperrors.ErrValidation)
	}

	debitAccount := domain.CashAsset
	if s.paymentAccountByMethod && payment.Method.SettlesThroughBank() {
		debitAccount = domain.BankAsset
	}

	entry, err := s.posting.Post(ctx, domain.PostingRequest{
		TransactionType: domain.TransactionRevenue,
		DebitAccount:    debitAccount,
		CreditAccount:   domain.RentalRevenue,
		Amount:          payment.Amount,
		Description:     "Payment received: " + payment.ID,
		ReferenceID:     stringPtr(payment.ID),
		ReferenceType:   stringPtr(domain.ReferencePayment),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("payment_id", payment.ID))
		return nil, fmt.Errorf("failed to record payment %s: %w", payment.ID, err)
	}
	return entry, nil
}

func (s *recorderService) RecordInvoiceIssued(ctx context.Context, invoice domain.Invoice) (*domain.JournalEntry, error) {
	if invoice.ID == "" {
		return nil, fmt.Errorf("%w: invoice id is required", apperrors.ErrValidation)
	}

	entry, err := s.posting.Post(ctx, domain.PostingRequest{
		TransactionType: domain.TransactionRevenue,
		DebitAccount:    domain.AccountsReceivable,
		CreditAccount:   domain.RentalRevenue,
		Amount:          invoice.TotalAmount,
		Description:     "Invoice issued: " + invoice.ID,
		ReferenceID:     stringPtr(invoice.ID),
		ReferenceType:   stringPtr(domain.ReferenceInvoice),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record invoice", slog.String("invoice_id", invoice.ID))
		return nil, fmt.Errorf("failed to record invoice %s: %w", invoice.ID, err)
	}
	return entry, nil
}

func (s *recorderService) RecordExpense(ctx context.Context, amount decimal.Decimal, description string, expenseAccount domain.AccountType) (*domain.JournalEntry, error) {
	if err := s.requireCategory(expenseAccount, domain.CategoryExpense); err != nil {
		return nil, err
	}

	entry, err := s.posting.Post(ctx, domain.PostingRequest{
		TransactionType: domain.TransactionExpense,
		DebitAccount:    expenseAccount,
		CreditAccount:   domain.CashAsset,
		Amount:          amount,
		Description:     description,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record expense", slog.String("account_type", string(expenseAccount)))
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	return entry, nil
}

func (s *recorderService) RecordRevenue(ctx context.Context, amount decimal.Decimal, description string, revenueAccount domain.AccountType) (*domain.JournalEntry, error) {
	if err := s.requireCategory(revenueAccount, domain.CategoryRevenue); err != nil {
		return nil, err
	}

	entry, err := s.posting.Post(ctx, domain.PostingRequest{
		TransactionType: domain.TransactionRevenue,
		DebitAccount:    domain.CashAsset,
		CreditAccount:   revenueAccount,
		Amount:          amount,
		Description:     description,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record revenue", slog.String("account_type", string(revenueAccount)))
		return nil, fmt.Errorf("failed to record revenue: %w", err)
	}
	return entry, nil
}

func (s *recorderService) requireCategory(accountType domain.AccountType, category domain.AccountCategory) error {
	def, err := s.chart.Lookup(accountType)
	if err != nil {
		return err
	}
	if def.Category != category {
		return fmt.Errorf("%w: account %s is %s, expected %s", apperrors.ErrValidation, accountType, def.Category, category)
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}

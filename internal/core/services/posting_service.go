package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// postingService implements the PostingSvc interface
type postingService struct {
	BaseService
	chart           *domain.ChartOfAccounts
	ledgerRepo      portsrepo.LedgerWriter
	documentNumbers portsrepo.DocumentNumberGenerator
	publisher       portsrepo.EventPublisher
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithDocumentNumberGenerator replaces the default UUIDv7 document numbers.
func WithDocumentNumberGenerator(gen portsrepo.DocumentNumberGenerator) PostingServiceOption {
	return func(s *postingService) {
		if gen != nil {
			s.documentNumbers = gen
		}
	}
}

// WithEventPublisher announces every committed journal entry.
func WithEventPublisher(publisher portsrepo.EventPublisher) PostingServiceOption {
	return func(s *postingService) {
		s.publisher = publisher
	}
}

// WithPostingClock overrides the time source.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates the journal posting engine
func NewPostingService(chart *domain.ChartOfAccounts, repo portsrepo.LedgerWriter, options ...PostingServiceOption) portssvc.PostingSvc {
	svc := &postingService{
		chart:           chart,
		ledgerRepo:      repo,
		documentNumbers: NewUUIDDocumentNumberGenerator(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvc = (*postingService)(nil)

// Post validates the request and writes the debit and credit rows as one unit.
func (s *postingService) Post(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error) {
	if !req.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}

	debitDef, err := s.chart.Lookup(req.DebitAccount)
	if err != nil {
		s.LogError(ctx, err, "Debit account not in chart of accounts", slog.String("account_type", string(req.DebitAccount)))
		return nil, fmt.Errorf("debit account: %w", err)
	}
	creditDef, err := s.chart.Lookup(req.CreditAccount)
	if err != nil {
		s.LogError(ctx, err, "Credit account not in chart of accounts", slog.String("account_type", string(req.CreditAccount)))
		return nil, fmt.Errorf("credit account: %w", err)
	}

	amount := utils.RoundAmount(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}

	documentNumber, err := s.documentNumbers.NextDocumentNumber(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate document number")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	now := s.Now()
	transactionDate := now
	if req.TransactionDate != nil {
		transactionDate = req.TransactionDate.UTC()
	}

	template := domain.LedgerEntry{
		TransactionType: req.TransactionType,
		TransactionDate: transactionDate,
		Description:     req.Description,
		ReferenceID:     req.ReferenceID,
		ReferenceType:   req.ReferenceType,
		DocumentNumber:  documentNumber,
		CreatedAt:       now,
	}

	debit := template
	debit.EntryID = uuid.NewString()
	debit.AccountType = debitDef.Type
	debit.AccountCode = debitDef.Code
	debit.AccountName = debitDef.Name
	debit.DebitAmount = amount
	debit.CreditAmount = decimal.Zero

	credit := template
	credit.EntryID = uuid.NewString()
	credit.AccountType = creditDef.Type
	credit.AccountCode = creditDef.Code
	credit.AccountName = creditDef.Name
	credit.DebitAmount = decimal.Zero
	credit.CreditAmount = amount

	if err := s.ledgerRepo.SaveJournalEntry(ctx, debit, credit); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("document_number", documentNumber))
		if !errors.Is(err, apperrors.ErrPersistence) {
			err = fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
		}
		return nil, fmt.Errorf("failed to save journal entry %s: %w", documentNumber, err)
	}

	entry := &domain.JournalEntry{DocumentNumber: documentNumber, Debit: debit, Credit: credit}
	s.publish(ctx, *entry)

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("document_number", documentNumber),
		slog.String("transaction_type", string(req.TransactionType)),
		slog.String("debit_account", string(debitDef.Type)),
		slog.String("credit_account", string(creditDef.Type)),
		slog.String("amount", utils.FormatAmount(amount)))
	return entry, nil
}

// publish is best effort: the entry is already committed.
func (s *postingService) publish(ctx context.Context, entry domain.JournalEntry) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJournalPosted(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to publish journal posted event", slog.String("document_number", entry.DocumentNumber))
	}
}

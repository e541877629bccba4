package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/utils/accounting"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
)

type ledgerEntryRepository interface {
	portsrepo.LedgerReader
	portsrepo.LedgerWriter
}

type ledgerEntryService struct {
	BaseService
	chart      *domain.ChartOfAccounts
	ledgerRepo ledgerEntryRepository
}

// NewLedgerEntryService creates the service behind ledger row queries and administration
func NewLedgerEntryService(chart *domain.ChartOfAccounts, repo ledgerEntryRepository) portssvc.LedgerEntrySvcFacade {
	return &ledgerEntryService{chart: chart, ledgerRepo: repo}
}

var _ portssvc.LedgerEntrySvcFacade = (*ledgerEntryService)(nil)

func (s *ledgerEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		s.LogDebug(ctx, "Ledger entry lookup failed", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get ledger entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *ledgerEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	filter := params.Filter
	if filter.From != nil && filter.To != nil {
		if err := validatePeriod(*filter.From, *filter.To); err != nil {
			return nil, err
		}
	}

	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, filter, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// GetJournalEntry reassembles the debit and credit rows posted under documentNumber.
func (s *ledgerEntryService) GetJournalEntry(ctx context.Context, documentNumber string) (*domain.JournalEntry, error) {
	rows, err := s.ledgerRepo.FindEntriesByDocumentNumber(ctx, documentNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal entry", slog.String("document_number", documentNumber))
		return nil, fmt.Errorf("failed to load journal entry %s: %w", documentNumber, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, documentNumber)
	}

	if err := accounting.ValidateJournalBalance(rows); err != nil {
		// Only an administrative row delete can leave a document like this.
		s.LogWarn(ctx, "Journal entry is incomplete", slog.String("document_number", documentNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: journal entry %s: %v", apperrors.ErrInternal, documentNumber, err)
	}
	entry, _ := domain.NewJournalEntryFromRows(rows)
	return &entry, nil
}

func (s *ledgerEntryService) AccountTransactions(ctx context.Context, accountType domain.AccountType, start, end time.Time) ([]domain.LedgerEntry, error) {
	if _, err := s.chart.Lookup(accountType); err != nil {
		return nil, err
	}
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.FindEntries(ctx, domain.EntryFilter{
		From:         &start,
		To:           &end,
		AccountTypes: []domain.AccountType{accountType},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list account transactions", slog.String("account_type", string(accountType)))
		return nil, fmt.Errorf("failed to list transactions for %s: %w", accountType, err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

func (s *ledgerEntryService) FindEntriesByReference(ctx context.Context, referenceType, referenceID string) ([]domain.LedgerEntry, error) {
	if referenceType == "" || referenceID == "" {
		return nil, fmt.Errorf("%w: reference type and id are required", apperrors.ErrValidation)
	}

	entries, err := s.ledgerRepo.FindEntries(ctx, domain.EntryFilter{
		ReferenceType: &referenceType,
		ReferenceID:   &referenceID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to look up reference",
			slog.String("reference_type", referenceType), slog.String("reference_id", referenceID))
		return nil, fmt.Errorf("failed to look up %s %s: %w", referenceType, referenceID, err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

// DeleteEntry removes a single row. It does not touch the other side of the
// journal entry; callers use it only to correct bad data.
func (s *ledgerEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	s.LogWarn(ctx, "Ledger entry deleted", slog.String("entry_id", entryID))
	return nil
}

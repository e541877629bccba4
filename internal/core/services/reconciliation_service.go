package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
)

type reconciliationRepository interface {
	portsrepo.LedgerReader
	portsrepo.LedgerWriter
}

type reconciliationService struct {
	BaseService
	ledgerRepo reconciliationRepository
}

// ReconciliationServiceOption is a functional option for configuring the reconciliation service
type ReconciliationServiceOption func(*reconciliationService)

// WithReconciliationClock overrides the time source used for reconciledAt.
func WithReconciliationClock(now func() time.Time) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates the reconciliation tracker
func NewReconciliationService(repo reconciliationRepository, options ...ReconciliationServiceOption) portssvc.ReconciliationSvc {
	svc := &reconciliationService{ledgerRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

func (s *reconciliationService) ListUnreconciled(ctx context.Context) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListUnreconciled(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unreconciled entries")
		return nil, fmt.Errorf("failed to list unreconciled entries: %w", err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

// MarkReconciled flags a row as reconciled now. Marking an already reconciled
// row again refreshes the timestamp.
func (s *reconciliationService) MarkReconciled(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.MarkReconciled(ctx, entryID, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark entry as reconciled", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to mark entry %s as reconciled: %w", entryID, err)
	}

	s.LogInfo(ctx, "Ledger entry reconciled",
		slog.String("entry_id", entryID),
		slog.String("document_number", entry.DocumentNumber))
	return entry, nil
}

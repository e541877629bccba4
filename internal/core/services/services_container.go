package services

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, chart *domain.ChartOfAccounts, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Chart: chart}

	postingOpts := []PostingServiceOption{WithDocumentNumberGenerator(repos.DocumentNumbers)}
	if repos.Publisher != nil {
		postingOpts = append(postingOpts, WithEventPublisher(repos.Publisher))
	}
	container.Posting = NewPostingService(chart, repos.LedgerRepo, postingOpts...)

	container.Recorder = NewBusinessEventRecorderService(chart, container.Posting,
		WithPaymentAccountByMethod(cfg.PaymentAccountByMethod))
	container.LedgerEntry = NewLedgerEntryService(chart, repos.LedgerRepo)
	container.Reconciliation = NewReconciliationService(repos.LedgerRepo)
	container.Reporting = NewReportingService(chart, repos.LedgerRepo)

	return container
}

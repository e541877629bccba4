package services

import "github.com/SscSPs/rental_ledger/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// Handlers and the event worker reach the ledger only through it.
type ServiceContainer struct {
	Chart          *domain.ChartOfAccounts
	Posting        PostingSvc
	Recorder       BusinessEventRecorderSvc
	LedgerEntry    LedgerEntrySvcFacade
	Reconciliation ReconciliationSvc
	Reporting      ReportingService
}

package pgsql

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres ledger store with the given
// document number source and optional event publisher.
func NewRepositoryProvider(dbPool *pgxpool.Pool, documents portsrepo.DocumentNumberGenerator, publisher portsrepo.EventPublisher) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		DocumentNumbers: documents,
		Publisher:       publisher,
	}
}

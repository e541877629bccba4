package repositories

// RepositoryProvider holds the storage-side dependencies needed by services.
type RepositoryProvider struct {
	LedgerRepo      LedgerRepositoryFacade
	DocumentNumbers DocumentNumberGenerator
	// Publisher is optional; nil disables journal-posted events.
	Publisher EventPublisher
}

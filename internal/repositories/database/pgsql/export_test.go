package pgsql

// SaveJournalEntryTx exposes the transaction-scoped insert to the external test package.
var SaveJournalEntryTx = (*PgxLedgerRepository).saveJournalEntryTx

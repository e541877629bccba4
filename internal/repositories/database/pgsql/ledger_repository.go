package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PgxLedgerRepository implements the ledger repository interfaces on the general_ledger table.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveJournalEntry inserts both rows of a journal entry in a single transaction.
func (r *PgxLedgerRepository) SaveJournalEntry(ctx context.Context, debit, credit domain.LedgerEntry) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		return r.saveJournalEntryTx(ctx, tx, debit, credit)
	})
}

// saveJournalEntryTx inserts both rows inside a caller-owned transaction.
func (r *PgxLedgerRepository) saveJournalEntryTx(ctx context.Context, tx pgx.Tx, debit, credit domain.LedgerEntry) error {
	insertSQL := `INSERT INTO general_ledger (` + models.LedgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	batch := &pgx.Batch{}
	for _, entry := range []domain.LedgerEntry{debit, credit} {
		m := mapping.ToModelLedgerEntry(entry)
		batch.Queue(insertSQL, m.InsertArgs()...)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %w: %s", apperrors.ErrPersistence, apperrors.ErrDuplicate, pgErr.Detail)
			}
			return fmt.Errorf("%w: failed to insert ledger row %d: %w", apperrors.ErrPersistence, i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%w: failed to close ledger insert batch: %w", apperrors.ErrPersistence, err)
	}
	return nil
}

// FindEntryByID retrieves a single ledger row.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + models.LedgerEntryColumns + ` FROM general_ledger WHERE id = $1;`

	var m models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(m.ScanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry", err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// FindEntriesByDocumentNumber retrieves the rows of one journal entry.
func (r *PgxLedgerRepository) FindEntriesByDocumentNumber(ctx context.Context, documentNumber string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + models.LedgerEntryColumns + `
		FROM general_ledger WHERE document_number = $1
		ORDER BY debit_amount DESC, id ASC;`
	return r.queryEntries(ctx, query, documentNumber)
}

// FindEntries retrieves every row matching the filter.
func (r *PgxLedgerRepository) FindEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	where := filterWhere(filter)
	query := `SELECT ` + models.LedgerEntryColumns + ` FROM general_ledger` + where.sql() +
		` ORDER BY transaction_date ASC, id ASC;`
	return r.queryEntries(ctx, query, where.args...)
}

// ListUnreconciled retrieves every unreconciled row.
func (r *PgxLedgerRepository) ListUnreconciled(ctx context.Context) ([]domain.LedgerEntry, error) {
	reconciled := false
	return r.FindEntries(ctx, domain.EntryFilter{Reconciled: &reconciled})
}

// ListEntries retrieves one page of rows using keyset pagination over (transaction_date, id).
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	cursor, err := pagination.DecodeOptional(nextToken)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	where := filterWhere(filter)
	if cursor != nil {
		where.add("(transaction_date, id) > (%s, %s)", cursor.TransactionDate, cursor.EntryID)
	}

	// Fetch one extra row to know whether another page exists.
	fetchLimit := limit + 1
	where.args = append(where.args, fetchLimit)
	query := fmt.Sprintf(`SELECT %s FROM general_ledger%s
		ORDER BY transaction_date ASC, id ASC
		LIMIT $%d;`, models.LedgerEntryColumns, where.sql(), len(where.args))

	entries, err := r.queryEntries(ctx, query, where.args...)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		encoded := pagination.EncodeToken(pagination.Cursor{TransactionDate: last.TransactionDate, EntryID: last.EntryID})
		token = &encoded
	}
	return entries, token, nil
}

// MarkReconciled flags a row as reconciled and returns it.
func (r *PgxLedgerRepository) MarkReconciled(ctx context.Context, entryID string, at time.Time) (*domain.LedgerEntry, error) {
	query := `UPDATE general_ledger SET reconciled = TRUE, reconciled_at = $2
		WHERE id = $1
		RETURNING ` + models.LedgerEntryColumns + `;`

	var m models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, entryID, at).Scan(m.ScanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPersistence, apperrors.NewAppError(500, "failed to reconcile ledger entry", err))
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// DeleteEntry removes a single row.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM general_ledger WHERE id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrPersistence, apperrors.NewAppError(500, "failed to delete ledger entry", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
	}
	return nil
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	var ms []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(m.ScanTargets()...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entries", err)
	}
	return mapping.ToDomainLedgerEntries(ms), nil
}

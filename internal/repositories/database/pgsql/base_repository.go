package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository gives pgx-backed repositories transaction helpers whose
// failures wrap apperrors.ErrPersistence.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %w", apperrors.ErrPersistence, err)
	}
	return tx, nil
}

func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %w", apperrors.ErrPersistence, err)
	}
	return nil
}

// Rollback is safe to defer: a transaction that was already committed is left alone.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: rollback transaction: %w", apperrors.ErrPersistence, err)
	}
	return nil
}

// InTx runs fn inside a transaction and commits when fn returns nil.
func (r *BaseRepository) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

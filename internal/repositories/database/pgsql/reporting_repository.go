package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// SumByAccount totals debits and credits per (transaction type, account type, code, name).
func (r *PgxLedgerRepository) SumByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.AccountTotals, error) {
	where := filterWhere(filter)
	query := `
		SELECT
			transaction_type,
			account_type,
			account_code,
			account_name,
			COALESCE(SUM(debit_amount), 0) AS total_debit,
			COALESCE(SUM(credit_amount), 0) AS total_credit
		FROM general_ledger` + where.sql() + `
		GROUP BY transaction_type, account_type, account_code, account_name
		ORDER BY account_code, transaction_type`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountTotals
	for rows.Next() {
		var row domain.AccountTotals
		var transactionType, accountType string

		if err := rows.Scan(
			&transactionType,
			&accountType,
			&row.AccountCode,
			&row.AccountName,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}

		row.TransactionType = domain.TransactionType(transactionType)
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.AccountTotals{}, nil
	}
	return result, nil
}

package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// whereBuilder accumulates SQL predicates and their positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(format string, values ...any) {
	placeholders := make([]any, len(values))
	for i, v := range values {
		w.args = append(w.args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(w.args))
	}
	w.clauses = append(w.clauses, fmt.Sprintf(format, placeholders...))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// filterWhere translates an EntryFilter into a where builder. Date bounds are inclusive.
func filterWhere(filter domain.EntryFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.From != nil {
		w.add("transaction_date >= %s", *filter.From)
	}
	if filter.To != nil {
		w.add("transaction_date <= %s", *filter.To)
	}
	if len(filter.TransactionTypes) > 0 {
		types := make([]string, len(filter.TransactionTypes))
		for i, t := range filter.TransactionTypes {
			types[i] = string(t)
		}
		w.add("transaction_type = ANY(%s)", types)
	}
	if len(filter.AccountTypes) > 0 {
		types := make([]string, len(filter.AccountTypes))
		for i, t := range filter.AccountTypes {
			types[i] = string(t)
		}
		w.add("account_type = ANY(%s)", types)
	}
	if filter.Reconciled != nil {
		w.add("reconciled = %s", *filter.Reconciled)
	}
	if filter.ReferenceType != nil {
		w.add("reference_type = %s", *filter.ReferenceType)
	}
	if filter.ReferenceID != nil {
		w.add("reference_id = %s", *filter.ReferenceID)
	}
	return w
}

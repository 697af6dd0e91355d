package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const queryTimeout = 3 * time.Second

// whereClause collects AND-ed conditions with numbered placeholders. Each
// condition format receives its placeholder index as %[1]d.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, len(w.args)))
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches s as a plain substring, case-insensitively.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// buildPagedQuery appends ORDER BY, LIMIT and OFFSET to a select over table.
// Without a limit every matching row is returned.
func buildPagedQuery(columns, table, orderBy string, w *whereClause, offset, limit *int) (string, []any) {
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s", columns, table, w.String(), orderBy)
	args := make([]any, len(w.args))
	copy(args, w.args)
	argIndex := len(args) + 1

	if limit != nil && *limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *limit)
		argIndex++
	}

	if offset != nil && *offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *offset)
	}

	return query, args
}

func countRows(db *sql.DB, table string, w *whereClause) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var total int
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s %s", table, w.String()), w.args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func queryRows[T any](db *sql.DB, query string, args []any, scan func(scanner) (T, error)) ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// filterPage runs the count and page queries shared by every Filter method.
func filterPage[T any](db *sql.DB, columns, table, orderBy string, w *whereClause, offset, limit *int, scan func(scanner) (T, error)) ([]T, int, error) {
	if offset != nil && *offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	total, err := countRows(db, table, w)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if offset != nil && *offset >= total {
		return []T{}, total, nil
	}

	query, args := buildPagedQuery(columns, table, orderBy, w, offset, limit)
	items, err := queryRows(db, query, args, scan)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return items, total, nil
}

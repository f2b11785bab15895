package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "marketplace/internal/config"
)

// querier is the subset of *sql.DB the repositories use.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ErrNotConnected is returned when a repository has no pool and ConnectDB
// has not run yet.
var ErrNotConnected = errors.New("database not connected")

func pick(db *sql.DB) (querier, error) {
	if db != nil {
		return db, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, ErrNotConnected
}

type scanner interface {
	Scan(dest ...any) error
}

// placeholders returns "?,?,?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

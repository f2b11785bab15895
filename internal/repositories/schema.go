package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// Tables every listing screen reads from.
var RequiredTables = []string{"products", "sellers", "orders", "order_items", "users"}

// SchemaRepository probes information_schema of the connected database.
type SchemaRepository struct {
	DB *sql.DB
}

func (r SchemaRepository) HasTable(ctx context.Context, table string) (bool, error) {
	q, err := pick(r.DB)
	if err != nil {
		return false, err
	}
	var name sql.NullString
	err = q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	return present(name, err)
}

func (r SchemaRepository) HasColumn(ctx context.Context, table, column string) (bool, error) {
	q, err := pick(r.DB)
	if err != nil {
		return false, err
	}
	var name sql.NullString
	err = q.QueryRowContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)
	return present(name, err)
}

// MissingTables lists which of tables the database does not have. It stops
// at the first connection error.
func (r SchemaRepository) MissingTables(ctx context.Context, tables ...string) ([]string, error) {
	missing := []string{}
	for _, t := range tables {
		ok, err := r.HasTable(ctx, t)
		if err != nil {
			return missing, err
		}
		if !ok {
			missing = append(missing, t)
		}
	}
	return missing, nil
}

// A missing row is an answer; a bad connection is an error.
func present(name sql.NullString, err error) (bool, error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	}
	return name.Valid && name.String != "", nil
}

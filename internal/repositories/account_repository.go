package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// AccountRepository looks up login credentials. Sellers live in their own
// table; shoppers and admins share users.
type AccountRepository struct {
	DB *sql.DB
}

func (r AccountRepository) FindByEmail(ctx context.Context, role, email string) (models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.Account{}, domain.ValidationError{Field: "email", Msg: "required"}
	}

	q, err := pick(r.DB)
	if err != nil {
		return models.Account{}, err
	}

	var (
		a   models.Account
		row *sql.Row
	)
	if role == RoleSeller {
		row = q.QueryRowContext(ctx,
			`SELECT id, full_name, email, password_hash, 'seller' FROM sellers WHERE LOWER(email)=? LIMIT 1`, email)
	} else {
		row = q.QueryRowContext(ctx,
			`SELECT id, full_name, email, password_hash, role FROM users WHERE LOWER(email)=? LIMIT 1`, email)
	}
	if err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.NotFoundError{Resource: "account", Err: err}
		}
		return a, fmt.Errorf("find account: %w", err)
	}
	return a, nil
}

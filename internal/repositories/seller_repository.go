package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/utils"
)

type SellerRepository struct {
	DB *sql.DB
}

// List loads all sellers in registration order.
func (r SellerRepository) List(ctx context.Context) ([]models.Seller, error) {
	q, err := pick(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, `
		SELECT
			id,
			full_name,
			COALESCE(company_name, ''),
			COALESCE(gstin, ''),
			email,
			COALESCE(category, ''),
			created_at
		FROM sellers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer rows.Close()

	out := []models.Seller{}
	for rows.Next() {
		var (
			s         models.Seller
			createdAt time.Time
		)
		if err := rows.Scan(&s.ID, &s.FullName, &s.CompanyName, &s.GSTIN, &s.Email, &s.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		s.CreatedAt = utils.FormatISO(createdAt)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sellers: %w", err)
	}
	return out, nil
}

// Delete removes a seller account.
func (r SellerRepository) Delete(ctx context.Context, id int64) error {
	q, err := pick(r.DB)
	if err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, `DELETE FROM sellers WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "seller"}
	}
	return nil
}

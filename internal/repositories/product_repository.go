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

type ProductRepository struct {
	DB *sql.DB
}

const productColumns = `
	id,
	seller_id,
	name,
	COALESCE(description, ''),
	COALESCE(category, ''),
	price,
	stock,
	COALESCE(rating, 0),
	created_at,
	deleted_at
`

// ListActive loads every product that is not soft-deleted, oldest first.
func (r ProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE deleted_at IS NULL ORDER BY id ASC`)
}

// ListDeletedBySeller loads a seller's soft-deleted products, most recently
// deleted first.
func (r ProductRepository) ListDeletedBySeller(ctx context.Context, sellerID int64) ([]models.Product, error) {
	if sellerID <= 0 {
		return nil, domain.ValidationError{Field: "seller_id", Msg: "invalid id"}
	}
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE seller_id=? AND deleted_at IS NOT NULL ORDER BY deleted_at DESC, id DESC`, sellerID)
}

func (r ProductRepository) list(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	q, err := pick(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

func scanProduct(s scanner) (models.Product, error) {
	var (
		p         models.Product
		createdAt time.Time
		deletedAt sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.SellerID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Price,
		&p.Stock,
		&p.Rating,
		&createdAt,
		&deletedAt,
	); err != nil {
		return p, fmt.Errorf("scan product: %w", err)
	}
	p.CreatedAt = utils.FormatISO(createdAt)
	p.DeletedAt = utils.FormatNullISO(deletedAt)
	return p, nil
}

// Restore clears deleted_at on one of the seller's products.
func (r ProductRepository) Restore(ctx context.Context, sellerID, id int64) error {
	n, err := r.restore(ctx, sellerID, []int64{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "deleted product"}
	}
	return nil
}

// RestoreMany restores several products and reports how many changed.
// Ids that are not deleted or belong to another seller are skipped.
func (r ProductRepository) RestoreMany(ctx context.Context, sellerID int64, ids []int64) (int64, error) {
	return r.restore(ctx, sellerID, ids)
}

func (r ProductRepository) restore(ctx context.Context, sellerID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]any, 0, len(ids)+2)
	args = append(args, time.Now().UTC(), sellerID)
	for _, id := range ids {
		args = append(args, id)
	}

	q, err := pick(r.DB)
	if err != nil {
		return 0, err
	}
	res, err := q.ExecContext(ctx,
		`UPDATE products SET deleted_at=NULL, updated_at=? WHERE seller_id=? AND deleted_at IS NOT NULL AND id IN (`+placeholders(len(ids))+`)`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("restore products: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("restore products: %w", err)
	}
	return n, nil
}

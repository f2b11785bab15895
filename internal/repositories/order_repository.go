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

type OrderRepository struct {
	DB *sql.DB
}

// ListBySeller loads orders containing the seller's products. Item count and
// total only cover the seller's own lines.
func (r OrderRepository) ListBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error) {
	if sellerID <= 0 {
		return nil, domain.ValidationError{Field: "seller_id", Msg: "invalid id"}
	}
	q, err := pick(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, `
		SELECT
			o.id,
			COALESCE(u.full_name, ''),
			o.status,
			COUNT(oi.id),
			COALESCE(SUM(oi.price * oi.quantity), 0),
			o.created_at
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN users u ON u.id = o.user_id
		WHERE p.seller_id = ?
		GROUP BY o.id, u.full_name, o.status, o.created_at
		ORDER BY o.created_at DESC, o.id DESC
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("query seller orders: %w", err)
	}
	defer rows.Close()

	out := []models.SellerOrder{}
	for rows.Next() {
		var (
			o         models.SellerOrder
			createdAt time.Time
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Status, &o.ItemCount, &o.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("scan seller order: %w", err)
		}
		o.CreatedAt = utils.FormatISO(createdAt)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seller orders: %w", err)
	}
	return out, nil
}

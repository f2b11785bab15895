package models

// Product is a catalog entry owned by a seller. CreatedAt and DeletedAt are
// ISO-8601 strings so listings can order them as text.
type Product struct {
	ID          int64   `json:"id"`
	SellerID    int64   `json:"seller_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"created_at"`
	DeletedAt   string  `json:"deleted_at,omitempty"`
}

// RestoreRequest carries the ids for a bulk restore.
type RestoreRequest struct {
	IDs []int64 `json:"ids"`
}

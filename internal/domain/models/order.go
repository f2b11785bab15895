package models

// SellerOrder is one customer order reduced to the lines a seller owns.
// Total only sums those lines.
type SellerOrder struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Status       string  `json:"status"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
	CreatedAt    string  `json:"created_at"`
}

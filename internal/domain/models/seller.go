package models

// Seller is a marketplace merchant as shown on the admin seller table.
type Seller struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	GSTIN       string `json:"gstin"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
}

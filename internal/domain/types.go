package domain

// ID is used across domain entities.
type ID int64

// Pagination describes the page a listing response carries. Page is 1-based
// as shown to users; PageSize is -1 when every row is on one page.
type Pagination struct {
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	PageCount int    `json:"pageCount"`
	Total     int    `json:"total"`
	View      string `json:"view"`
}

// RequestContext carries the authenticated caller when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}

// Package listing turns a fetched collection into the rows a listing screen
// renders: filter by category and search text, sort by a named key, then cut
// out one page. Everything here is pure and safe for concurrent use.
package listing

// PageSizeAll requests every item on a single page.
const PageSizeAll = -1

// SortKey names a registered ordering. The empty key keeps input order.
type SortKey string

// Criteria is the active category and text restriction.
type Criteria struct {
	Categories []string `json:"categories,omitempty"`
	SearchTerm string   `json:"search,omitempty"`
}

// IsEmpty reports whether the criteria restrict nothing.
func (c Criteria) IsEmpty() bool {
	return len(c.Categories) == 0 && c.SearchTerm == ""
}

// PageRequest selects a zero-based page. Size below 1 means "all".
type PageRequest struct {
	Index int `json:"pageIndex"`
	Size  int `json:"pageSize"`
}

// All reports whether the request asks for the whole collection.
func (p PageRequest) All() bool {
	return p.Size < 1
}

// Page is what a listing screen renders. Total counts the filtered
// collection before slicing; pagers must use it instead of len(Items).
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// PageCount returns how many pages of size hold total items.
func PageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	if size < 1 {
		return 1
	}
	return (total + size - 1) / size
}

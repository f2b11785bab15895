package listing

import (
	"slices"
	"strings"
)

// Fields tells a pipeline where to find the filterable parts of an item.
type Fields[T any] struct {
	Category   func(T) string
	Searchable func(T) []string
}

// Pipeline filters, sorts and pages one item type. It is immutable once
// built and may be shared between goroutines.
type Pipeline[T any] struct {
	fields Fields[T]
	sorts  map[SortKey]Comparator[T]
	keys   []SortKey
}

// Option registers sort keys on a pipeline under construction.
type Option[T any] func(*Pipeline[T])

// WithSort registers a single sort key.
func WithSort[T any](key SortKey, c Comparator[T]) Option[T] {
	return func(p *Pipeline[T]) {
		p.register(key, c)
	}
}

// WithSortPair registers an ascending key for c and a descending key for
// its mirror image.
func WithSortPair[T any](asc, desc SortKey, c Comparator[T]) Option[T] {
	return func(p *Pipeline[T]) {
		p.register(asc, c)
		p.register(desc, Descending(c))
	}
}

// New builds a pipeline for items exposing the given fields.
func New[T any](fields Fields[T], opts ...Option[T]) *Pipeline[T] {
	p := &Pipeline[T]{
		fields: fields,
		sorts:  map[SortKey]Comparator[T]{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline[T]) register(key SortKey, c Comparator[T]) {
	if key == "" || c == nil {
		return
	}
	if _, ok := p.sorts[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.sorts[key] = c
}

// Keys lists the registered sort keys in registration order.
func (p *Pipeline[T]) Keys() []SortKey {
	return slices.Clone(p.keys)
}

// HasSort reports whether key is registered.
func (p *Pipeline[T]) HasSort(key SortKey) bool {
	_, ok := p.sorts[key]
	return ok
}

// Filter keeps the items matching both the category set and the search
// term, in input order. A nil input yields an empty, non-nil slice.
func (p *Pipeline[T]) Filter(items []T, c Criteria) []T {
	out := make([]T, 0, len(items))
	if c.IsEmpty() {
		return append(out, items...)
	}

	term := strings.ToLower(c.SearchTerm)
	for _, it := range items {
		if p.inCategories(it, c.Categories) && p.matchesSearch(it, term) {
			out = append(out, it)
		}
	}
	return out
}

func (p *Pipeline[T]) inCategories(it T, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	var tag string
	if p.fields.Category != nil {
		tag = p.fields.Category(it)
	}
	return slices.Contains(categories, tag)
}

// term is already lowercased.
func (p *Pipeline[T]) matchesSearch(it T, term string) bool {
	if term == "" {
		return true
	}
	if p.fields.Searchable == nil {
		return false
	}
	for _, f := range p.fields.Searchable(it) {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy. Unknown or empty keys return the items
// in their original order.
func (p *Pipeline[T]) Sort(items []T, key SortKey) []T {
	out := make([]T, len(items))
	copy(out, items)

	c, ok := p.sorts[key]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, c)
	return out
}

// Paginate cuts one page out of items. Out of range pages are empty; Total
// is always len(items).
func (p *Pipeline[T]) Paginate(items []T, page PageRequest) Page[T] {
	return Paginate(items, page)
}

// Run filters, then sorts, then pages. The order matters: paging first would
// slice the wrong rows.
func (p *Pipeline[T]) Run(items []T, c Criteria, key SortKey, page PageRequest) Page[T] {
	return Paginate(p.Sort(p.Filter(items, c), key), page)
}

// RunState is Run driven by a State.
func (p *Pipeline[T]) RunState(items []T, s State) Page[T] {
	return p.Run(items, s.Criteria, s.Sort, s.Page)
}

// Paginate is the item-agnostic paging step.
func Paginate[T any](items []T, page PageRequest) Page[T] {
	total := len(items)
	if items == nil {
		items = []T{}
	}
	if page.All() {
		return Page[T]{Items: items[:total:total], Total: total}
	}

	idx := max(page.Index, 0)
	if idx >= PageCount(total, page.Size) {
		return Page[T]{Items: []T{}, Total: total}
	}
	start := idx * page.Size
	end := min(start+page.Size, total)
	return Page[T]{Items: items[start:end:end], Total: total}
}

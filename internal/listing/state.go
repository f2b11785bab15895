package listing

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// State is the selection a listing screen holds between requests. Every
// change to filtering, ordering or page size moves back to the first page;
// only WithPage moves the index.
type State struct {
	Criteria Criteria
	Sort     SortKey
	Page     PageRequest
}

// NewState starts on the first page with no filter and input order.
func NewState(pageSize int) State {
	return State{Page: PageRequest{Size: pageSize}}
}

func (s State) WithSearch(term string) State {
	s.Criteria.SearchTerm = term
	s.Page.Index = 0
	return s
}

func (s State) WithCategories(categories ...string) State {
	s.Criteria.Categories = slices.Clone(categories)
	s.Page.Index = 0
	return s
}

func (s State) WithSort(key SortKey) State {
	s.Sort = key
	s.Page.Index = 0
	return s
}

func (s State) WithPageSize(size int) State {
	s.Page.Size = size
	s.Page.Index = 0
	return s
}

func (s State) WithPage(index int) State {
	s.Page.Index = max(index, 0)
	return s
}

// Fingerprint identifies everything except the page index. Category order
// does not matter.
func (s State) Fingerprint() string {
	cats := slices.Clone(s.Criteria.Categories)
	slices.Sort(cats)

	d := xxhash.New()
	for _, c := range cats {
		_, _ = d.WriteString(c)
		_, _ = d.WriteString("\x1f")
	}
	_, _ = d.WriteString("\x1e")
	_, _ = d.WriteString(s.Criteria.SearchTerm)
	_, _ = d.WriteString("\x1e")
	_, _ = d.WriteString(string(s.Sort))
	_, _ = d.WriteString("\x1e")
	_, _ = d.WriteString(strconv.Itoa(s.Page.Size))
	return strconv.FormatUint(d.Sum64(), 36)
}

// Reconcile compares against the fingerprint a client saw last. A different
// view means the filter, sort or page size changed, so paging restarts.
func (s State) Reconcile(previous string) State {
	if previous != "" && previous != s.Fingerprint() {
		s.Page.Index = 0
	}
	return s
}

package listing

import (
	"fmt"
	"reflect"
	"slices"
	"testing"
)

type row struct {
	ID       int
	Name     string
	Company  string
	Category string
	Price    float64
	Created  string
}

const (
	priceAsc  SortKey = "price_asc"
	priceDesc SortKey = "price_desc"
	nameAsc   SortKey = "name_asc"
	nameDesc  SortKey = "name_desc"
	oldest    SortKey = "oldest"
	newest    SortKey = "newest"
)

func rowPipeline() *Pipeline[row] {
	return New(
		Fields[row]{
			Category:   func(r row) string { return r.Category },
			Searchable: func(r row) []string { return []string{r.Name, r.Company} },
		},
		WithSortPair(priceAsc, priceDesc, ByNumber(func(r row) float64 { return r.Price })),
		WithSortPair(nameAsc, nameDesc, ByString(func(r row) string { return r.Name })),
		WithSortPair(oldest, newest, ByDate(func(r row) string { return r.Created })),
	)
}

func ids(rows []row) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func sample() []row {
	return []row{
		{ID: 1, Name: "B", Category: "Books", Price: 30, Created: "2024-03-01T10:00:00Z"},
		{ID: 2, Name: "A", Category: "Toys", Price: 10, Created: "2024-01-15T09:30:00Z"},
		{ID: 3, Name: "C", Category: "Books", Price: 20, Created: "2024-02-20T18:45:00Z"},
	}
}

func TestRunPriceAscendingFirstPage(t *testing.T) {
	p := rowPipeline()
	page := p.Run(sample(), Criteria{}, priceAsc, PageRequest{Index: 0, Size: 2})

	if got := ids(page.Items); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("visible ids = %v, want [2 3]", got)
	}
	if page.Total != 3 {
		t.Fatalf("total = %d, want 3", page.Total)
	}
}

func TestRunSearchIsCaseInsensitive(t *testing.T) {
	p := rowPipeline()
	page := p.Run(sample(), Criteria{SearchTerm: "a"}, "", PageRequest{Index: 0, Size: 5})

	if got := ids(page.Items); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("visible ids = %v, want [2]", got)
	}
	if page.Total != 1 {
		t.Fatalf("total = %d, want 1", page.Total)
	}
}

func TestRunPageBeyondRangeIsEmpty(t *testing.T) {
	p := rowPipeline()
	page := p.Run(sample(), Criteria{}, "", PageRequest{Index: 5, Size: 2})

	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", page.Items)
	}
	if page.Total != 3 {
		t.Fatalf("total = %d, want 3", page.Total)
	}
}

func TestFilterNilInput(t *testing.T) {
	p := rowPipeline()
	out := p.Filter(nil, Criteria{SearchTerm: "x", Categories: []string{"Books"}})
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
	page := p.Run(nil, Criteria{}, priceAsc, PageRequest{Size: 10})
	if page.Items == nil || page.Total != 0 {
		t.Fatalf("unexpected page for nil input: %#v", page)
	}
}

func TestFilterCategoryMembershipIsExact(t *testing.T) {
	p := rowPipeline()
	got := ids(p.Filter(sample(), Criteria{Categories: []string{"Books"}}))
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("ids = %v, want [1 3]", got)
	}
	if got := p.Filter(sample(), Criteria{Categories: []string{"books"}}); len(got) != 0 {
		t.Fatalf("category match must be case-sensitive, got %v", ids(got))
	}
}

func TestFilterSearchesEverySearchableField(t *testing.T) {
	items := []row{
		{ID: 1, Name: "Alice", Company: "Acme Traders"},
		{ID: 2, Name: "Bob", Company: "Globex"},
	}
	got := ids(rowPipeline().Filter(items, Criteria{SearchTerm: "TRADERS"}))
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("ids = %v, want [1]", got)
	}
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	got := ids(rowPipeline().Filter(sample(), Criteria{Categories: []string{"Books", "Toys"}, SearchTerm: "c"}))
	if !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("ids = %v, want [3]", got)
	}
}

func TestFilterIsStableSubsequenceAndIdempotent(t *testing.T) {
	p := rowPipeline()
	items := generated(40)
	criteria := []Criteria{
		{},
		{SearchTerm: "1"},
		{Categories: []string{"c0", "c2"}},
		{Categories: []string{"c1"}, SearchTerm: "item-2"},
		{SearchTerm: "no such thing"},
	}
	for _, c := range criteria {
		once := p.Filter(items, c)
		if !isSubsequence(ids(once), ids(items)) {
			t.Fatalf("filter(%+v) is not a subsequence: %v", c, ids(once))
		}
		twice := p.Filter(once, c)
		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Fatalf("filter(%+v) not idempotent: %v vs %v", c, ids(once), ids(twice))
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := sample()
	before := slices.Clone(items)
	_ = rowPipeline().Sort(items, priceDesc)
	if !reflect.DeepEqual(items, before) {
		t.Fatalf("input mutated: %v", items)
	}
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	p := rowPipeline()
	for _, key := range []SortKey{"", "bogus"} {
		got := p.Sort(sample(), key)
		if !reflect.DeepEqual(ids(got), []int{1, 2, 3}) {
			t.Fatalf("Sort(%q) = %v, want input order", key, ids(got))
		}
	}
}

func TestSortIsStableForTies(t *testing.T) {
	items := []row{
		{ID: 1, Price: 5},
		{ID: 2, Price: 1},
		{ID: 3, Price: 5},
		{ID: 4, Price: 1},
		{ID: 5, Price: 5},
	}
	p := rowPipeline()
	if got := ids(p.Sort(items, priceAsc)); !reflect.DeepEqual(got, []int{2, 4, 1, 3, 5}) {
		t.Fatalf("asc = %v", got)
	}
	// ties keep input order in the descending direction too
	if got := ids(p.Sort(items, priceDesc)); !reflect.DeepEqual(got, []int{1, 3, 5, 2, 4}) {
		t.Fatalf("desc = %v", got)
	}
}

func TestSortMirrorWithoutTies(t *testing.T) {
	p := rowPipeline()
	items := generated(25)
	pairs := [][2]SortKey{{priceAsc, priceDesc}, {nameAsc, nameDesc}, {oldest, newest}}
	for _, pair := range pairs {
		asc := ids(p.Sort(items, pair[0]))
		desc := ids(p.Sort(items, pair[1]))
		slices.Reverse(asc)
		if !reflect.DeepEqual(asc, desc) {
			t.Fatalf("%s reversed != %s: %v vs %v", pair[0], pair[1], asc, desc)
		}
	}
}

func TestSortByStringIsLocaleAware(t *testing.T) {
	items := []row{
		{ID: 1, Name: "zebra"},
		{ID: 2, Name: "Émile"},
		{ID: 3, Name: "apple"},
		{ID: 4, Name: "Banana"},
	}
	got := ids(rowPipeline().Sort(items, nameAsc))
	if !reflect.DeepEqual(got, []int{3, 4, 2, 1}) {
		t.Fatalf("name order = %v, want [3 4 2 1]", got)
	}
}

func TestSortByDate(t *testing.T) {
	got := ids(rowPipeline().Sort(sample(), newest))
	if !reflect.DeepEqual(got, []int{1, 3, 2}) {
		t.Fatalf("newest = %v, want [1 3 2]", got)
	}
}

func TestPaginationCoversTheSet(t *testing.T) {
	p := rowPipeline()
	items := generated(23)
	want := ids(p.Sort(p.Filter(items, Criteria{}), priceAsc))

	for k := 1; k <= 25; k++ {
		var got []int
		pages := PageCount(len(want), k)
		for i := 0; i < pages; i++ {
			page := p.Run(items, Criteria{}, priceAsc, PageRequest{Index: i, Size: k})
			got = append(got, ids(page.Items)...)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("size %d: pages joined = %v, want %v", k, got, want)
		}
	}
}

func TestTotalIgnoresPageRequest(t *testing.T) {
	p := rowPipeline()
	items := generated(17)
	c := Criteria{Categories: []string{"c1", "c2"}}
	want := len(p.Filter(items, c))

	requests := []PageRequest{
		{Index: 0, Size: 1},
		{Index: 3, Size: 4},
		{Index: 99, Size: 5},
		{Index: 0, Size: PageSizeAll},
		{Index: -2, Size: 0},
	}
	for _, req := range requests {
		if got := p.Run(items, c, newest, req).Total; got != want {
			t.Fatalf("total for %+v = %d, want %d", req, got, want)
		}
	}
}

func TestPaginateAll(t *testing.T) {
	items := sample()
	page := Paginate(items, PageRequest{Index: 3, Size: PageSizeAll})
	if !reflect.DeepEqual(ids(page.Items), []int{1, 2, 3}) || page.Total != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
	// appending to the page must not write into the caller's backing array
	if cap(page.Items) != len(page.Items) {
		t.Fatalf("page items should be capacity-clipped")
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	page := Paginate(generated(7), PageRequest{Index: 2, Size: 3})
	if len(page.Items) != 1 || page.Items[0].ID != 7 {
		t.Fatalf("last page = %v, want [7]", ids(page.Items))
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct{ total, size, want int }{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, PageSizeAll, 1},
	}
	for _, tc := range cases {
		if got := PageCount(tc.total, tc.size); got != tc.want {
			t.Fatalf("PageCount(%d,%d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestKeysKeepRegistrationOrder(t *testing.T) {
	got := rowPipeline().Keys()
	want := []SortKey{priceAsc, priceDesc, nameAsc, nameDesc, oldest, newest}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestRunConcurrentCallers(t *testing.T) {
	p := rowPipeline()
	items := generated(50)
	want := ids(p.Run(items, Criteria{SearchTerm: "item"}, nameDesc, PageRequest{Index: 1, Size: 7}).Items)

	done := make(chan []int)
	for i := 0; i < 16; i++ {
		go func() {
			done <- ids(p.Run(items, Criteria{SearchTerm: "item"}, nameDesc, PageRequest{Index: 1, Size: 7}).Items)
		}()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Fatalf("concurrent run = %v, want %v", got, want)
		}
	}
}

// generated returns n rows with distinct prices, names and timestamps
// shuffled relative to their ids.
func generated(n int) []row {
	out := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		k := (i * 7) % (n + 1)
		out = append(out, row{
			ID:       i,
			Name:     fmt.Sprintf("item-%03d", k),
			Category: fmt.Sprintf("c%d", i%3),
			Price:    float64(k) * 1.5,
			Created:  fmt.Sprintf("2024-01-01T00:%02d:%02dZ", k/60, k%60),
		})
	}
	return out
}

func isSubsequence(sub, full []int) bool {
	j := 0
	for _, v := range full {
		if j < len(sub) && sub[j] == v {
			j++
		}
	}
	return j == len(sub)
}

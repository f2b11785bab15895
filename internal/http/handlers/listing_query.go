package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain"
	"marketplace/internal/listing"
	"marketplace/internal/services"
	"marketplace/internal/utils"
)

const maxPageSize = 200

// listQuery reads ?search=&category=&sort=&page=&pageSize=&view= into a
// listing state. page is 1-based in the URL. A view that no longer matches
// the parsed filter sends the client back to the first page.
func listQuery(c *gin.Context, screen services.Screen, categoryParams ...string) listing.State {
	return parseListQuery(c, screen, categoryParams...).Reconcile(c.Query("view"))
}

// parseListQuery is listQuery without the view check. Callers that pin
// the filter themselves must reconcile after pinning, so the reset decision
// and the returned view see the same state.
func parseListQuery(c *gin.Context, screen services.Screen, categoryParams ...string) listing.State {
	var raw []string
	for _, name := range categoryParams {
		raw = append(raw, c.QueryArray(name)...)
	}

	return listing.NewState(parsePageSize(c.Query("pageSize"), screen.DefaultPageSize)).
		WithSearch(strings.TrimSpace(c.Query("search"))).
		WithCategories(utils.SplitList(raw...)...).
		WithSort(screen.ParseSort(c.Query("sort"))).
		WithPage(parsePage(c.Query("page")) - 1)
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parsePageSize(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return listing.PageSizeAll
	}
	n, err := strconv.Atoi(raw)
	switch {
	case err != nil || n == 0:
		return fallback
	case n < 0:
		return listing.PageSizeAll
	default:
		return min(n, maxPageSize)
	}
}

// listResponse is the body every listing endpoint returns.
type listResponse[T any] struct {
	Items []T `json:"items"`
	domain.Pagination
}

func newListResponse[T any](res services.Result[T]) listResponse[T] {
	size := res.State.Page.Size
	if size < 1 {
		size = listing.PageSizeAll
	}
	return listResponse[T]{
		Items: res.Items,
		Pagination: domain.Pagination{
			Page:      res.State.Page.Index + 1,
			PageSize:  size,
			PageCount: listing.PageCount(res.Total, res.State.Page.Size),
			Total:     res.Total,
			View:      res.State.Fingerprint(),
		},
	}
}

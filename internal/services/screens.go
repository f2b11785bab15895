package services

import (
	"strings"

	"marketplace/internal/domain/models"
	"marketplace/internal/listing"
)

const (
	SortPriceAsc    listing.SortKey = "price_asc"
	SortPriceDesc   listing.SortKey = "price_desc"
	SortNameAsc     listing.SortKey = "name_asc"
	SortNameDesc    listing.SortKey = "name_desc"
	SortCategoryAsc listing.SortKey = "category_asc"
	SortCategoryDsc listing.SortKey = "category_desc"
	SortRatingAsc   listing.SortKey = "rating_asc"
	SortRatingDesc  listing.SortKey = "rating_desc"
	SortEmailAsc    listing.SortKey = "email_asc"
	SortEmailDesc   listing.SortKey = "email_desc"
	SortTotalAsc    listing.SortKey = "total_asc"
	SortTotalDesc   listing.SortKey = "total_desc"
	SortOldest      listing.SortKey = "oldest"
	SortNewest      listing.SortKey = "newest"
)

// One pipeline per item type; screens differ only in which keys they
// accept and what page size they start with.
var (
	ProductPipeline = listing.New(
		listing.Fields[models.Product]{
			Category:   func(p models.Product) string { return p.Category },
			Searchable: func(p models.Product) []string { return []string{p.Name} },
		},
		listing.WithSortPair(SortPriceAsc, SortPriceDesc, listing.ByNumber(func(p models.Product) float64 { return p.Price })),
		listing.WithSortPair(SortNameAsc, SortNameDesc, listing.ByString(func(p models.Product) string { return p.Name })),
		listing.WithSortPair(SortCategoryAsc, SortCategoryDsc, listing.ByString(func(p models.Product) string { return p.Category })),
		listing.WithSortPair(SortRatingAsc, SortRatingDesc, listing.ByNumber(func(p models.Product) float64 { return p.Rating })),
		listing.WithSortPair(SortOldest, SortNewest, listing.ByDate(func(p models.Product) string { return p.CreatedAt })),
	)

	SellerPipeline = listing.New(
		listing.Fields[models.Seller]{
			Category: func(s models.Seller) string { return s.Category },
			Searchable: func(s models.Seller) []string {
				return []string{s.FullName, s.CompanyName, s.GSTIN, s.Email}
			},
		},
		listing.WithSortPair(SortNameAsc, SortNameDesc, listing.ByString(func(s models.Seller) string { return s.FullName })),
		listing.WithSortPair(SortEmailAsc, SortEmailDesc, listing.ByString(func(s models.Seller) string { return s.Email })),
		listing.WithSortPair(SortOldest, SortNewest, listing.ByDate(func(s models.Seller) string { return s.CreatedAt })),
	)

	// Orders have no category; the status column plays that role.
	OrderPipeline = listing.New(
		listing.Fields[models.SellerOrder]{
			Category:   func(o models.SellerOrder) string { return o.Status },
			Searchable: func(o models.SellerOrder) []string { return []string{o.CustomerName, o.Status} },
		},
		listing.WithSortPair(SortTotalAsc, SortTotalDesc, listing.ByNumber(func(o models.SellerOrder) float64 { return o.Total })),
		listing.WithSortPair(SortOldest, SortNewest, listing.ByDate(func(o models.SellerOrder) string { return o.CreatedAt })),
	)
)

// Screen describes one listing screen.
type Screen struct {
	Name            string
	DefaultPageSize int
	Sorts           []listing.SortKey
	// Aliases maps the sort values older clients send (L2H, Name-A2Z, ...).
	Aliases map[string]listing.SortKey
}

var (
	StorefrontScreen = Screen{
		Name:            "products",
		DefaultPageSize: 12,
		Sorts:           []listing.SortKey{SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortRatingDesc, SortRatingAsc, SortNewest, SortOldest},
		Aliases:         map[string]listing.SortKey{"L2H": SortPriceAsc, "H2L": SortPriceDesc},
	}
	CategoryScreen = Screen{
		Name:            "category_products",
		DefaultPageSize: 12,
		Sorts:           StorefrontScreen.Sorts,
		Aliases:         StorefrontScreen.Aliases,
	}
	DeletedProductsScreen = Screen{
		Name:            "deleted_products",
		DefaultPageSize: 5,
		Sorts:           []listing.SortKey{SortPriceAsc, SortPriceDesc, SortCategoryAsc, SortCategoryDsc, SortNewest, SortOldest},
		Aliases: map[string]listing.SortKey{
			"L2H": SortPriceAsc, "H2L": SortPriceDesc,
			"A2Z": SortCategoryAsc, "Z2A": SortCategoryDsc,
		},
	}
	SellersScreen = Screen{
		Name:            "sellers",
		DefaultPageSize: 5,
		Sorts:           []listing.SortKey{SortNameAsc, SortNameDesc, SortEmailAsc, SortEmailDesc, SortOldest, SortNewest},
		Aliases: map[string]listing.SortKey{
			"Name-A2Z": SortNameAsc, "Name-Z2A": SortNameDesc,
			"Email-A2Z": SortEmailAsc, "Email-Z2A": SortEmailDesc,
			"Old-New": SortOldest, "New-Old": SortNewest,
		},
	}
	SellerOrdersScreen = Screen{
		Name:            "seller_orders",
		DefaultPageSize: 5,
		Sorts:           []listing.SortKey{SortTotalAsc, SortTotalDesc, SortNewest, SortOldest},
		Aliases:         map[string]listing.SortKey{"L2H": SortTotalAsc, "H2L": SortTotalDesc},
	}
)

// ParseSort resolves a raw sort value for the screen. Anything unknown maps
// to the empty key, which keeps the fetched order.
func (s Screen) ParseSort(raw string) listing.SortKey {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if key, ok := s.Aliases[raw]; ok {
		return key
	}
	key := listing.SortKey(strings.ToLower(raw))
	for _, k := range s.Sorts {
		if k == key {
			return key
		}
	}
	return ""
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/catalog"
	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/listing"
	"marketplace/internal/metrics"
	"marketplace/internal/repositories"
)

type fakeProducts struct {
	active  []models.Product
	deleted []models.Product
	err     error

	restored    []int64
	restoreMany []int64
}

func (f *fakeProducts) ListActive(context.Context) ([]models.Product, error) {
	return f.active, f.err
}

func (f *fakeProducts) ListDeletedBySeller(_ context.Context, sellerID int64) ([]models.Product, error) {
	if sellerID <= 0 {
		return nil, domain.ValidationError{Field: "seller_id"}
	}
	return f.deleted, f.err
}

func (f *fakeProducts) Restore(_ context.Context, _ int64, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.restored = append(f.restored, id)
	return nil
}

func (f *fakeProducts) RestoreMany(_ context.Context, _ int64, ids []int64) (int64, error) {
	f.restoreMany = ids
	return int64(len(ids)), f.err
}

func products() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Blue Kettle", Category: "Home & Kitchen", Price: 30, CreatedAt: "2024-03-01T00:00:00.000Z"},
		{ID: 2, Name: "Atlas", Category: "Books", Price: 10, CreatedAt: "2024-01-01T00:00:00.000Z"},
		{ID: 3, Name: "Chess Set", Category: "Toys & Games", Price: 20, CreatedAt: "2024-02-01T00:00:00.000Z"},
	}
}

func productIDs(items []models.Product) []int64 {
	out := []int64{}
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func newService(t *testing.T, src *fakeProducts) ListingService {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return ListingService{
		ProductRepo: src,
		Restorer:    src,
		Catalog:     cat,
		Metrics:     metrics.New(prometheus.NewRegistry()),
	}
}

func TestStorefrontRunsPipeline(t *testing.T) {
	svc := newService(t, &fakeProducts{active: products()})

	state := listing.NewState(2).WithSort(SortPriceAsc)
	res, err := svc.Storefront(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, productIDs(res.Items))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, state, res.State)
}

func TestStorefrontFetchErrorIsInternal(t *testing.T) {
	svc := newService(t, &fakeProducts{err: errors.New("connection refused")})

	_, err := svc.Storefront(context.Background(), listing.NewState(12))
	require.Error(t, err)
	assert.True(t, domain.IsInternal(err))
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestCategoryResolvesLink(t *testing.T) {
	svc := newService(t, &fakeProducts{active: products()})

	state := listing.NewState(12).WithCategories("Books")
	res, cat, err := svc.Category(context.Background(), "toys", state)
	require.NoError(t, err)
	assert.Equal(t, "Toys & Games", cat.Name)
	assert.Equal(t, []int64{3}, productIDs(res.Items))
	assert.Equal(t, []string{"Toys & Games"}, res.State.Criteria.Categories)

	_, _, err = svc.Category(context.Background(), "spaceships", state)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeletedProductsKeepsValidationErrors(t *testing.T) {
	svc := newService(t, &fakeProducts{deleted: products()})

	_, err := svc.DeletedProducts(context.Background(), 0, listing.NewState(5))
	assert.True(t, domain.IsValidation(err))

	res, err := svc.DeletedProducts(context.Background(), 7, listing.NewState(5).WithSort(SortCategoryAsc))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 3}, productIDs(res.Items))
}

func TestRestoreProducts(t *testing.T) {
	src := &fakeProducts{}
	svc := newService(t, src)

	_, err := svc.RestoreProducts(context.Background(), 7, []int64{4, 4, -1})
	assert.True(t, domain.IsValidation(err), "one distinct id is not a bulk restore")

	n, err := svc.RestoreProducts(context.Background(), 7, []int64{4, 5, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, []int64{4, 5}, src.restoreMany)

	require.NoError(t, svc.RestoreProduct(context.Background(), 7, 9))
	assert.Equal(t, []int64{9}, src.restored)
	assert.True(t, domain.IsValidation(svc.RestoreProduct(context.Background(), 7, 0)))
}

func TestRestoreProductNotFoundPassesThrough(t *testing.T) {
	svc := newService(t, &fakeProducts{err: domain.NotFoundError{Resource: "deleted product"}})
	err := svc.RestoreProduct(context.Background(), 7, 9)
	assert.True(t, domain.IsNotFound(err))
}

func TestSellersWithSQLMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM sellers").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "company_name", "gstin", "email", "category", "created_at"}).
			AddRow(1, "zoe", "Zed Co", "G1", "z@example.com", "Books", created).
			AddRow(2, "Adam", "Acme Traders", "G2", "a@example.com", "Toys", created.Add(time.Hour)).
			AddRow(3, "Émilie", "Traders Inc", "G3", "e@example.com", "Books", created.Add(2*time.Hour)))
	mock.ExpectExec("DELETE FROM sellers").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ListingService{SellerRepo: repositories.SellerRepository{DB: db}}
	state := listing.NewState(listing.PageSizeAll).WithSearch("TRADERS").WithSort(SortNameAsc)
	res, err := svc.Sellers(context.Background(), state)
	require.NoError(t, err)

	names := []string{}
	for _, s := range res.Items {
		names = append(names, s.FullName)
	}
	assert.Equal(t, []string{"Adam", "Émilie"}, names)
	assert.Equal(t, 2, res.Total)

	require.NoError(t, svc.DeleteSeller(context.Background(), 2))
	assert.True(t, domain.IsValidation(svc.DeleteSeller(context.Background(), 0)))
	require.NoError(t, mock.ExpectationsWereMet())
}

type fakeOrders []models.SellerOrder

func (f fakeOrders) ListBySeller(context.Context, int64) ([]models.SellerOrder, error) {
	return f, nil
}

func TestSellerOrdersFilterByStatus(t *testing.T) {
	orders := fakeOrders{
		{ID: 1, Status: "Shipped", Total: 40, CreatedAt: "2024-01-01T00:00:00.000Z"},
		{ID: 2, Status: "Processing", Total: 15, CreatedAt: "2024-01-02T00:00:00.000Z"},
		{ID: 3, Status: "Shipped", Total: 25, CreatedAt: "2024-01-03T00:00:00.000Z"},
	}
	svc := ListingService{OrderRepo: orders}

	state := listing.NewState(5).WithCategories("Shipped").WithSort(SortTotalDesc)
	res, err := svc.SellerOrders(context.Background(), 7, state)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(1), res.Items[0].ID)
	assert.Equal(t, int64(3), res.Items[1].ID)
}

func TestScreenParseSort(t *testing.T) {
	cases := []struct {
		screen Screen
		raw    string
		want   listing.SortKey
	}{
		{StorefrontScreen, "L2H", SortPriceAsc},
		{StorefrontScreen, " PRICE_DESC ", SortPriceDesc},
		{StorefrontScreen, "email_asc", ""},
		{StorefrontScreen, "", ""},
		{SellerOrdersScreen, "H2L", SortTotalDesc},
		{SellersScreen, "New-Old", SortNewest},
		{DeletedProductsScreen, "Z2A", SortCategoryDsc},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.screen.ParseSort(tc.raw), "%s %q", tc.screen.Name, tc.raw)
	}
}

func TestScreenSortsAreRegistered(t *testing.T) {
	check := func(name string, keys []listing.SortKey, has func(listing.SortKey) bool) {
		for _, k := range keys {
			assert.True(t, has(k), "%s: %s not registered", name, k)
		}
	}
	check("products", StorefrontScreen.Sorts, ProductPipeline.HasSort)
	check("deleted", DeletedProductsScreen.Sorts, ProductPipeline.HasSort)
	check("sellers", SellersScreen.Sorts, SellerPipeline.HasSort)
	check("orders", SellerOrdersScreen.Sorts, OrderPipeline.HasSort)
}

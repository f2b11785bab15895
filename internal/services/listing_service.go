package services

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"marketplace/internal/catalog"
	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/listing"
	"marketplace/internal/metrics"
	"marketplace/internal/utils"
)

type ProductSource interface {
	ListActive(ctx context.Context) ([]models.Product, error)
	ListDeletedBySeller(ctx context.Context, sellerID int64) ([]models.Product, error)
}

type ProductRestorer interface {
	Restore(ctx context.Context, sellerID, id int64) error
	RestoreMany(ctx context.Context, sellerID int64, ids []int64) (int64, error)
}

type SellerStore interface {
	List(ctx context.Context) ([]models.Seller, error)
	Delete(ctx context.Context, id int64) error
}

type OrderSource interface {
	ListBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error)
}

// Result is a rendered page plus the state that produced it.
type Result[T any] struct {
	listing.Page[T]
	State listing.State
}

// ListingService fetches a collection and hands it to the matching
// pipeline. Only the fetch touches the context; the pipeline never blocks.
type ListingService struct {
	ProductRepo ProductSource
	Restorer    ProductRestorer
	SellerRepo  SellerStore
	OrderRepo   OrderSource
	Catalog     *catalog.Catalog
	Metrics     *metrics.Collector

	RequestID string
}

// WithRequestID returns a copy that tags its log lines with id.
func (s ListingService) WithRequestID(id string) ListingService {
	s.RequestID = id
	return s
}

func (s ListingService) Storefront(ctx context.Context, state listing.State) (Result[models.Product], error) {
	items, err := s.ProductRepo.ListActive(ctx)
	if err != nil {
		return Result[models.Product]{}, domain.InternalError{Msg: "failed to load products", Err: err}
	}
	return run(s, StorefrontScreen, ProductPipeline, items, state), nil
}

// Category lists the storefront restricted to the category behind link.
// Any category filter in state is replaced.
func (s ListingService) Category(ctx context.Context, link string, state listing.State) (Result[models.Product], catalog.Category, error) {
	if s.Catalog == nil {
		return Result[models.Product]{}, catalog.Category{}, domain.InternalError{Msg: "category catalog not loaded"}
	}
	cat, ok := s.Catalog.ByLink(link)
	if !ok {
		return Result[models.Product]{}, cat, domain.NotFoundError{Resource: "category"}
	}
	items, err := s.ProductRepo.ListActive(ctx)
	if err != nil {
		return Result[models.Product]{}, cat, domain.InternalError{Msg: "failed to load products", Err: err}
	}
	state.Criteria.Categories = []string{cat.Name}
	return run(s, CategoryScreen, ProductPipeline, items, state), cat, nil
}

func (s ListingService) DeletedProducts(ctx context.Context, sellerID int64, state listing.State) (Result[models.Product], error) {
	items, err := s.ProductRepo.ListDeletedBySeller(ctx, sellerID)
	if err != nil {
		return Result[models.Product]{}, wrapFetch(err, "failed to load deleted products")
	}
	return run(s, DeletedProductsScreen, ProductPipeline, items, state), nil
}

func (s ListingService) Sellers(ctx context.Context, state listing.State) (Result[models.Seller], error) {
	items, err := s.SellerRepo.List(ctx)
	if err != nil {
		return Result[models.Seller]{}, domain.InternalError{Msg: "failed to load sellers", Err: err}
	}
	return run(s, SellersScreen, SellerPipeline, items, state), nil
}

func (s ListingService) SellerOrders(ctx context.Context, sellerID int64, state listing.State) (Result[models.SellerOrder], error) {
	items, err := s.OrderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return Result[models.SellerOrder]{}, wrapFetch(err, "failed to load orders")
	}
	return run(s, SellerOrdersScreen, OrderPipeline, items, state), nil
}

func (s ListingService) RestoreProduct(ctx context.Context, sellerID, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if err := s.Restorer.Restore(ctx, sellerID, id); err != nil {
		return wrapFetch(err, "failed to restore product")
	}
	utils.LogEvent(s.RequestID, "listing", "restore_product", "product restored",
		zap.Int64("seller_id", sellerID), zap.Int64("product_id", id))
	return nil
}

// RestoreProducts restores a selection of deleted products. A single id goes
// through RestoreProduct; bulk restore needs at least two distinct ids.
func (s ListingService) RestoreProducts(ctx context.Context, sellerID int64, ids []int64) (int64, error) {
	clean := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !slices.Contains(clean, id) {
			clean = append(clean, id)
		}
	}
	if len(clean) < 2 {
		return 0, domain.ValidationError{Field: "ids", Msg: "select 2 or more products to restore"}
	}
	n, err := s.Restorer.RestoreMany(ctx, sellerID, clean)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to restore products", Err: err}
	}
	utils.LogEvent(s.RequestID, "listing", "restore_products", "products restored",
		zap.Int64("seller_id", sellerID), zap.Int("requested", len(clean)), zap.Int64("restored", n))
	return n, nil
}

func (s ListingService) DeleteSeller(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if err := s.SellerRepo.Delete(ctx, id); err != nil {
		return wrapFetch(err, "failed to delete seller")
	}
	utils.LogEvent(s.RequestID, "listing", "delete_seller", "seller deleted", zap.Int64("seller_id", id))
	return nil
}

func run[T any](s ListingService, screen Screen, p *listing.Pipeline[T], items []T, state listing.State) Result[T] {
	page := p.RunState(items, state)
	s.Metrics.ObserveListing(screen.Name, string(state.Sort), page.Total)
	utils.L().Debug("listing run",
		zap.String("request_id", s.RequestID),
		zap.String("screen", screen.Name),
		zap.Int("fetched", len(items)),
		zap.Int("matched", page.Total),
		zap.Int("visible", len(page.Items)),
	)
	return Result[T]{Page: page, State: state}
}

// wrapFetch keeps domain errors from the store and hides everything else.
func wrapFetch(err error, msg string) error {
	if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsConflict(err) {
		return err
	}
	return domain.InternalError{Msg: msg, Err: err}
}

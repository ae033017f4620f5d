package services

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// Catalog is the upstream surface the product service depends on.
type Catalog interface {
	FetchAllProducts(ctx context.Context) ([]models.Product, error)
	FetchByCategory(ctx context.Context, category string) ([]models.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
	FetchByID(ctx context.Context, id int) (models.Product, error)
}

// ProductService is the server-side passthrough over the upstream catalog.
// Listing failures degrade to empty results instead of surfacing to the browser.
type ProductService struct {
	catalog  Catalog
	pageSize int
	logger   *zap.Logger
}

// NewProductService wires the service to an upstream catalog.
func NewProductService(upstream Catalog, pageSize int, logger *zap.Logger) *ProductService {
	if pageSize < 1 || pageSize > models.MaxPageSize {
		pageSize = models.DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{catalog: upstream, pageSize: pageSize, logger: logger}
}

// PageSize is the session page size applied when a request does not carry one.
func (s *ProductService) PageSize() int {
	return s.pageSize
}

// GetProducts fetches the (category-scoped) list upstream, applies the search filter and pages it.
// Any upstream failure yields an empty listing.
func (s *ProductService) GetProducts(ctx context.Context, state models.FilterState) models.ProductListResponse {
	state = state.Normalize(s.pageSize)

	var (
		products []models.Product
		err      error
	)
	if state.IsAllCategories() {
		products, err = s.catalog.FetchAllProducts(ctx)
	} else {
		products, err = s.catalog.FetchByCategory(ctx, state.Category)
	}
	if err != nil {
		s.logger.Error("❌ Error fetching products",
			zap.String("category", state.Category),
			zap.Error(err),
		)
		return models.EmptyProductList(state.Page, state.PageSize, s.GetCategories(ctx))
	}

	filtered := catalog.Filter(products, models.AllCategories, state.Search)
	page := catalog.Paginate(filtered, state.Page, state.PageSize)

	return models.ProductListResponse{
		Products:    page.Items,
		TotalCount:  len(filtered),
		PageSize:    state.PageSize,
		CurrentPage: state.Page,
		Categories:  s.GetCategories(ctx),
	}
}

// GetProductByID fetches one product freshly from upstream.
func (s *ProductService) GetProductByID(ctx context.Context, id int) (models.Product, error) {
	product, err := s.catalog.FetchByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidID) {
			s.logger.Error("❌ Error fetching product", zap.Int("id", id), zap.Error(err))
		}
		return models.Product{}, err
	}
	return product, nil
}

// GetCategories returns the category names, first entry "all". Failures degrade to just "all".
func (s *ProductService) GetCategories(ctx context.Context) []string {
	categories, err := s.catalog.FetchCategories(ctx)
	if err != nil {
		s.logger.Error("❌ Error fetching categories", zap.Error(err))
		return []string{models.AllCategories}
	}
	return categories
}

// Storefront is the data one page load needs: the loaded catalog snapshot and the categories.
type Storefront struct {
	Store      *catalog.Store
	Categories []string
}

// LoadStorefront fetches the product snapshot and the categories concurrently.
// Each fetch completes independently; a failure of one never blocks the other.
func (s *ProductService) LoadStorefront(ctx context.Context) Storefront {
	store := catalog.NewStore()
	categories := []string{models.AllCategories}

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.fill(ctx, store)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		fetched := s.GetCategories(ctx)
		mu.Lock()
		defer mu.Unlock()
		categories = fetched
	}()

	wg.Wait()

	return Storefront{Store: store, Categories: categories}
}

// LoadCatalog fetches the product snapshot alone, for fragment requests that do not need categories.
func (s *ProductService) LoadCatalog(ctx context.Context) *catalog.Store {
	store := catalog.NewStore()
	s.fill(ctx, store)
	return store
}

func (s *ProductService) fill(ctx context.Context, store *catalog.Store) {
	products, err := s.catalog.FetchAllProducts(ctx)
	if err != nil {
		s.logger.Error("❌ Error loading products", zap.Error(err))
		store.Fail(err)
		return
	}
	store.Load(products)
}

package catalog

import (
	"sync"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// Store holds the product snapshot fetched for one page load.
// It is the source of truth the filter pipeline reads from.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	loaded   bool
	err      error
}

// NewStore returns an empty, unloaded store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the snapshot. A copy of products is kept.
func (s *Store) Load(products []models.Product) {
	snapshot := make([]models.Product, len(products))
	copy(snapshot, products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snapshot
	s.loaded = true
	s.err = nil
}

// Fail records that the snapshot could not be fetched.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.loaded = false
	s.err = err
}

// Err returns the fetch failure recorded by Fail, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loaded reports whether a snapshot is present.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns the snapshot. Callers must not mutate it.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Find returns the product with id from the snapshot.
func (s *Store) Find(id int) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Result is the outcome of running the filter and pagination steps over the snapshot.
type Result struct {
	Filter models.FilterState
	Page   Page
	Window Window
}

// Query filters the snapshot, clamps the requested page into range and paginates.
func (s *Store) Query(state models.FilterState) Result {
	state = state.Normalize(state.PageSize)
	filtered := Filter(s.Products(), state.Category, state.Search)
	total := TotalPages(len(filtered), state.PageSize)
	state.Page = ClampPage(state.Page, total)

	page := Paginate(filtered, state.Page, state.PageSize)
	return Result{
		Filter: state,
		Page:   page,
		Window: NewWindow(state.Page, total),
	}
}

package views

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const (
	EmptyMessage     = "No products found."
	LoadErrorMessage = "Error loading products. Please try again."
)

// Grid is the product grid fragment plus its pagination bar.
type Grid struct {
	Cards      []ProductCard
	Pagination Pagination
	State      models.FilterState
	TotalCount int
	// Alert replaces the cards when there is nothing to show.
	Alert      string
	AlertLevel string
}

// NewGrid renders the current page of a catalog query. A store that failed to load
// yields the error alert instead of the empty-result alert.
func NewGrid(store *catalog.Store, state models.FilterState) Grid {
	state = state.Normalize(state.PageSize)
	if !store.Loaded() {
		return Grid{State: state, Alert: LoadErrorMessage, AlertLevel: "danger"}
	}

	res := store.Query(state)
	g := Grid{
		State:      res.Filter,
		TotalCount: res.Page.TotalCount,
		Pagination: NewPagination(res.Window, res.Filter),
	}
	if len(res.Page.Items) == 0 {
		g.Alert = EmptyMessage
		g.AlertLevel = "info"
		return g
	}
	g.Cards = make([]ProductCard, 0, len(res.Page.Items))
	search := NewHighlighter(res.Filter.Search)
	for _, p := range res.Page.Items {
		g.Cards = append(g.Cards, NewProductCard(p, search))
	}
	return g
}

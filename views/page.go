package views

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// CategoryOption is one entry of the category selector.
type CategoryOption struct {
	Value    string
	Label    string
	Selected bool
}

// Page is the full storefront document.
type Page struct {
	Title      string
	Categories []CategoryOption
	State      models.FilterState
	Grid       Grid
	Cart       CartPanel
	PageSize   int
}

// NewCategoryOptions labels each category with its first letter capitalised.
func NewCategoryOptions(categories []string, selected string) []CategoryOption {
	if selected == "" {
		selected = models.AllCategories
	}
	opts := make([]CategoryOption, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, CategoryOption{Value: c, Label: CapitalizeFirst(c), Selected: c == selected})
	}
	return opts
}

// NewPage assembles the storefront from the loaded catalog, the category list and the cart.
func NewPage(store *catalog.Store, categories []string, state models.FilterState, c models.Cart) Page {
	grid := NewGrid(store, state)
	return Page{
		Title:      "Products",
		Categories: NewCategoryOptions(categories, grid.State.Category),
		State:      grid.State,
		Grid:       grid,
		Cart:       NewCartPanel(c),
		PageSize:   grid.State.PageSize,
	}
}

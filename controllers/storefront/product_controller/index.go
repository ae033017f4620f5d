package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

// Index renders the full storefront page for the category, search and page in the query.
func (ctl *Controller) Index(c *gin.Context) {
	state := ctl.parseFilterState(c)

	sf := ctl.products.LoadStorefront(c.Request.Context())
	store := ctl.openCart(c, nil)

	page := views.NewPage(sf.Store, sf.Categories, state, store.Cart())
	ctl.html(c, http.StatusOK, views.IndexTemplate, page)
}

// Grid renders only the product grid and pagination fragment.
func (ctl *Controller) Grid(c *gin.Context) {
	markup, err := ctl.RenderGrid(c, ctl.parseFilterState(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products
// @Description Proxies the upstream catalog with category, search and pagination applied server-side. Upstream failures return an empty listing.
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param category query string false "Category name or all" default(all)
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} models.ProductListResponse
// @Router /Products/GetProducts [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	state := ctl.parseFilterState(c)
	c.JSON(http.StatusOK, ctl.products.GetProducts(c.Request.Context(), state))
}

// GetCategories godoc
// @Summary List categories
// @Description Category names with "all" first. Upstream failures return just "all".
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Router /Products/GetCategories [get]
func (ctl *Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.products.GetCategories(c.Request.Context()))
}

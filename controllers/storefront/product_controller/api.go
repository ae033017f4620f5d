package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// ListProductsApi godoc
// @Summary List products (API envelope)
// @Description Same listing as /Products/GetProducts wrapped in the standard response envelope
// @Tags api
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param category query string false "Category name or all"
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 429 {object} models.ApiResponse
// @Router /api/ProductsApi [get]
func (ctl *Controller) ListProductsApi(c *gin.Context) {
	state := ctl.parseFilterState(c)
	res := ctl.products.GetProducts(c.Request.Context(), state)

	meta := &models.Pagination{
		Page:       res.CurrentPage,
		Limit:      res.PageSize,
		Total:      res.TotalCount,
		TotalPages: catalog.TotalPages(res.TotalCount, res.PageSize),
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", res.Products, meta))
}

// GetProductApi godoc
// @Summary Get a product (API envelope)
// @Tags api
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/ProductsApi/{id} [get]
func (ctl *Controller) GetProductApi(c *gin.Context) {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		status, msg := StatusFor(err)
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	product, err := ctl.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		status, msg := StatusFor(err)
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}

func formatToken(token uint64) string {
	return strconv.FormatUint(token, 10)
}

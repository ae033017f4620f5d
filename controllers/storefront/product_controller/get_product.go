package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// GetProduct godoc
// @Summary Get a product
// @Description Fetches one product freshly from upstream
// @Tags products
// @Produce json
// @Param id query int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /Products/GetProduct [get]
func (ctl *Controller) GetProduct(c *gin.Context) {
	id, err := parseProductID(c.Query("id"))
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

	c.JSON(http.StatusOK, product)
}

// Detail godoc
// @Summary Product detail overlay
// @Description Renders the overlay fragment from a fresh fetch. A response overtaken by a newer request from the same browser is answered 409.
// @Tags products
// @Produce html
// @Param id query int true "Product ID"
// @Success 200 {string} string "HTML fragment"
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string "superseded"
// @Failure 502 {string} string
// @Router /Products/Detail [get]
func (ctl *Controller) Detail(c *gin.Context) {
	id, err := parseProductID(c.Query("id"))
	if err != nil {
		c.String(http.StatusBadRequest, DetailErrorMessage)
		return
	}

	markup, token, err := ctl.RenderDetail(c, id)
	c.Header(DetailTokenHeader, formatToken(token))
	if err != nil {
		status, msg := StatusFor(err)
		if status != http.StatusConflict {
			ctl.logger.Warn("⚠️ detail failed", zap.Int("id", id), zap.Int("status", status), zap.Error(err))
			msg = DetailErrorMessage
		}
		c.String(status, msg)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

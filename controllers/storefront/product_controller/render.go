package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

// RenderGrid loads a fresh catalog snapshot and renders the grid fragment for state.
func (ctl *Controller) RenderGrid(c *gin.Context, state models.FilterState) (string, error) {
	store := ctl.products.LoadCatalog(c.Request.Context())
	markup, err := ctl.renderer.RenderString(views.GridTemplate, views.NewGrid(store, state.Normalize(ctl.products.PageSize())))
	if err != nil {
		ctl.logger.Error("❌ grid render failed", zap.Error(err))
	}
	return markup, err
}

// RenderDetail fetches the product freshly and renders the overlay, unless a newer
// detail request from the same browser started while this one was in flight.
func (ctl *Controller) RenderDetail(c *gin.Context, id int) (string, uint64, error) {
	key := middleware.BrowserID(c)
	if key == "" {
		key = c.ClientIP()
	}
	token := ctl.tokens.Begin(key)

	product, err := ctl.products.GetProductByID(c.Request.Context(), id)
	if !ctl.tokens.IsCurrent(key, token) {
		ctl.logger.Debug("detail response superseded",
			zap.Int("id", id),
			zap.String("token", strconv.FormatUint(token, 10)),
		)
		return "", token, ErrSuperseded
	}
	if err != nil {
		return "", token, err
	}

	markup, err := ctl.renderer.RenderString(views.DetailTemplate, views.NewDetail(product, token))
	if err != nil {
		ctl.logger.Error("❌ detail render failed", zap.Int("id", id), zap.Error(err))
	}
	return markup, token, err
}

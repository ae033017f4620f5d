package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

const EmptyCartCheckoutMessage = "Your cart is empty!"

// Controller serves the cart page and the checkout stub.
type Controller struct {
	renderer *views.Renderer
	carts    cart.Opener
	logger   *zap.Logger
}

func New(renderer *views.Renderer, carts cart.Opener, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{renderer: renderer, carts: carts, logger: logger}
}

// GetCart godoc
// @Summary Show the cart
// @Description Renders the cart page, or the cart summary when JSON is requested
// @Tags cart
// @Produce html,json
// @Success 200 {object} models.CartSummary
// @Router /Cart [get]
func (ctl *Controller) GetCart(c *gin.Context) {
	store := ctl.carts.Open(c.Request.Context(), c.Writer, c.Request, middleware.BrowserID(c), nil)

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, store.Summary())
		return
	}

	markup, err := ctl.renderer.RenderString(views.CartPageTemplate, views.NewCartPanel(store.Cart()))
	if err != nil {
		ctl.logger.Error("❌ cart render failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

// Checkout godoc
// @Summary Checkout stub
// @Description Reports the cart total. No order is placed and nothing is charged.
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Router /Cart/Checkout [post]
func (ctl *Controller) Checkout(c *gin.Context) {
	store := ctl.carts.Open(c.Request.Context(), c.Writer, c.Request, middleware.BrowserID(c), nil)

	if store.TotalItemCount() == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, EmptyCartCheckoutMessage))
		return
	}

	msg := "Checkout functionality would be implemented here. Total: " + views.Money(store.Total())
	c.JSON(http.StatusOK, models.SuccessResponse(c, msg, store.Summary()))
}

package action_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/product_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

var errUnknownKind = errors.New("unknown action kind")

// Controller dispatches storefront actions through a typed table.
type Controller struct {
	products *services.ProductService
	pages    *product_controller.Controller
	renderer *views.Renderer
	carts    cart.Opener
	logger   *zap.Logger
	handlers map[ActionKind]ActionHandler
}

func New(products *services.ProductService, pages *product_controller.Controller, renderer *views.Renderer, carts cart.Opener, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctl := &Controller{products: products, pages: pages, renderer: renderer, carts: carts, logger: logger}
	ctl.handlers = map[ActionKind]ActionHandler{
		KindView:           ctl.view,
		KindAddToCart:      ctl.addToCart,
		KindRemove:         ctl.remove,
		KindUpdateQuantity: ctl.updateQuantity,
		KindPageChange:     ctl.pageChange,
	}
	return ctl
}

// Kinds lists the registered action kinds.
func (ctl *Controller) Kinds() []ActionKind {
	kinds := make([]ActionKind, 0, len(ctl.handlers))
	for k := range ctl.handlers {
		kinds = append(kinds, k)
	}
	return kinds
}

// Dispatch godoc
// @Summary Perform a storefront action
// @Description Runs view, add-to-cart, remove, update-quantity or page-change and returns the re-rendered pieces
// @Tags storefront
// @Accept json
// @Produce json
// @Param action body ActionRequest true "Action"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Failure 507 {object} models.ApiResponse
// @Router /Storefront/Actions [post]
func (ctl *Controller) Dispatch(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid action payload"))
		return
	}

	handler, ok := ctl.handlers[req.Kind]
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, errors.Wrapf(errUnknownKind, "%q", req.Kind).Error()))
		return
	}

	recorder := &cart.Recorder{}
	a := &action{
		gin:      c,
		ctx:      c.Request.Context(),
		recorder: recorder,
		cart:     ctl.carts.Open(c.Request.Context(), c.Writer, c.Request, middleware.BrowserID(c), recorder),
	}

	resp, err := handler(a, req)
	if err != nil {
		status, msg := product_controller.StatusFor(err)
		if status >= http.StatusInternalServerError {
			ctl.logger.Error("❌ action failed", zap.String("kind", string(req.Kind)), zap.Error(err))
		}
		if req.Kind == KindView && status != http.StatusConflict {
			msg = product_controller.DetailErrorMessage
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	resp.Kind = req.Kind
	c.JSON(http.StatusOK, resp)
}

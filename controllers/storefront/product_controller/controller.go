package product_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

const (
	DetailErrorMessage    = "Error loading product details. Please try again."
	SupersededMessage     = "superseded"
	CartSaveFailedMessage = "Could not save your cart. Please try again."
	DetailTokenHeader     = "X-Detail-Token"
)

// ErrSuperseded means a newer detail request from the same browser began first.
var ErrSuperseded = errors.New("detail request superseded")

// Controller serves the product pages, fragments and JSON endpoints.
type Controller struct {
	products *services.ProductService
	renderer *views.Renderer
	carts    cart.Opener
	tokens   *cache.DetailTokens
	logger   *zap.Logger
}

func New(products *services.ProductService, renderer *views.Renderer, carts cart.Opener, tokens *cache.DetailTokens, logger *zap.Logger) *Controller {
	if tokens == nil {
		tokens = cache.NewDetailTokens(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{products: products, renderer: renderer, carts: carts, tokens: tokens, logger: logger}
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterState reads category, search, page and pageSize from the query string.
// Unparseable numbers fall back to their defaults.
func (ctl *Controller) parseFilterState(c *gin.Context) models.FilterState {
	state := models.FilterState{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	state.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	state.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(ctl.products.PageSize())))
	return state.Normalize(ctl.products.PageSize())
}

// parseProductID accepts only positive integers; anything else is ErrInvalidID.
func parseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, errors.Wrapf(services.ErrInvalidID, "id %q", raw)
	}
	return id, nil
}

// StatusFor maps the upstream error taxonomy to an HTTP status and message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return http.StatusBadRequest, "Invalid product ID"
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, ErrSuperseded):
		return http.StatusConflict, SupersededMessage
	case errors.Is(err, services.ErrNetwork), errors.Is(err, services.ErrParse):
		return http.StatusBadGateway, "Catalog unavailable"
	case errors.Is(err, cart.ErrStorage):
		return http.StatusInsufficientStorage, CartSaveFailedMessage
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (ctl *Controller) html(c *gin.Context, status int, name string, data any) {
	markup, err := ctl.renderer.RenderString(name, data)
	if err != nil {
		ctl.logger.Error("❌ template render failed", zap.String("template", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(markup))
}

func (ctl *Controller) openCart(c *gin.Context, observer cart.Observer) *cart.Store {
	return ctl.carts.Open(c.Request.Context(), c.Writer, c.Request, middleware.BrowserID(c), observer)
}

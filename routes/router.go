package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/action_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/cart_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/product_controller"
	_ "github.com/Modeva-Ecommerce/modeva-storefront/docs"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/storefront_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/static"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

// Deps is everything the router needs that outlives a request.
type Deps struct {
	Config    config.AppConfig
	Catalog   services.Catalog
	Renderer  *views.Renderer
	Tokens    *cache.DetailTokens
	RateStore middleware.RateStore
	// Redis backs the cart when Config.CartBackend is "redis".
	Redis  cart.KV
	Logger *zap.Logger
}

// NewRouter wires controllers, middleware, docs and assets into a gin engine.
func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Tokens == nil {
		deps.Tokens = cache.NewDetailTokens(0)
	}
	if deps.RateStore == nil {
		deps.RateStore = middleware.NewMemoryRateStore(nil)
	}

	products := services.NewProductService(deps.Catalog, cfg.PageSize, logger)
	carts := cart.Opener{
		Backend:    cfg.CartBackend,
		CookieName: cfg.CartCookieName,
		TTL:        cfg.CartTTL,
		Secure:     cfg.IsProduction(),
		Redis:      deps.Redis,
		Logger:     logger,
	}

	productCtl := product_controller.New(products, deps.Renderer, carts, deps.Tokens, logger)
	cartCtl := cart_controller.New(deps.Renderer, carts, logger)
	actionCtl := action_controller.New(products, productCtl, deps.Renderer, carts, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = config.DefaultAppConfig().AllowedOrigins
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, product_controller.DetailTokenHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.StaticFS("/static", http.FS(static.FS()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	storefront := router.Group("")
	storefront.Use(middleware.BrowserSession(cfg.CartTTL, cfg.IsProduction()))
	storefront_routes.SetupPageRoutes(storefront, productCtl, actionCtl)
	storefront_routes.SetupProductRoutes(storefront, productCtl)
	storefront_routes.SetupCartRoutes(storefront, cartCtl)
	storefront_routes.SetupApiRoutes(storefront, productCtl,
		middleware.RateLimiter(deps.RateStore, cfg.RateLimit, cfg.RateWindow, logger))

	return router
}

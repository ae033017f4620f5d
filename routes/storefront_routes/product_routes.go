package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/product_controller"
)

// SetupProductRoutes registers the JSON passthrough endpoints.
func SetupProductRoutes(router gin.IRouter, products *product_controller.Controller) {
	p := router.Group("/Products")
	{
		p.GET("/GetProducts", products.GetProducts)
		p.GET("/GetProduct", products.GetProduct)
		p.GET("/GetCategories", products.GetCategories)
	}
}

// SetupApiRoutes registers the enveloped API variants behind the given middleware.
func SetupApiRoutes(router gin.IRouter, products *product_controller.Controller, mw ...gin.HandlerFunc) {
	api := router.Group("/api")
	api.Use(mw...)
	{
		api.GET("/ProductsApi", products.ListProductsApi)
		api.GET("/ProductsApi/:id", products.GetProductApi)
	}
}

package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/action_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/product_controller"
)

// SetupPageRoutes registers the server-rendered storefront and its fragments.
func SetupPageRoutes(router gin.IRouter, products *product_controller.Controller, actions *action_controller.Controller) {
	router.GET("/", products.Index)

	pages := router.Group("/Products")
	{
		pages.GET("", products.Index)
		pages.GET("/Index", products.Index)
		pages.GET("/Grid", products.Grid)     // grid + pagination fragment
		pages.GET("/Detail", products.Detail) // overlay fragment
	}

	router.POST("/Storefront/Actions", actions.Dispatch)
}

package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront/cart_controller"
)

func SetupCartRoutes(router gin.IRouter, carts *cart_controller.Controller) {
	c := router.Group("/Cart")
	{
		c.GET("", carts.GetCart)
		c.POST("/Checkout", carts.Checkout)
	}
}

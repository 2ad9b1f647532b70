package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/bayzedahmedandthe/bistro-boss-server/controllers"
)

// CartRoutes wires the cart operations. All of them require a signed-in
// caller; ownership is enforced inside the handlers.
func CartRoutes(router *gin.Engine, carts *controller.CartHandler, authenticate gin.HandlerFunc) {
	router.POST("/carts", authenticate, carts.AddCartItem())
	router.GET("/carts", authenticate, carts.GetCartItems())
	router.DELETE("/carts/:id", authenticate, carts.DeleteCartItem())
}

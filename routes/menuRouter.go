package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/bayzedahmedandthe/bistro-boss-server/controllers"
)

// MenuRoutes wires the public menu reads and the admin-only mutations.
// The gate always composes token check first, then the admin role check.
func MenuRoutes(router *gin.Engine, menu *controller.MenuHandler, reviews *controller.ReviewHandler, authenticate, requireAdmin gin.HandlerFunc) {
	router.GET("/menu", menu.GetMenu())
	router.GET("/menu/:id", menu.GetMenuItem())
	router.POST("/menu", authenticate, requireAdmin, menu.CreateMenuItem())
	router.PATCH("/menu/:id", authenticate, requireAdmin, menu.UpdateMenuItem())
	router.DELETE("/menu/:id", authenticate, requireAdmin, menu.DeleteMenuItem())

	router.GET("/reviews", reviews.GetReviews())
}

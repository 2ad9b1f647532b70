package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/bayzedahmedandthe/bistro-boss-server/controllers"
)

// UserRoutes wires registration, token issuance and the user management
// surface. Registration and /jwt stay open; management routes compose the
// token check first and the admin check second, since the admin check reads
// the identity the token check decoded.
func UserRoutes(router *gin.Engine, users *controller.UserHandler, auth *controller.AuthHandler, authenticate, requireAdmin gin.HandlerFunc) {
	router.POST("/users", users.CreateUser())
	router.POST("/jwt", auth.IssueToken())

	router.GET("/users", authenticate, requireAdmin, users.GetUsers())
	router.DELETE("/users/:id", authenticate, requireAdmin, users.DeleteUser())
	router.PATCH("/users/admin/:id", authenticate, requireAdmin, users.MakeAdmin())

	// Self-lookup only, so no admin gate here.
	router.GET("/users/admin/:email", authenticate, users.CheckAdmin())
}

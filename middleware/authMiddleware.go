package middleware

import (
	"net/http"
	"strings"

	"github.com/bayzedahmedandthe/bistro-boss-server/helpers"
	"github.com/bayzedahmedandthe/bistro-boss-server/models"
	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Authenticate verifies the bearer token on the request and stores the
// caller's identity in the context for downstream handlers.
func Authenticate(tokens *helpers.TokenHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authorization header provided"})
			c.Abort()
			return
		}

		// Expect the usual "Bearer <token>" shape.
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("email", helpers.CallerEmail(claims))
		c.Next()
	}
}

// RequireAdmin checks that the authenticated caller's user document carries
// the admin role. It reads the email Authenticate stored, so it must be wired
// after Authenticate; with no identity in the context it denies outright.
// The role lives in the users collection, not the token, so demotions take
// effect immediately.
func RequireAdmin(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}

		doc, err := st.FindOne(c.Request.Context(), store.CollUsers, bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the user role"})
			c.Abort()
			return
		}

		role, _ := doc["role"].(string)
		if doc == nil || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}

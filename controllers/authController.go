package controllers

import (
	"log"
	"net/http"

	"github.com/bayzedahmedandthe/bistro-boss-server/helpers"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues the bearer tokens the Authenticate middleware verifies.
type AuthHandler struct {
	Tokens *helpers.TokenHelper
}

func NewAuthHandler(tokens *helpers.TokenHelper) *AuthHandler {
	return &AuthHandler{Tokens: tokens}
}

// IssueToken handles POST /jwt. The request body becomes the token payload;
// clients send {"email": ...} after signing in. The endpoint itself is
// unauthenticated, which is why no route trusts the token for role checks.
func (h *AuthHandler) IssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.BindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := h.Tokens.SignToken(payload)
		if err != nil {
			log.Printf("signing token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

package controllers

import (
	"log"
	"net/http"

	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ReviewHandler serves the read-only reviews collection.
type ReviewHandler struct {
	Store store.Store
}

func NewReviewHandler(st store.Store) *ReviewHandler {
	return &ReviewHandler{Store: st}
}

// GetReviews handles GET /reviews.
func (h *ReviewHandler) GetReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := h.Store.Find(c.Request.Context(), store.CollReviews, bson.M{})
		if err != nil {
			log.Printf("listing reviews: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing the reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

package controllers

import (
	"log"
	"net/http"

	"github.com/bayzedahmedandthe/bistro-boss-server/models"
	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartHandler serves the carts collection. Every route runs behind the token
// gate and every operation is scoped to the authenticated owner's email, so a
// customer can only ever see or touch their own cart.
type CartHandler struct {
	Store store.Store
}

func NewCartHandler(st store.Store) *CartHandler {
	return &CartHandler{Store: st}
}

// AddCartItem handles POST /carts. The item's owner email must be the
// caller's own.
func (h *CartHandler) AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.CartItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validate.Struct(item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if *item.Email != c.GetString("email") {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		result, err := h.Store.InsertOne(c.Request.Context(), store.CollCarts, item)
		if err != nil {
			log.Printf("adding cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item was not added"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetCartItems handles GET /carts?email=. The listing is always filtered to
// the caller's email; asking for someone else's cart is refused rather than
// silently narrowed.
func (h *CartHandler) GetCartItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString("email")
		if requested := c.Query("email"); requested != "" && requested != caller {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		items, err := h.Store.Find(c.Request.Context(), store.CollCarts, bson.M{"email": caller})
		if err != nil {
			log.Printf("listing cart items: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing the cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// DeleteCartItem handles DELETE /carts/:id. The delete filter includes the
// owner email, so a foreign id simply matches nothing and reports a zero
// deleted count.
func (h *CartHandler) DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		filter := bson.M{"_id": id, "email": c.GetString("email")}
		result, err := h.Store.DeleteOne(c.Request.Context(), store.CollCarts, filter)
		if err != nil {
			log.Printf("deleting cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item delete failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

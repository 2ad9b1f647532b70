package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/bayzedahmedandthe/bistro-boss-server/models"
	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// MenuHandler serves the menu collection. Reads are public, mutations are
// wired behind the admin gate in the router.
type MenuHandler struct {
	Store store.Store
}

func NewMenuHandler(st store.Store) *MenuHandler {
	return &MenuHandler{Store: st}
}

// GetMenu handles GET /menu and returns every menu item.
func (h *MenuHandler) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Store.Find(c.Request.Context(), store.CollMenu, bson.M{})
		if err != nil {
			log.Printf("listing menu items: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing the menu items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetMenuItem handles GET /menu/:id. A missing item is not an error; the
// lookup result is passed through as-is, null when nothing matched.
func (h *MenuHandler) GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		item, err := h.Store.FindOne(c.Request.Context(), store.CollMenu, bson.M{"_id": id})
		if err != nil {
			log.Printf("fetching menu item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateMenuItem handles POST /menu.
func (h *MenuHandler) CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validate.Struct(item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item.Created_at = time.Now().UTC()
		item.Updated_at = item.Created_at

		result, err := h.Store.InsertOne(c.Request.Context(), store.CollMenu, item)
		if err != nil {
			log.Printf("creating menu item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateMenuItem handles PATCH /menu/:id, replacing exactly the fields the
// request carries. Zero matches comes back as a zero-count ack.
func (h *MenuHandler) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{}
		if item.Name != nil {
			set["name"] = *item.Name
		}
		if item.Category != nil {
			set["category"] = *item.Category
		}
		if item.Price != nil {
			set["price"] = *item.Price
		}
		if item.Recipe != nil {
			set["recipe"] = *item.Recipe
		}
		if item.Image != nil {
			set["image"] = *item.Image
		}
		set["updated_at"] = time.Now().UTC()

		result, err := h.Store.UpdateOne(c.Request.Context(), store.CollMenu, bson.M{"_id": id}, set)
		if err != nil {
			log.Printf("updating menu item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteMenuItem handles DELETE /menu/:id.
func (h *MenuHandler) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		result, err := h.Store.DeleteOne(c.Request.Context(), store.CollMenu, bson.M{"_id": id})
		if err != nil {
			log.Printf("deleting menu item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item delete failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

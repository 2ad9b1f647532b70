package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bayzedahmedandthe/bistro-boss-server/models"
	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler serves the users collection: registration, the admin-gated
// management routes, and the self-service admin-status lookup.
type UserHandler struct {
	Store store.Store
}

func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{Store: st}
}

// CreateUser handles POST /users. Registration must be idempotent for the
// caller: a repeated email gets the "already exists" sentinel, not an error.
// The existence pre-check answers the common sequential case; the unique
// index on email catches the concurrent one, where two registrations pass
// the check together and the insert of the loser reports a duplicate key.
func (h *UserHandler) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validate.Struct(user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		existing, err := h.Store.FindOne(c.Request.Context(), store.CollUsers, bson.M{"email": *user.Email})
		if err != nil {
			log.Printf("checking for existing user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking for the email"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusOK, gin.H{"message": "already exists", "insertedId": nil})
			return
		}

		if user.Password != nil {
			hashed := hashPassword(*user.Password)
			user.Password = &hashed
		}

		result, err := h.Store.InsertOne(c.Request.Context(), store.CollUsers, user)
		if errors.Is(err, store.ErrDuplicateKey) {
			c.JSON(http.StatusOK, gin.H{"message": "already exists", "insertedId": nil})
			return
		}
		if err != nil {
			log.Printf("creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetUsers handles GET /users (admin only).
func (h *UserHandler) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.Store.Find(c.Request.Context(), store.CollUsers, bson.M{})
		if err != nil {
			log.Printf("listing users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// DeleteUser handles DELETE /users/:id (admin only).
func (h *UserHandler) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		result, err := h.Store.DeleteOne(c.Request.Context(), store.CollUsers, bson.M{"_id": id})
		if err != nil {
			log.Printf("deleting user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user delete failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// MakeAdmin handles PATCH /users/admin/:id (admin only). It sets exactly the
// role field; the promotion is visible on the next request since the role is
// read from the store, not the token.
func (h *UserHandler) MakeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		set := bson.M{"role": models.RoleAdmin}
		result, err := h.Store.UpdateOne(c.Request.Context(), store.CollUsers, bson.M{"_id": id}, set)
		if err != nil {
			log.Printf("promoting user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// CheckAdmin handles GET /users/admin/:email. Self-lookup only: a caller may
// ask about their own role and nobody else's, whatever the target's role is.
func (h *UserHandler) CheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString("email") {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		doc, err := h.Store.FindOne(c.Request.Context(), store.CollUsers, bson.M{"email": email})
		if err != nil {
			log.Printf("checking admin status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the user role"})
			return
		}

		role, _ := doc["role"].(string)
		c.JSON(http.StatusOK, gin.H{"admin": role == models.RoleAdmin})
	}
}

func hashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

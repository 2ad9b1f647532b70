// Bistro Boss server: Gin REST backend over MongoDB for the restaurant
// ordering frontend.
package main

import (
	"context"
	"log"

	"github.com/bayzedahmedandthe/bistro-boss-server/config"
	"github.com/bayzedahmedandthe/bistro-boss-server/controllers"
	"github.com/bayzedahmedandthe/bistro-boss-server/database"
	"github.com/bayzedahmedandthe/bistro-boss-server/helpers"
	"github.com/bayzedahmedandthe/bistro-boss-server/middleware"
	"github.com/bayzedahmedandthe/bistro-boss-server/payment"
	"github.com/bayzedahmedandthe/bistro-boss-server/routes"
	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("connecting to mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("disconnecting from mongodb: %v", err)
		}
	}()
	log.Println("connected to mongodb")

	st := store.NewMongoStore(client.Database(cfg.DBName))

	// Registration relies on this index to reject concurrent duplicates.
	if err := st.EnsureUniqueIndex(context.Background(), store.CollUsers, "email"); err != nil {
		log.Fatalf("ensuring unique email index: %v", err)
	}

	tokens := helpers.NewTokenHelper(cfg.TokenSecret)
	authenticate := middleware.Authenticate(tokens)
	requireAdmin := middleware.RequireAdmin(st)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(200, "bistro boss server is running")
	})

	routes.MenuRoutes(router, controllers.NewMenuHandler(st), controllers.NewReviewHandler(st), authenticate, requireAdmin)
	routes.CartRoutes(router, controllers.NewCartHandler(st), authenticate)
	routes.UserRoutes(router, controllers.NewUserHandler(st), controllers.NewAuthHandler(tokens), authenticate, requireAdmin)
	routes.PaymentRoutes(router, controllers.NewPaymentHandler(payment.NewStripeGateway(cfg.StripeKey)), authenticate)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

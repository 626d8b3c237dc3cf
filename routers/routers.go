package routers

import (
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/handlers"
	"github.com/SoloAk21/ecommerce-backend/middleware"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}))
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil
	}

	store := repository.NewStore(db)
	userHandler := handlers.NewUserHandler(store)
	addressHandler := handlers.NewAddressHandler(store)
	categoryHandler := handlers.NewCategoryHandler(store)
	productHandler := handlers.NewProductHandler(store)
	productImageHandler := handlers.NewProductImageHandler(store)
	orderHandler := handlers.NewOrderHandler(store, cfg)
	orderItemHandler := handlers.NewOrderItemHandler(store, cfg)
	cartHandler := handlers.NewCartHandler(store)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "E-Commerce Backend is running!"})
	})

	users := router.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	addresses := router.Group("/addresses")
	{
		addresses.POST("", addressHandler.Create)
		addresses.GET("", addressHandler.List)
		addresses.GET("/:id", addressHandler.Get)
		addresses.PUT("/:id", addressHandler.Update)
		addresses.DELETE("/:id", addressHandler.Delete)
	}

	categories := router.Group("/categories")
	{
		categories.POST("", categoryHandler.Create)
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	products := router.Group("/products")
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
		products.POST("/:id/images", productHandler.CreateImage)
	}

	productImages := router.Group("/productImages")
	{
		productImages.POST("", productImageHandler.Create)
		productImages.GET("", productImageHandler.List)
		productImages.GET("/:id", productImageHandler.Get)
		productImages.PUT("/:id", productImageHandler.Update)
		productImages.DELETE("/:id", productImageHandler.Delete)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
	}

	orderItems := router.Group("/orderItems")
	{
		orderItems.POST("", orderItemHandler.Create)
		orderItems.GET("", orderItemHandler.List)
		orderItems.GET("/:id", orderItemHandler.Get)
		orderItems.PUT("/:id", orderItemHandler.Update)
		orderItems.DELETE("/:id", orderItemHandler.Delete)
	}

	carts := router.Group("/carts")
	{
		carts.POST("", cartHandler.Create)
		carts.GET("", cartHandler.List)
		carts.GET("/user/:user_id", cartHandler.ListByUser)
		carts.GET("/:id", cartHandler.Get)
		carts.PUT("/:id", cartHandler.Update)
		carts.DELETE("/:id", cartHandler.Delete)
	}

	return router
}

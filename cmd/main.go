package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"miniorder/internal/config"
	"miniorder/internal/handlers"
	"miniorder/internal/repositories"
	"miniorder/internal/services"
	"miniorder/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	customerRepo := repositories.NewCustomerRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)

	// Services
	customerSvc := services.NewCustomerService(customerRepo, orderRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo, customerRepo)

	// Handlers
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", handlers.ReadinessCheck)
	e.GET("/health/detailed", func(c echo.Context) error {
		return handlers.HealthCheckDetailed(c, pool)
	})

	api := e.Group("/api")

	api.GET("/orders", orderHandlers.GetOrders)
	api.GET("/orders/search", orderHandlers.SearchOrders)
	api.GET("/orders/:id", orderHandlers.GetOrder)
	api.POST("/orders", orderHandlers.CreateOrder)
	api.DELETE("/orders/:id", orderHandlers.DeleteOrder)

	api.GET("/customers", customerHandlers.ListCustomers)
	api.GET("/customers/search", customerHandlers.SearchCustomers)
	api.GET("/customers/:id", customerHandlers.GetCustomer)
	api.POST("/customers", customerHandlers.CreateCustomer)
	api.PUT("/customers/:id", customerHandlers.UpdateCustomer)
	api.DELETE("/customers/:id", customerHandlers.DeleteCustomer)

	api.GET("/products", productHandlers.ListProducts)
	api.GET("/products/:id", productHandlers.GetProduct)
	api.POST("/products", productHandlers.CreateProduct)
	api.PUT("/products/:id", productHandlers.UpdateProduct)
	api.DELETE("/products/:id", productHandlers.DeleteProduct)

	log.Printf("miniorder server v%s starting on port %d", version, cfg.Port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}

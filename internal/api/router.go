package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/api/handlers"
	"github.com/devyassinepro/shopify-product-publisher/internal/api/middleware"
	"github.com/devyassinepro/shopify-product-publisher/internal/config"
	"github.com/devyassinepro/shopify-product-publisher/internal/repository"
	"github.com/devyassinepro/shopify-product-publisher/internal/service"
	"github.com/devyassinepro/shopify-product-publisher/internal/shopify"
	"github.com/devyassinepro/shopify-product-publisher/internal/source"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, resync *service.ResyncQueue, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	storefront := source.NewStorefrontClient(cfg.App.StorefrontUserAgent, cfg.App.FetchTimeout, logger)
	deps := &handlers.Deps{
		Directory: service.NewLocationDirectory(repos.Location, cfg.App.FulfillmentServiceLocationName, logger),
		Publisher: service.NewPublishService(shopify.NewClient(cfg.Shopify, logger), resync, logger),
		Manual:    source.NewManualFormAdapter(logger),
		Remote:    source.NewRemoteProductAdapter(storefront, logger),
		Catalog:   source.NewRemoteCatalogAdapter(storefront, logger),
	}

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Product Publisher API",
			"endpoints": []string{
				"GET /health",
				"POST /v1/products",
				"POST /v1/products/import-url",
				"POST /v1/products/import-store",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		storeRoutes := v1.Group("")
		storeRoutes.Use(middleware.StoreAuthMiddleware(repos, logger))
		{
			storeRoutes.POST("/products", handlers.HandlePublishProduct(deps, logger))
			storeRoutes.POST("/products/import-url", handlers.HandleImportProductURL(deps, logger))
			storeRoutes.POST("/products/import-store", handlers.HandleImportStoreURL(deps, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	"github.com/devyassinepro/shopify-product-publisher/internal/repository"
)

const StoreContextKey = "store"

// StoreAuthMiddleware resolves the publishing store from the request's API
// token. Every downstream handler receives the store explicitly through the
// context; there is no ambient "current store" state.
func StoreAuthMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract Bearer token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing API token"})
			c.Abort()
			return
		}

		store, err := repos.Store.GetByAPIToken(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Failed to authenticate store", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API token"})
			c.Abort()
			return
		}

		if !store.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "store is inactive"})
			c.Abort()
			return
		}

		c.Set(StoreContextKey, store)
		c.Next()
	}
}

// GetStoreFromContext retrieves the authenticated store from the Gin context
func GetStoreFromContext(c *gin.Context) (*domain.Store, bool) {
	store, exists := c.Get(StoreContextKey)
	if !exists {
		return nil, false
	}

	s, ok := store.(*domain.Store)
	return s, ok
}

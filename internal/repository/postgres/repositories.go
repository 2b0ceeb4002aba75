package postgres

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/repository"
)

// NewRepositories creates all repositories backed by the given connection
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Store:    NewStoreRepository(db, logger),
		Location: NewLocationRepository(db, logger),
	}
}

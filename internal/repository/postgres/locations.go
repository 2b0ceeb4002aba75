package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

type locationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB, logger *zap.Logger) *locationRepository {
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

// ListByStoreID returns a store's synced locations in stable id order
func (r *locationRepository) ListByStoreID(ctx context.Context, storeID uuid.UUID) ([]domain.Location, error) {
	query := `
		SELECT id, store_id, name, admin_graphql_api_id, legacy
		FROM locations
		WHERE store_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		r.logger.Error("Failed to query locations", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.StoreID, &loc.Name, &loc.AdminGraphQLID, &loc.Legacy); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

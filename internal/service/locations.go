package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	"github.com/devyassinepro/shopify-product-publisher/internal/repository"
)

// LocationDirectory resolves the fulfillment locations usable for inventory
// assignment on a store.
type LocationDirectory struct {
	locations               repository.LocationRepository
	fulfillmentLocationName string
	logger                  *zap.Logger
}

// NewLocationDirectory creates a location directory
func NewLocationDirectory(locations repository.LocationRepository, fulfillmentLocationName string, logger *zap.Logger) *LocationDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocationDirectory{
		locations:               locations,
		fulfillmentLocationName: fulfillmentLocationName,
		logger:                  logger,
	}
}

// ResolveLocations returns the store's locations in stable order. A store
// registered for a fulfillment service is restricted to the single configured
// fulfillment location. An empty result is not an error; callers handle empty
// inventory assignment gracefully.
func (d *LocationDirectory) ResolveLocations(ctx context.Context, store *domain.Store) ([]domain.Location, error) {
	all, err := d.locations.ListByStoreID(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	if !store.HasFulfillmentService {
		return all, nil
	}

	filtered := make([]domain.Location, 0, 1)
	for _, loc := range all {
		if loc.Name == d.fulfillmentLocationName {
			filtered = append(filtered, loc)
		}
	}
	if len(filtered) == 0 {
		d.logger.Debug("No fulfillment service location matched",
			zap.String("store_id", store.ID.String()),
			zap.String("location_name", d.fulfillmentLocationName),
		)
	}
	return filtered, nil
}

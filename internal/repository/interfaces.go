package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

// StoreRepository defines store data access methods
type StoreRepository interface {
	GetByAPIToken(ctx context.Context, token string) (*domain.Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

// LocationRepository defines location reference data access methods.
// Locations are synced into our DB by an external job; this layer only reads.
type LocationRepository interface {
	ListByStoreID(ctx context.Context, storeID uuid.UUID) ([]domain.Location, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Store    StoreRepository
	Location LocationRepository
}

package postgres

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

type storeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *sql.DB, logger *zap.Logger) *storeRepository {
	return &storeRepository{
		db:     db,
		logger: logger,
	}
}

func apiTokenLookupHash(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

const storeColumns = `
	id, shop_domain, access_token, api_token_hash,
	has_fulfillment_service, is_active, created_at, updated_at
`

// GetByAPIToken resolves a store by its publisher API token: direct lookup on
// api_token_lookup (SHA256 hex), then bcrypt verification against the stored
// hash.
func (r *storeRepository) GetByAPIToken(ctx context.Context, token string) (*domain.Store, error) {
	query := `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE is_active = true AND api_token_lookup = $1
	`
	store, err := r.scanStore(r.db.QueryRowContext(ctx, query, apiTokenLookupHash(token)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store not found for token")
		}
		r.logger.Error("Failed to query store by token", zap.Error(err))
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(store.APITokenHash), []byte(token)) != nil {
		r.logger.Warn("Store token lookup matched but verification failed", zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("store not found for token")
	}
	return store, nil
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE id = $1
	`
	store, err := r.scanStore(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store not found: %s", id)
		}
		r.logger.Error("Failed to query store by id", zap.Error(err), zap.String("store_id", id.String()))
		return nil, err
	}
	return store, nil
}

func (r *storeRepository) scanStore(row *sql.Row) (*domain.Store, error) {
	var store domain.Store
	err := row.Scan(
		&store.ID,
		&store.ShopDomain,
		&store.AccessToken,
		&store.APITokenHash,
		&store.HasFulfillmentService,
		&store.IsActive,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

package source

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// RemoteCatalogAdapter imports a storefront's product listing. Only the first
// page (limit 250) is fetched; deeper pagination is a documented limitation.
// Catalog imports never resolve per-location inventory.
type RemoteCatalogAdapter struct {
	client *StorefrontClient
	logger *zap.Logger
}

// NewRemoteCatalogAdapter creates a catalog import adapter
func NewRemoteCatalogAdapter(client *StorefrontClient, logger *zap.Logger) *RemoteCatalogAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteCatalogAdapter{client: client, logger: logger}
}

// Parse fetches the listing and converts every listed product, using the same
// field mapping as the single-product adapter.
func (a *RemoteCatalogAdapter) Parse(ctx context.Context, storeURL string) ([]domain.CanonicalProduct, error) {
	body, err := a.client.FetchCatalogPage(ctx, storeURL)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Products []storefrontProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &apperrors.ErrDecode{Source: storeURL, Err: err}
	}
	if envelope.Products == nil {
		return nil, &apperrors.ErrSchema{Source: storeURL, Field: "products"}
	}

	products := make([]domain.CanonicalProduct, 0, len(envelope.Products))
	for i := range envelope.Products {
		products = append(products, canonicalFromStorefront(&envelope.Products[i]))
	}
	a.logger.Info("Parsed remote catalog page",
		zap.String("store_url", storeURL),
		zap.Int("products", len(products)),
	)
	return products, nil
}

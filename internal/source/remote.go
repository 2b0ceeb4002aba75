package source

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// RemoteProductAdapter imports a single product from another storefront's
// public product page ({url}.json).
type RemoteProductAdapter struct {
	client *StorefrontClient
	logger *zap.Logger
}

// NewRemoteProductAdapter creates a single-product import adapter
func NewRemoteProductAdapter(client *StorefrontClient, logger *zap.Logger) *RemoteProductAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteProductAdapter{client: client, logger: logger}
}

// Parse fetches and converts one product. Network and non-2xx failures come
// back as ErrFetch, invalid JSON as ErrDecode, a missing product object as
// ErrSchema.
func (a *RemoteProductAdapter) Parse(ctx context.Context, productURL string) (*domain.CanonicalProduct, error) {
	body, err := a.client.FetchProduct(ctx, productURL)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Product *storefrontProduct `json:"product"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &apperrors.ErrDecode{Source: productURL, Err: err}
	}
	if envelope.Product == nil {
		return nil, &apperrors.ErrSchema{Source: productURL, Field: "product"}
	}

	product := canonicalFromStorefront(envelope.Product)
	a.logger.Debug("Parsed remote product",
		zap.String("url", productURL),
		zap.String("title", product.Title),
		zap.Int("variants", len(product.Variants)),
	)
	return &product, nil
}

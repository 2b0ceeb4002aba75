package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// StorefrontClient fetches public product JSON from a storefront with a fixed
// user agent and a bounded timeout.
type StorefrontClient struct {
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewStorefrontClient creates a storefront fetch client
func NewStorefrontClient(userAgent string, timeout time.Duration, logger *zap.Logger) *StorefrontClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &StorefrontClient{
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchProduct fetches the JSON representation of a single product page,
// i.e. GET {productURL}.json
func (c *StorefrontClient) FetchProduct(ctx context.Context, productURL string) ([]byte, error) {
	return c.get(ctx, strings.TrimSuffix(productURL, "/")+".json")
}

// FetchCatalogPage fetches the first page of a storefront's product listing,
// i.e. GET {storeURL}products.json?page=1&limit=250. Pagination beyond page 1
// is intentionally not implemented.
func (c *StorefrontClient) FetchCatalogPage(ctx context.Context, storeURL string) ([]byte, error) {
	base := storeURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return c.get(ctx, base+"products.json?page=1&limit=250")
}

func (c *StorefrontClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &apperrors.ErrFetch{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Storefront fetch failed", zap.String("url", url), zap.Error(err))
		return nil, &apperrors.ErrFetch{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.ErrFetch{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.ErrFetch{URL: url, Err: err}
	}
	return body, nil
}

package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/config"
	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

// Client is the Admin GraphQL gateway. It is an opaque transport: it does not
// retry, does not rate-limit, and does not interpret GraphQL-level results --
// the publish service owns that.
type Client struct {
	apiVersion string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Shopify GraphQL gateway client
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GraphQLRequest is the request envelope sent to graphql.json
type GraphQLRequest struct {
	Query string `json:"query"`
}

// Response carries the transport-level result back to the caller. A non-200
// StatusCode or a non-nil DecodeErr means the body never reached GraphQL
// interpretation.
type Response struct {
	StatusCode int
	Body       json.RawMessage
	DecodeErr  error
}

// Send posts a mutation document to the store's GraphQL endpoint. The returned
// error covers transport failures only (request build, network, body read);
// HTTP status and body decodability are surfaced on Response for the caller
// to interpret.
func (c *Client) Send(ctx context.Context, store *domain.Store, query string) (*Response, error) {
	endpoint := fmt.Sprintf("%s/admin/api/%s/graphql.json", normalizeShopDomain(store.ShopDomain), c.apiVersion)

	jsonData, err := json.Marshal(GraphQLRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", store.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	out := &Response{StatusCode: resp.StatusCode}
	if len(body) > 0 && !json.Valid(body) {
		out.DecodeErr = fmt.Errorf("response body is not valid JSON")
		c.logger.Warn("Shopify returned undecodable body",
			zap.Int("status", resp.StatusCode),
			zap.String("shop_domain", store.ShopDomain),
		)
		return out, nil
	}
	out.Body = body
	return out, nil
}

// normalizeShopDomain strips a trailing slash and prepends https:// when the
// domain carries no scheme (tests point at plain http endpoints).
func normalizeShopDomain(domain string) string {
	d := strings.TrimSuffix(strings.TrimSpace(domain), "/")
	if !strings.Contains(d, "://") {
		d = "https://" + d
	}
	return d
}

package shopify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyassinepro/shopify-product-publisher/internal/config"
	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

func testStore(shopDomain string) *domain.Store {
	return &domain.Store{
		ShopDomain:  shopDomain,
		AccessToken: "shpat_test",
		IsActive:    true,
	}
}

func TestClientSend(t *testing.T) {
	t.Run("posts the query envelope with store auth", func(t *testing.T) {
		var gotPath, gotToken string
		var gotBody GraphQLRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotToken = r.Header.Get("X-Shopify-Access-Token")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{}}`))
		}))
		defer srv.Close()

		client := NewClient(config.ShopifyConfig{APIVersion: "2024-01"}, nil)
		resp, err := client.Send(context.Background(), testStore(srv.URL), "mutation { noop }")
		require.NoError(t, err)

		assert.Equal(t, "/admin/api/2024-01/graphql.json", gotPath)
		assert.Equal(t, "shpat_test", gotToken)
		assert.Equal(t, "mutation { noop }", gotBody.Query)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, resp.DecodeErr)
		assert.JSONEq(t, `{"data":{}}`, string(resp.Body))
	})

	t.Run("surfaces non-200 status without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(config.ShopifyConfig{APIVersion: "2024-01"}, nil)
		resp, err := client.Send(context.Background(), testStore(srv.URL), "mutation { noop }")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("flags an undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		client := NewClient(config.ShopifyConfig{APIVersion: "2024-01"}, nil)
		resp, err := client.Send(context.Background(), testStore(srv.URL), "mutation { noop }")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Error(t, resp.DecodeErr)
	})

	t.Run("returns an error when the call itself fails", func(t *testing.T) {
		client := NewClient(config.ShopifyConfig{APIVersion: "2024-01"}, nil)
		_, err := client.Send(context.Background(), testStore("http://127.0.0.1:1"), "mutation { noop }")
		assert.Error(t, err)
	})
}

func TestNormalizeShopDomain(t *testing.T) {
	assert.Equal(t, "https://shop.myshopify.com", normalizeShopDomain("shop.myshopify.com"))
	assert.Equal(t, "https://shop.myshopify.com", normalizeShopDomain("shop.myshopify.com/"))
	assert.Equal(t, "http://127.0.0.1:8080", normalizeShopDomain("http://127.0.0.1:8080"))
}

func TestParseProductCreate(t *testing.T) {
	t.Run("created product", func(t *testing.T) {
		body := []byte(`{"data":{"productCreate":{"product":{"id":"gid://1"},"userErrors":[]}}}`)
		result, err := ParseProductCreate(body)
		require.NoError(t, err)
		assert.Equal(t, "gid://1", result.ProductID())
		assert.Empty(t, result.UserErrorMessages())
	})

	t.Run("user errors", func(t *testing.T) {
		body := []byte(`{"data":{"productCreate":{"product":null,"userErrors":[{"field":["price"],"message":"must be positive"},{"field":["title"],"message":"is too long"}]}}}`)
		result, err := ParseProductCreate(body)
		require.NoError(t, err)
		assert.Equal(t, "", result.ProductID())
		assert.Equal(t, []string{"must be positive", "is too long"}, result.UserErrorMessages())
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := ParseProductCreate([]byte("nope"))
		assert.Error(t, err)
	})
}

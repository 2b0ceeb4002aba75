package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

const sampleProductJSON = `{
	"product": {
		"title": "Widget",
		"vendor": "Acme",
		"body_html": "<p>Good widget</p>",
		"product_type": "Gadget",
		"tags": "summer, sale,new",
		"options": [
			{"name": "Size", "values": ["Small", "Large"]},
			{"name": "Color", "values": ["Red"]}
		],
		"variants": [
			{
				"title": "Small / Red",
				"sku": "W-S-R",
				"price": "9.99",
				"compare_at_price": null,
				"position": 1,
				"option1": "Small",
				"option2": "Red",
				"option3": null,
				"image_id": 123456
			}
		],
		"images": [{"src": "https://cdn.example.com/widget.png"}]
	}
}`

func newStorefrontTestClient() *StorefrontClient {
	return NewStorefrontClient("MyAgent/1.0", 5*time.Second, nil)
}

func TestRemoteProductAdapter_Parse(t *testing.T) {
	t.Run("well-formed product page", func(t *testing.T) {
		var gotPath, gotAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAgent = r.Header.Get("User-Agent")
			w.Write([]byte(sampleProductJSON))
		}))
		defer srv.Close()

		adapter := NewRemoteProductAdapter(newStorefrontTestClient(), nil)
		product, err := adapter.Parse(context.Background(), srv.URL+"/products/widget")
		require.NoError(t, err)

		assert.Equal(t, "/products/widget.json", gotPath)
		assert.Equal(t, "MyAgent/1.0", gotAgent)

		assert.Equal(t, "Widget", product.Title)
		assert.Equal(t, "Acme", product.Vendor)
		require.NotNil(t, product.DescriptionHTML)
		assert.Equal(t, "<p>Good widget</p>", *product.DescriptionHTML)
		assert.Equal(t, []string{"summer", "sale", "new"}, product.Tags)

		// All source options re-flatten into a single combined option
		require.Len(t, product.Options, 1)
		assert.Equal(t, []string{"Small", "Large", "Red"}, product.Options[0].Values)

		require.Len(t, product.Variants, 1)
		v := product.Variants[0]
		assert.Equal(t, "9.99", v.Price)
		assert.Equal(t, "", v.CompareAtPrice)
		require.NotNil(t, v.Position)
		assert.Equal(t, 1, *v.Position)
		assert.Equal(t, []string{"Small", "Red"}, v.OptionValues)
		assert.Equal(t, "123456", v.ImageSrc)
		assert.False(t, v.Tracked)
		assert.Empty(t, v.InventoryQuantities)

		require.Len(t, product.Images, 1)
		assert.Equal(t, "https://cdn.example.com/widget.png", product.Images[0].Src)
	})

	t.Run("non-2xx is a fetch error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		adapter := NewRemoteProductAdapter(newStorefrontTestClient(), nil)
		_, err := adapter.Parse(context.Background(), srv.URL+"/products/missing")
		require.Error(t, err)
		var fetchErr *apperrors.ErrFetch
		assert.True(t, errors.As(err, &fetchErr))
	})

	t.Run("network failure is a fetch error", func(t *testing.T) {
		adapter := NewRemoteProductAdapter(newStorefrontTestClient(), nil)
		_, err := adapter.Parse(context.Background(), "http://127.0.0.1:1/products/widget")
		require.Error(t, err)
		var fetchErr *apperrors.ErrFetch
		assert.True(t, errors.As(err, &fetchErr))
	})

	t.Run("invalid JSON is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>definitely not json</html>"))
		}))
		defer srv.Close()

		adapter := NewRemoteProductAdapter(newStorefrontTestClient(), nil)
		_, err := adapter.Parse(context.Background(), srv.URL+"/products/widget")
		require.Error(t, err)
		var decodeErr *apperrors.ErrDecode
		assert.True(t, errors.As(err, &decodeErr))
	})

	t.Run("missing product object is a schema error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"something_else": true}`))
		}))
		defer srv.Close()

		adapter := NewRemoteProductAdapter(newStorefrontTestClient(), nil)
		_, err := adapter.Parse(context.Background(), srv.URL+"/products/widget")
		require.Error(t, err)
		var schemaErr *apperrors.ErrSchema
		assert.True(t, errors.As(err, &schemaErr))
	})
}

func TestRemoteCatalogAdapter_Parse(t *testing.T) {
	t.Run("first listing page", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			require.Equal(t, "/products.json", r.URL.Path)
			w.Write([]byte(`{
				"products": [
					{"title": "Widget", "vendor": "Acme", "tags": ["summer", " sale "]},
					{"title": "Gizmo", "vendor": "Acme", "variants": [{"title": "Default", "price": 4.5}]}
				]
			}`))
		}))
		defer srv.Close()

		adapter := NewRemoteCatalogAdapter(newStorefrontTestClient(), nil)
		products, err := adapter.Parse(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, "page=1&limit=250", gotQuery)
		require.Len(t, products, 2)

		// Tags arrive as a list here; the tolerant decoder accepts both shapes.
		assert.Equal(t, []string{"summer", "sale"}, products[0].Tags)
		// A numeric price decodes to its source literal.
		require.Len(t, products[1].Variants, 1)
		assert.Equal(t, "4.5", products[1].Variants[0].Price)
		assert.False(t, products[1].Variants[0].Tracked)
	})

	t.Run("missing products list is a schema error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"page": 1}`))
		}))
		defer srv.Close()

		adapter := NewRemoteCatalogAdapter(newStorefrontTestClient(), nil)
		_, err := adapter.Parse(context.Background(), srv.URL)
		require.Error(t, err)
		var schemaErr *apperrors.ErrSchema
		assert.True(t, errors.As(err, &schemaErr))
	})

	t.Run("empty listing yields an empty sequence", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products": []}`))
		}))
		defer srv.Close()

		adapter := NewRemoteCatalogAdapter(newStorefrontTestClient(), nil)
		products, err := adapter.Parse(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

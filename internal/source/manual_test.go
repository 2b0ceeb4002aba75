package source

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

func manualLocations() []domain.Location {
	return []domain.Location{
		{ID: 10, Name: "Main", AdminGraphQLID: "gid://shopify/Location/10"},
	}
}

func TestManualFormAdapter_Parse(t *testing.T) {
	adapter := NewManualFormAdapter(nil)

	t.Run("well-formed form", func(t *testing.T) {
		form := url.Values{
			"title":           {"Widget"},
			"vendor":          {"Acme"},
			"desc":            {"<p>Good widget</p>"},
			"product_type":    {"Gadget"},
			"tags":            {"summer, sale ,new"},
			"variant_title":   {"Small", "Large"},
			"sku":             {"W-S", "W-L"},
			"variant_price":   {"9.99", "14.99"},
			"variant_caprice": {"12.99", ""},
			"10_inventory_1":  {"5"},
		}

		product, err := adapter.Parse(form, manualLocations())
		require.NoError(t, err)

		assert.Equal(t, "Widget", product.Title)
		assert.Equal(t, "Acme", product.Vendor)
		require.NotNil(t, product.DescriptionHTML)
		assert.Equal(t, "<p>Good widget</p>", *product.DescriptionHTML)
		assert.Equal(t, "Gadget", product.ProductType)
		assert.Equal(t, []string{"summer", "sale", "new"}, product.Tags)

		// One option combining all variant titles
		require.Len(t, product.Options, 1)
		assert.Equal(t, []string{"Small", "Large"}, product.Options[0].Values)

		require.Len(t, product.Variants, 2)
		small := product.Variants[0]
		assert.Equal(t, "Small", small.Title)
		assert.Equal(t, "W-S", small.SKU)
		assert.Equal(t, "9.99", small.Price)
		assert.Equal(t, "12.99", small.CompareAtPrice)
		assert.Equal(t, []string{"Small"}, small.OptionValues)
		assert.True(t, small.Tracked)
		assert.Equal(t, []domain.LocationQuantity{
			{AvailableQuantity: 5, LocationID: "gid://shopify/Location/10"},
		}, small.InventoryQuantities)

		large := product.Variants[1]
		assert.Equal(t, "", large.CompareAtPrice)
		assert.Empty(t, large.InventoryQuantities)
	})

	t.Run("title and vendor are required", func(t *testing.T) {
		var validationErr *apperrors.ErrValidation

		_, err := adapter.Parse(url.Values{"vendor": {"Acme"}}, nil)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))

		_, err = adapter.Parse(url.Values{"title": {"Widget"}}, nil)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("misaligned variant arrays fail instead of truncating", func(t *testing.T) {
		form := url.Values{
			"title":           {"Widget"},
			"vendor":          {"Acme"},
			"variant_title":   {"Small", "Large"},
			"sku":             {"W-S"},
			"variant_price":   {"9.99", "14.99"},
			"variant_caprice": {"", ""},
		}

		_, err := adapter.Parse(form, nil)
		require.Error(t, err)
		var validationErr *apperrors.ErrValidation
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("absent description is nil, not empty", func(t *testing.T) {
		form := url.Values{
			"title":  {"Widget"},
			"vendor": {"Acme"},
		}
		product, err := adapter.Parse(form, nil)
		require.NoError(t, err)
		assert.Nil(t, product.DescriptionHTML)
	})

	t.Run("no variants is a valid product", func(t *testing.T) {
		form := url.Values{
			"title":  {"Widget"},
			"vendor": {"Acme"},
		}
		product, err := adapter.Parse(form, nil)
		require.NoError(t, err)
		assert.Empty(t, product.Variants)
		assert.Empty(t, product.Options)
	})
}

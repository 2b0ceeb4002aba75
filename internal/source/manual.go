package source

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	"github.com/devyassinepro/shopify-product-publisher/internal/inventory"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// ManualFormAdapter builds a product from the operator-filled form. Variants
// arrive as parallel arrays indexed by position (variant_title, sku,
// variant_price, variant_caprice); the arrays must align or parsing fails --
// silent truncation is not acceptable here.
type ManualFormAdapter struct {
	logger *zap.Logger
}

// NewManualFormAdapter creates a manual form adapter
func NewManualFormAdapter(logger *zap.Logger) *ManualFormAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManualFormAdapter{logger: logger}
}

// Parse converts the submitted form into a CanonicalProduct, resolving
// per-location inventory for each variant against the given locations.
// Each variant title doubles as that variant's sole option value, and the
// product gets exactly one option combining all variant titles.
func (a *ManualFormAdapter) Parse(form url.Values, locations []domain.Location) (*domain.CanonicalProduct, error) {
	title := strings.TrimSpace(form.Get("title"))
	if title == "" {
		return nil, &apperrors.ErrValidation{Field: "title", Message: "is required"}
	}
	vendor := strings.TrimSpace(form.Get("vendor"))
	if vendor == "" {
		return nil, &apperrors.ErrValidation{Field: "vendor", Message: "is required"}
	}

	p := &domain.CanonicalProduct{
		Title:       title,
		Vendor:      vendor,
		ProductType: strings.TrimSpace(form.Get("product_type")),
	}
	if form.Has("desc") {
		desc := form.Get("desc")
		p.DescriptionHTML = &desc
	}
	if tags := form.Get("tags"); tags != "" {
		p.Tags = normalizeTags(strings.Split(tags, ","))
	}

	variantTitles := form["variant_title"]
	if len(variantTitles) == 0 {
		return p, nil
	}

	skus := form["sku"]
	prices := form["variant_price"]
	comparePrices := form["variant_caprice"]
	if len(skus) != len(variantTitles) || len(prices) != len(variantTitles) || len(comparePrices) != len(variantTitles) {
		return nil, &apperrors.ErrValidation{
			Field: "variant_title",
			Message: fmt.Sprintf("variant arrays are misaligned: %d titles, %d skus, %d prices, %d compare-at prices",
				len(variantTitles), len(skus), len(prices), len(comparePrices)),
		}
	}

	p.Options = []domain.Option{{Values: variantTitles}}
	p.Variants = make([]domain.Variant, 0, len(variantTitles))
	for i, variantTitle := range variantTitles {
		quantities, err := inventory.Resolve(i, form, locations)
		if err != nil {
			return nil, err
		}
		p.Variants = append(p.Variants, domain.Variant{
			Title:               variantTitle,
			SKU:                 skus[i],
			Price:               prices[i],
			CompareAtPrice:      strings.TrimSpace(comparePrices[i]),
			OptionValues:        []string{variantTitle},
			InventoryQuantities: quantities,
			Tracked:             true,
		})
	}

	a.logger.Debug("Parsed manual product form",
		zap.String("title", title),
		zap.Int("variants", len(p.Variants)),
	)
	return p, nil
}

package source

import (
	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

// canonicalFromStorefront maps a decoded storefront product into canonical
// form. The source's option lists are re-flattened into one comma-joined
// scalar option (the producing schema expects a single combined string).
// Imported variants carry no inventory and are not tracked.
func canonicalFromStorefront(sp *storefrontProduct) domain.CanonicalProduct {
	p := domain.CanonicalProduct{
		Title:           sp.Title,
		Vendor:          sp.Vendor,
		ProductType:     sp.ProductType,
		DescriptionHTML: sp.BodyHTML,
		Tags:            sp.Tags,
	}

	var optionValues []string
	for _, opt := range sp.Options {
		optionValues = append(optionValues, opt.Values...)
	}
	if len(optionValues) > 0 {
		p.Options = []domain.Option{{Values: optionValues}}
	}

	for _, sv := range sp.Variants {
		position := sv.Position
		v := domain.Variant{
			Title:          sv.Title,
			SKU:            sv.SKU,
			Price:          string(sv.Price),
			CompareAtPrice: string(sv.CompareAtPrice),
			ImageSrc:       string(sv.ImageID),
			Tracked:        false,
		}
		if position > 0 {
			v.Position = &position
		}
		for _, opt := range []*string{sv.Option1, sv.Option2, sv.Option3} {
			if opt != nil && *opt != "" {
				v.OptionValues = append(v.OptionValues, *opt)
			}
		}
		p.Variants = append(p.Variants, v)
	}

	for _, img := range sp.Images {
		p.Images = append(p.Images, domain.Image{Src: img.Src})
	}

	return p
}

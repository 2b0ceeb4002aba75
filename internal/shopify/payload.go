package shopify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// The payload builder turns a fully materialized CanonicalProduct into the
// productCreate input fragment. All escaping happens here, never in the
// adapters, and every numeric field is validated before it is embedded.

// inputField is one rendered key/value entry of an input object literal
type inputField struct {
	name  string
	value string
}

// inputDoc collects rendered fields and serializes them in insertion order
type inputDoc struct {
	fields []inputField
}

func (d *inputDoc) add(name, value string) {
	d.fields = append(d.fields, inputField{name: name, value: value})
}

func (d *inputDoc) String() string {
	parts := make([]string, len(d.fields))
	for i, f := range d.fields {
		parts[i] = f.name + ": " + f.value
	}
	return strings.Join(parts, ", ")
}

// BuildProductInput renders a CanonicalProduct as a productCreate input
// fragment. Field order is fixed: title, published, vendor, descriptionHtml,
// productType, tags, options, variants, images. Absent optional fields are
// omitted entirely rather than emitted as null or empty.
func BuildProductInput(p *domain.CanonicalProduct) (string, error) {
	if p.Title == "" {
		return "", &apperrors.ErrValidation{Field: "title", Message: "is required"}
	}
	if p.Vendor == "" {
		return "", &apperrors.ErrValidation{Field: "vendor", Message: "is required"}
	}

	doc := &inputDoc{}
	doc.add("title", quoteString(p.Title))
	doc.add("published", "true")
	doc.add("vendor", quoteString(p.Vendor))

	// descriptionHtml carries arbitrary HTML with embedded quotes and newlines,
	// so it is emitted as a JSON string literal instead of plain quoting.
	// Absent (nil) and empty ("") are distinct: empty still emits.
	if p.DescriptionHTML != nil {
		doc.add("descriptionHtml", jsonString(*p.DescriptionHTML))
	}
	if p.ProductType != "" {
		doc.add("productType", quoteString(p.ProductType))
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			tags[i] = quoteString(strings.TrimSpace(tag))
		}
		doc.add("tags", "["+strings.Join(tags, ", ")+"]")
	}
	if len(p.Options) > 0 {
		options := make([]string, len(p.Options))
		for i, opt := range p.Options {
			// One option's values collapse into a single comma-joined scalar;
			// the producing schema expects one combined string per option.
			options[i] = quoteString(strings.Join(opt.Values, ", "))
		}
		doc.add("options", "["+strings.Join(options, ", ")+"]")
	}
	if len(p.Variants) > 0 {
		variants := make([]string, len(p.Variants))
		for i := range p.Variants {
			rendered, err := buildVariant(&p.Variants[i], i)
			if err != nil {
				return "", err
			}
			variants[i] = rendered
		}
		doc.add("variants", "["+strings.Join(variants, ", ")+"]")
	}
	if len(p.Images) > 0 {
		images := make([]string, len(p.Images))
		for i, img := range p.Images {
			images[i] = "{src: " + quoteString(img.Src) + "}"
		}
		doc.add("images", "["+strings.Join(images, ", ")+"]")
	}

	return doc.String(), nil
}

// buildVariant renders one variant object literal with its fixed keys
func buildVariant(v *domain.Variant, index int) (string, error) {
	if len(v.OptionValues) > 3 {
		return "", &apperrors.ErrValidation{
			Field:   fmt.Sprintf("variants[%d].options", index),
			Message: "at most 3 option values are allowed",
		}
	}
	price, err := renderDecimal(fmt.Sprintf("variants[%d].price", index), v.Price)
	if err != nil {
		return "", err
	}

	doc := &inputDoc{}
	doc.add("taxable", "false")
	doc.add("title", quoteString(v.Title))
	if v.CompareAtPrice != "" {
		compareAt, err := renderDecimal(fmt.Sprintf("variants[%d].compareAtPrice", index), v.CompareAtPrice)
		if err != nil {
			return "", err
		}
		doc.add("compareAtPrice", compareAt)
	}
	doc.add("sku", quoteString(v.SKU))
	doc.add("options", "["+quoteString(strings.Join(v.OptionValues, ", "))+"]")
	if v.Position != nil {
		doc.add("position", strconv.Itoa(*v.Position))
	}
	if v.ImageSrc != "" {
		doc.add("imageSrc", quoteString(v.ImageSrc))
	}
	doc.add("inventoryItem", fmt.Sprintf("{cost: %s, tracked: %t}", price, v.Tracked))
	if len(v.InventoryQuantities) > 0 {
		quantities := make([]string, len(v.InventoryQuantities))
		for i, q := range v.InventoryQuantities {
			quantities[i] = fmt.Sprintf("{availableQuantity: %d, locationId: %s}", q.AvailableQuantity, quoteString(q.LocationID))
		}
		doc.add("inventoryQuantities", "["+strings.Join(quantities, ", ")+"]")
	}
	doc.add("inventoryManagement", "null")
	doc.add("inventoryPolicy", "DENY")
	doc.add("price", price)

	return "{" + doc.String() + "}", nil
}

// renderDecimal validates a source numeric string and returns its canonical
// decimal literal. A malformed or negative value fails the build instead of
// being embedded into the document.
func renderDecimal(field, value string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return "", &apperrors.ErrValidation{Field: field, Message: fmt.Sprintf("not a valid number: %q", value)}
	}
	if d.IsNegative() {
		return "", &apperrors.ErrValidation{Field: field, Message: fmt.Sprintf("must not be negative: %q", value)}
	}
	return d.String(), nil
}

var scalarEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quoteString wraps a scalar in double quotes, escaping embedded quotes,
// backslashes and control whitespace
func quoteString(s string) string {
	return `"` + scalarEscaper.Replace(s) + `"`
}

// jsonString encodes a value as a JSON string literal. HTML escaping is off:
// descriptionHtml must carry its markup characters verbatim.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

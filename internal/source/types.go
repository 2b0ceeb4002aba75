package source

import (
	"encoding/json"
	"strings"
)

// Intermediate storefront structures. The two remote JSON sources disagree on
// shapes (tags as a comma-joined string vs. a list, numeric fields as numbers
// or strings, null-able ids), so decoding is tolerant here and mapping into
// the canonical model happens in a separate step.

type storefrontProduct struct {
	Title       string              `json:"title"`
	Vendor      string              `json:"vendor"`
	BodyHTML    *string             `json:"body_html"`
	ProductType string              `json:"product_type"`
	Tags        tagList             `json:"tags"`
	Options     []storefrontOption  `json:"options"`
	Variants    []storefrontVariant `json:"variants"`
	Images      []storefrontImage   `json:"images"`
}

type storefrontOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type storefrontVariant struct {
	Title          string     `json:"title"`
	SKU            string     `json:"sku"`
	Price          flexString `json:"price"`
	CompareAtPrice flexString `json:"compare_at_price"`
	Position       int        `json:"position"`
	Option1        *string    `json:"option1"`
	Option2        *string    `json:"option2"`
	Option3        *string    `json:"option3"`
	ImageID        flexString `json:"image_id"`
}

type storefrontImage struct {
	Src string `json:"src"`
}

// flexString accepts a JSON string, number or null
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*f = flexString(num.String())
	return nil
}

// tagList accepts either a comma-joined string or a list of strings and
// normalizes to trimmed, non-empty tags
type tagList []string

func (t *tagList) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*t = nil
		return nil
	}
	if len(s) > 0 && s[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*t = normalizeTags(list)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*t = normalizeTags(strings.Split(joined, ","))
	return nil
}

func normalizeTags(raw []string) []string {
	var tags []string
	for _, tag := range raw {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

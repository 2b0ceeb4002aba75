package shopify

import (
	"encoding/json"
	"fmt"
)

// ProductCreateMutation wraps a rendered product input fragment into the full
// mutation document sent as the query body.
func ProductCreateMutation(input string) string {
	return "mutation { productCreate (input: {" + input + "}) { product { id } userErrors { field message } } }"
}

// UserError is a platform-reported, field-scoped validation rejection returned
// alongside an HTTP 200.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// ProductCreateResult is the decoded productCreate response envelope
type ProductCreateResult struct {
	Data struct {
		ProductCreate struct {
			Product *struct {
				ID string `json:"id"`
			} `json:"product"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"productCreate"`
	} `json:"data"`
}

// ParseProductCreate decodes a productCreate response body
func ParseProductCreate(body []byte) (*ProductCreateResult, error) {
	var result ProductCreateResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse productCreate response: %w", err)
	}
	return &result, nil
}

// UserErrorMessages flattens user errors into their messages, in order
func (r *ProductCreateResult) UserErrorMessages() []string {
	errs := r.Data.ProductCreate.UserErrors
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
	}
	return messages
}

// ProductID returns the created product's GID, or "" when absent
func (r *ProductCreateResult) ProductID() string {
	if r.Data.ProductCreate.Product == nil {
		return ""
	}
	return r.Data.ProductCreate.Product.ID
}

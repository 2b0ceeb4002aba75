package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a connected Shopify store
type Store struct {
	ID                    uuid.UUID
	ShopDomain            string
	AccessToken           string
	// APITokenHash is the bcrypt hash of the store's publisher API token;
	// lookup goes through the api_token_lookup column (SHA256 hex).
	APITokenHash          string
	HasFulfillmentService bool // restricts inventory assignment to the configured fulfillment location
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Location is a fulfillment location inventory can be assigned to.
// Read-only reference data; synced into our DB by an external job.
type Location struct {
	ID             int64
	StoreID        uuid.UUID
	Name           string
	AdminGraphQLID string
	Legacy         bool
}

// CanonicalProduct is the unified internal product representation, source-agnostic.
// Title and Vendor are always present; everything else is optional and omitted from
// the serialized payload when absent.
type CanonicalProduct struct {
	Title       string
	Vendor      string
	ProductType string
	// DescriptionHTML distinguishes absent (nil) from empty ("").
	DescriptionHTML *string
	Tags            []string
	Options         []Option
	Variants        []Variant
	Images          []Image
}

// Option holds the values of a single product option. The values of one option are
// serialized as a single comma-joined quoted scalar (the producing schema expects
// one combined string, not a value list).
type Option struct {
	Values []string
}

// Variant is one purchasable variant of a product. Price is a source string and is
// validated as a decimal at payload-build time.
type Variant struct {
	Title               string
	SKU                 string
	Price               string
	CompareAtPrice      string // emitted only when non-empty
	Position            *int   // emitted only when known
	OptionValues        []string
	InventoryQuantities []LocationQuantity
	ImageSrc            string
	// Tracked maps to inventoryItem.tracked: true for manual-form products,
	// false for imported ones.
	Tracked bool
}

// LocationQuantity assigns an available quantity to one location. Entries exist only
// for locations the operator supplied a quantity for; absent entries are not
// zero-filled.
type LocationQuantity struct {
	AvailableQuantity int
	LocationID        string // platform global id, e.g. gid://shopify/Location/123
}

// Image is a product image reference
type Image struct {
	Src string
}

// PublishOutcome is the terminal result of one publish attempt
type PublishOutcome struct {
	Status    PublishStatus
	ProductID string   // set when Status == PublishCreated
	Messages  []string // platform user errors when Status == PublishRejected
	Reason    string   // transport failure reason when Status == PublishTransportFailed
}

// ProductOutcome pairs a product with its publish outcome in a catalog run
type ProductOutcome struct {
	Title   string
	Outcome PublishOutcome
}

// CatalogReport aggregates the outcomes of a catalog publish run
type CatalogReport struct {
	Total    int
	Created  int
	Rejected int
	Failed   int
	Outcomes []ProductOutcome
}

package inventory

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// Resolve maps per-location quantity form fields for one variant into
// location-qualified quantity entries. The manual form keys quantities as
// {locationID}_inventory_{variantIndex+1} (the form counter starts at 1).
// Locations without a submitted quantity are skipped, not zero-filled, and the
// result follows the location directory's iteration order.
func Resolve(variantIndex int, form url.Values, locations []domain.Location) ([]domain.LocationQuantity, error) {
	var quantities []domain.LocationQuantity
	for _, location := range locations {
		key := fmt.Sprintf("%d_inventory_%d", location.ID, variantIndex+1)
		if !form.Has(key) {
			continue
		}
		raw := form.Get(key)
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &apperrors.ErrValidation{
				Field:   key,
				Message: fmt.Sprintf("not a valid quantity: %q", raw),
			}
		}
		quantities = append(quantities, domain.LocationQuantity{
			AvailableQuantity: quantity,
			LocationID:        location.AdminGraphQLID,
		})
	}
	return quantities, nil
}

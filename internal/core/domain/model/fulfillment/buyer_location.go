package fulfillment

import (
	"strings"

	"banda/internal/core/domain/model/kernel"
	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

// ErrBuyerCityIsRequired is returned when creating a buyer location without a city.
var ErrBuyerCityIsRequired = errs.NewValueIsRequiredError("city")

// ErrBuyerLocationIsNotConstructed is returned when using an improperly initialized BuyerLocation.
var ErrBuyerLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"buyer location must be created via NewBuyerLocation constructor")

// BuyerLocation is the delivery destination of a checkout order.
// Coordinates are optional - not every buyer address is geocoded.
type BuyerLocation struct {
	city        string
	coordinates *kernel.GeoPoint
	guard       guard.ConstructorGuard
}

// NewBuyerLocation creates a validated buyer location.
// coordinates may be nil.
func NewBuyerLocation(city string, coordinates *kernel.GeoPoint) (BuyerLocation, error) {
	if strings.TrimSpace(city) == "" {
		return BuyerLocation{}, ErrBuyerCityIsRequired
	}

	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return BuyerLocation{}, err
		}
	}

	return BuyerLocation{
		city:        city,
		coordinates: coordinates,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the location was created via NewBuyerLocation.
func (l BuyerLocation) Validate() error {
	return l.guard.Validate(ErrBuyerLocationIsNotConstructed)
}

// City returns the buyer's city.
func (l BuyerLocation) City() string {
	return l.city
}

// Coordinates returns the buyer's coordinates, or nil when unknown.
func (l BuyerLocation) Coordinates() *kernel.GeoPoint {
	return l.coordinates
}

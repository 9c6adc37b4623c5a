// Package zone models the geographic delivery zones that set base delivery
// fees and free-delivery order-value thresholds.
package zone

import (
	"errors"
	"strings"

	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

// Domain errors for delivery zones.
var (
	// ErrZoneNameIsRequired is returned when creating a zone without a name.
	ErrZoneNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrZoneIsNotConstructed is returned when using an improperly initialized zone.
	ErrZoneIsNotConstructed = errors.New("DeliveryZone must be created via NewDeliveryZone constructor")
)

// DeliveryZone is a geographic pricing tier: the areas it covers, its base
// delivery fee, and the order value above which delivery is free.
// Zones are immutable value objects keyed by name.
type DeliveryZone struct {
	name                  string
	areas                 []string
	baseDeliveryFee       float64
	freeDeliveryThreshold float64
	guard                 guard.ConstructorGuard
}

// NewDeliveryZone creates a validated delivery zone.
// Fees and thresholds must be non-negative.
func NewDeliveryZone(
	name string,
	areas []string,
	baseDeliveryFee float64,
	freeDeliveryThreshold float64,
) (DeliveryZone, error) {
	if strings.TrimSpace(name) == "" {
		return DeliveryZone{}, ErrZoneNameIsRequired
	}

	if baseDeliveryFee < 0 {
		return DeliveryZone{}, errs.NewValueIsInvalidError("baseDeliveryFee")
	}

	if freeDeliveryThreshold < 0 {
		return DeliveryZone{}, errs.NewValueIsInvalidError("freeDeliveryThreshold")
	}

	return DeliveryZone{
		name:                  name,
		areas:                 areas,
		baseDeliveryFee:       baseDeliveryFee,
		freeDeliveryThreshold: freeDeliveryThreshold,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the zone was created via NewDeliveryZone.
func (z DeliveryZone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Name returns the zone's unique name.
func (z DeliveryZone) Name() string {
	return z.name
}

// Areas returns the free-text areas the zone covers.
func (z DeliveryZone) Areas() []string {
	return z.areas
}

// BaseDeliveryFee returns the zone's base delivery fee in KSh.
func (z DeliveryZone) BaseDeliveryFee() float64 {
	return z.baseDeliveryFee
}

// FreeDeliveryThreshold returns the order value at or above which delivery is free.
func (z DeliveryZone) FreeDeliveryThreshold() float64 {
	return z.freeDeliveryThreshold
}

// CoversArea reports whether the zone covers the given free-text area,
// matched case-insensitively.
func (z DeliveryZone) CoversArea(area string) bool {
	needle := strings.ToLower(strings.TrimSpace(area))
	for _, a := range z.areas {
		if strings.ToLower(a) == needle {
			return true
		}
	}
	return false
}

// QualifiesForFreeDelivery reports whether the order value meets the zone's threshold.
func (z DeliveryZone) QualifiesForFreeDelivery(orderValue float64) bool {
	return orderValue >= z.freeDeliveryThreshold
}

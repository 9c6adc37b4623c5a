package provider

import (
	"fmt"

	"banda/internal/pkg/errs"
)

// VehicleType represents the transport class a delivery provider operates.
type VehicleType int

const (
	// VehicleTypeUnknown represents an invalid or undefined vehicle type.
	// This value (0) helps catch uninitialized VehicleType values.
	VehicleTypeUnknown VehicleType = iota

	// VehicleTypeBoda is a motorcycle courier for small urgent loads.
	VehicleTypeBoda

	// VehicleTypeVan is a light van for medium loads.
	VehicleTypeVan

	// VehicleTypeTruck is a lorry for bulk loads.
	VehicleTypeTruck

	// VehicleTypeTractor is a farm tractor with trailer for heavy short-range loads.
	VehicleTypeTractor

	// VehicleTypePickup is a pickup truck for mixed loads.
	VehicleTypePickup
)

// defaultSpeedKmh is the travel-time planning speed for vehicle types
// without a calibrated figure. The slowest tier is used so estimates err long.
const defaultSpeedKmh = 30.0

// getVehicleTypeStrings returns a map of VehicleType values to their wire names.
func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeUnknown: "unknown",
		VehicleTypeBoda:    "boda",
		VehicleTypeVan:     "van",
		VehicleTypeTruck:   "truck",
		VehicleTypeTractor: "tractor",
		VehicleTypePickup:  "pickup",
	}
}

// getValidVehicleTypeStrings returns only valid VehicleType values.
func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleTypeUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleTypeBoda:    "boda",
		VehicleTypeVan:     "van",
		VehicleTypeTruck:   "truck",
		VehicleTypeTractor: "tractor",
		VehicleTypePickup:  "pickup",
	}
}

// VehicleTypeFromString parses a wire name into a VehicleType.
// Returns an error for names outside {boda, van, truck, tractor, pickup}.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, name := range getValidVehicleTypeStrings() {
		if name == s {
			return vt, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s),
	)
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", v),
		)
	}
	return nil
}

// String returns the wire name of the vehicle type.
// This method implements the fmt.Stringer interface and is safe to call
// on any VehicleType value, including invalid ones.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}

// AverageSpeedKmh returns the planning speed used for delivery time estimates.
func (v VehicleType) AverageSpeedKmh() float64 {
	switch v {
	case VehicleTypeBoda:
		return 35
	case VehicleTypeVan:
		return 40
	case VehicleTypeTruck:
		return 35
	case VehicleTypePickup:
		return 40
	default:
		return defaultSpeedKmh
	}
}

// IsExpressCapable reports whether the vehicle class is fast enough for
// express urgency on its own (without a banda recommendation).
func (v VehicleType) IsExpressCapable() bool {
	return v == VehicleTypeBoda || v == VehicleTypeVan
}

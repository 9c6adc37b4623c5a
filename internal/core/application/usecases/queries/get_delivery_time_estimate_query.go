package queries

import (
	"errors"

	"banda/internal/core/domain/model/provider"
	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

var ErrGetDeliveryTimeEstimateQueryIsNotConstructed = errors.New(
	"GetDeliveryTimeEstimateQuery must be created via NewGetDeliveryTimeEstimateQuery constructor",
)

// GetDeliveryTimeEstimateQuery requests the expected delivery window for a
// trip of a given distance by a given vehicle type.
type GetDeliveryTimeEstimateQuery struct {
	distanceKm  float64
	vehicleType provider.VehicleType

	guard guard.ConstructorGuard
}

// NewGetDeliveryTimeEstimateQuery creates a delivery time estimate query.
// Distance must be non-negative and the vehicle type valid.
func NewGetDeliveryTimeEstimateQuery(
	distanceKm float64,
	vehicleType provider.VehicleType,
) (GetDeliveryTimeEstimateQuery, error) {
	if distanceKm < 0 {
		return GetDeliveryTimeEstimateQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if err := vehicleType.Validate(); err != nil {
		return GetDeliveryTimeEstimateQuery{}, err
	}

	return GetDeliveryTimeEstimateQuery{
		distanceKm:  distanceKm,
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryTimeEstimateQueryIsNotConstructed if validation fails.
func (q GetDeliveryTimeEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTimeEstimateQueryIsNotConstructed)
}

// DistanceKm returns the trip distance.
func (q GetDeliveryTimeEstimateQuery) DistanceKm() float64 {
	return q.distanceKm
}

// VehicleType returns the vehicle type the trip is planned for.
func (q GetDeliveryTimeEstimateQuery) VehicleType() provider.VehicleType {
	return q.vehicleType
}

package queries

import (
	"context"

	"banda/internal/core/domain/model/schedule"
	"banda/internal/core/domain/services"
)

// GetDeliveryTimeEstimateQueryHandler computes delivery time windows from the
// vehicle planning speeds. Stateless and pure.
type GetDeliveryTimeEstimateQueryHandler struct{}

// NewGetDeliveryTimeEstimateQueryHandler creates a handler for time estimate queries.
func NewGetDeliveryTimeEstimateQueryHandler() GetDeliveryTimeEstimateQueryHandler {
	return GetDeliveryTimeEstimateQueryHandler{}
}

// Handle computes the estimate for the queried distance and vehicle type.
func (h GetDeliveryTimeEstimateQueryHandler) Handle(
	_ context.Context,
	query GetDeliveryTimeEstimateQuery,
) (schedule.TimeEstimate, error) {
	if err := query.Validate(); err != nil {
		return schedule.TimeEstimate{}, err
	}

	return services.EstimateDeliveryTime(query.DistanceKm(), query.VehicleType())
}

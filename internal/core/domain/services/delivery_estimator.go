package services

import (
	"fmt"
	"math"

	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/schedule"
	"banda/internal/pkg/errs"
)

// Fixed pickup preparation time and the uncertainty buffer added on top of
// travel time, in minutes.
const (
	estimatePrepMinutes   = 15
	estimateBufferMinutes = 10
)

// EstimateDeliveryTime computes the expected delivery window for a trip of
// distanceKm by the given vehicle type.
//
// Travel time uses the vehicle's planning speed rounded up to whole minutes;
// the minimum adds fixed preparation time and the maximum an uncertainty
// buffer. The label renders minutes below one hour and collapses to a single
// hour figure when both bounds round to the same hour.
func EstimateDeliveryTime(
	distanceKm float64,
	vehicleType provider.VehicleType,
) (schedule.TimeEstimate, error) {
	if distanceKm < 0 {
		return schedule.TimeEstimate{}, errs.NewValueIsInvalidError("distanceKm")
	}

	travelMinutes := int(math.Ceil(distanceKm / vehicleType.AverageSpeedKmh() * 60))

	estimate := schedule.TimeEstimate{
		MinMinutes: travelMinutes + estimatePrepMinutes,
		MaxMinutes: travelMinutes + estimatePrepMinutes + estimateBufferMinutes,
	}
	estimate.Label = estimateLabel(estimate.MinMinutes, estimate.MaxMinutes)

	return estimate, nil
}

func estimateLabel(minMinutes, maxMinutes int) string {
	if maxMinutes < 60 {
		return fmt.Sprintf("%d-%d mins", minMinutes, maxMinutes)
	}

	minHours := int(math.Ceil(float64(minMinutes) / 60))
	maxHours := int(math.Ceil(float64(maxMinutes) / 60))
	if minHours == maxHours {
		return fmt.Sprintf("%d hours", minHours)
	}

	return fmt.Sprintf("%d-%d hours", minHours, maxHours)
}

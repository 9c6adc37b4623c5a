package services

import (
	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/zone"
	"banda/internal/pkg/errs"
)

// bandaDiscountRate is the promotional discount applied to deliveries by
// banda-recommended providers.
const bandaDiscountRate = 0.10

// FeeBreakdown is the delivery fee quote returned to checkout.
// BandaDiscount is reported even when the free-delivery override zeroes the
// total, for display transparency.
type FeeBreakdown struct {
	BaseFee        float64 `json:"baseFee"`
	DistanceFee    float64 `json:"distanceFee"`
	BandaDiscount  float64 `json:"bandaDiscount"`
	TotalFee       float64 `json:"totalFee"`
	IsFreeDelivery bool    `json:"isFreeDelivery"`
}

// FeeCalculator is a domain service that computes the final delivery fee for
// a matched provider.
//
// Fee structure:
//   - Base fee: the provider's flat pickup cost
//   - Distance fee: distance multiplied by the provider's per-km rate
//   - Banda discount: 10% off base+distance for banda-recommended providers
//   - Free delivery: total forced to 0 when the order value meets the zone's
//     free-delivery threshold, regardless of provider or distance
type FeeCalculator struct{}

// NewFeeCalculator creates a new FeeCalculator instance.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// ComputeFee calculates the fee breakdown for one delivery.
// Errors are limited to boundary validation failures; a zero distance or a
// zero order value are valid inputs yielding well-defined breakdowns.
func (c FeeCalculator) ComputeFee(
	p *provider.DeliveryProvider,
	distanceKm float64,
	orderValue float64,
	deliveryZone zone.DeliveryZone,
) (FeeBreakdown, error) {
	if err := p.Validate(); err != nil {
		return FeeBreakdown{}, err
	}
	if err := deliveryZone.Validate(); err != nil {
		return FeeBreakdown{}, err
	}
	if distanceKm < 0 {
		return FeeBreakdown{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if orderValue < 0 {
		return FeeBreakdown{}, errs.NewValueIsInvalidError("orderValue")
	}

	baseFee := p.BaseCost()
	distanceFee := distanceKm * p.CostPerKm()

	var bandaDiscount float64
	if p.IsBandaRecommended() {
		bandaDiscount = bandaDiscountRate * (baseFee + distanceFee)
	}

	breakdown := FeeBreakdown{
		BaseFee:       baseFee,
		DistanceFee:   distanceFee,
		BandaDiscount: bandaDiscount,
		TotalFee:      baseFee + distanceFee - bandaDiscount,
	}

	if deliveryZone.QualifiesForFreeDelivery(orderValue) {
		breakdown.TotalFee = 0
		breakdown.IsFreeDelivery = true
	}

	return breakdown, nil
}

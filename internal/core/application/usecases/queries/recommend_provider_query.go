package queries

import (
	"errors"

	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/core/domain/model/schedule"
	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

var ErrRecommendProviderQueryIsNotConstructed = errors.New(
	"RecommendProviderQuery must be created via NewRecommendProviderQuery constructor",
)

// RecommendProviderQuery requests the best transport provider for an order.
type RecommendProviderQuery struct {
	orderWeightKg     float64
	distanceKm        float64
	productCategories []string
	urgency           fulfillment.Urgency

	guard guard.ConstructorGuard
}

// NewRecommendProviderQuery creates a provider recommendation query.
// Weight and distance must be non-negative; urgency must be valid.
func NewRecommendProviderQuery(
	orderWeightKg float64,
	distanceKm float64,
	productCategories []string,
	urgency fulfillment.Urgency,
) (RecommendProviderQuery, error) {
	if orderWeightKg < 0 {
		return RecommendProviderQuery{}, errs.NewValueIsInvalidError("orderWeightKg")
	}
	if distanceKm < 0 {
		return RecommendProviderQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if err := urgency.Validate(); err != nil {
		return RecommendProviderQuery{}, err
	}

	return RecommendProviderQuery{
		orderWeightKg:     orderWeightKg,
		distanceKm:        distanceKm,
		productCategories: productCategories,
		urgency:           urgency,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrRecommendProviderQueryIsNotConstructed if validation fails.
func (q RecommendProviderQuery) Validate() error {
	return q.guard.Validate(ErrRecommendProviderQueryIsNotConstructed)
}

// OrderWeightKg returns the total order weight.
func (q RecommendProviderQuery) OrderWeightKg() float64 {
	return q.orderWeightKg
}

// DistanceKm returns the trip distance.
func (q RecommendProviderQuery) DistanceKm() float64 {
	return q.distanceKm
}

// ProductCategories returns the order's product categories.
func (q RecommendProviderQuery) ProductCategories() []string {
	return q.productCategories
}

// Urgency returns the requested delivery urgency.
func (q RecommendProviderQuery) Urgency() fulfillment.Urgency {
	return q.urgency
}

// ProviderReadModel is the provider snapshot returned to checkout.
type ProviderReadModel struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	VehicleType      string   `json:"vehicleType"`
	BaseCost         float64  `json:"baseCost"`
	CostPerKm        float64  `json:"costPerKm"`
	Rating           float64  `json:"rating"`
	MaxWeightKg      float64  `json:"maxWeightKg"`
	MaxDistanceKm    float64  `json:"maxDistanceKm"`
	Specialties      []string `json:"specialties"`
	BandaRecommended bool     `json:"bandaRecommended"`
	ServiceAreas     []string `json:"serviceAreas"`
	OperatingHours   string   `json:"operatingHours"`
}

// RecommendProviderQueryResponse is the recommendation read model.
// Provider is nil when no catalogued provider qualifies - a valid outcome the
// checkout flow renders as "no provider available", never an error.
type RecommendProviderQueryResponse struct {
	Provider *ProviderReadModel     `json:"provider"`
	Estimate *schedule.TimeEstimate `json:"estimate,omitempty"`
}

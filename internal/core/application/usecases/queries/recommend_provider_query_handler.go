package queries

import (
	"context"

	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/services"
	"banda/internal/core/ports"
)

// RecommendProviderQueryHandler selects the best transport provider for an
// order from the in-memory catalogue snapshot and attaches a delivery time
// estimate for the recommended vehicle.
type RecommendProviderQueryHandler struct {
	catalog ports.ProviderCatalog
	matcher services.ProviderMatcher
}

// NewRecommendProviderQueryHandler creates a handler for provider recommendation queries.
func NewRecommendProviderQueryHandler(
	catalog ports.ProviderCatalog,
	matcher services.ProviderMatcher,
) RecommendProviderQueryHandler {
	return RecommendProviderQueryHandler{
		catalog: catalog,
		matcher: matcher,
	}
}

// Handle executes the recommendation.
// A response with a nil Provider means no catalogued provider qualified.
func (h RecommendProviderQueryHandler) Handle(
	_ context.Context,
	query RecommendProviderQuery,
) (RecommendProviderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RecommendProviderQueryResponse{}, err
	}

	criteria := services.MatchCriteria{
		OrderWeightKg:     query.OrderWeightKg(),
		DistanceKm:        query.DistanceKm(),
		ProductCategories: query.ProductCategories(),
		Urgency:           query.Urgency(),
	}

	best, err := h.matcher.Recommend(h.catalog.Providers(), criteria)
	if err != nil {
		return RecommendProviderQueryResponse{}, err
	}
	if best == nil {
		return RecommendProviderQueryResponse{}, nil
	}

	estimate, err := services.EstimateDeliveryTime(query.DistanceKm(), best.VehicleType())
	if err != nil {
		return RecommendProviderQueryResponse{}, err
	}

	readModel := providerReadModelFromDomain(best)
	return RecommendProviderQueryResponse{
		Provider: &readModel,
		Estimate: &estimate,
	}, nil
}

func providerReadModelFromDomain(p *provider.DeliveryProvider) ProviderReadModel {
	return ProviderReadModel{
		ID:               p.ID().String(),
		Name:             p.Name(),
		VehicleType:      p.VehicleType().String(),
		BaseCost:         p.BaseCost(),
		CostPerKm:        p.CostPerKm(),
		Rating:           p.Rating(),
		MaxWeightKg:      p.MaxWeightKg(),
		MaxDistanceKm:    p.MaxDistanceKm(),
		Specialties:      p.Specialties(),
		BandaRecommended: p.IsBandaRecommended(),
		ServiceAreas:     p.ServiceAreas(),
		OperatingHours:   p.OperatingHours(),
	}
}

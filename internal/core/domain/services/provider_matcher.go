package services

import (
	"sort"
	"strings"

	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/core/domain/model/provider"
	"banda/internal/pkg/errs"
)

// perishableCategories are the product categories that require (and therefore
// unlock) cold-chain transport.
var perishableCategories = map[string]bool{
	"dairy":     true,
	"meat":      true,
	"livestock": true,
}

// MatchCriteria are the order constraints a provider must satisfy.
type MatchCriteria struct {
	OrderWeightKg     float64
	DistanceKm        float64
	ProductCategories []string
	Urgency           fulfillment.Urgency
}

// Validate checks the criteria for boundary sanity before matching.
func (c MatchCriteria) Validate() error {
	if c.OrderWeightKg < 0 {
		return errs.NewValueIsInvalidError("orderWeightKg")
	}
	if c.DistanceKm < 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}
	return c.Urgency.Validate()
}

// ProviderMatcher is a domain service that selects the best transport provider
// for an order from the catalogue.
//
// Filter pipeline (all must pass):
//  1. Provider is available
//  2. Order weight within the provider's limit
//  3. Trip distance within the provider's limit
//  4. Cold-chain exclusion: providers with a "cold" specialty are reserved for
//     orders containing perishable categories (dairy, meat, livestock)
//  5. Express urgency admits only boda/van vehicles or banda-recommended providers
//
// Ranking (stable, descending priority): banda-recommended first, then higher
// rating, then lower base cost.
//
// A nil result with a nil error means no provider qualified - callers must
// treat "no match" as a valid outcome, never an error.
type ProviderMatcher struct{}

// NewProviderMatcher creates a new ProviderMatcher instance.
func NewProviderMatcher() ProviderMatcher {
	return ProviderMatcher{}
}

// Recommend returns the single best provider for the criteria, or nil when
// none qualifies. Errors are limited to boundary validation failures.
func (m ProviderMatcher) Recommend(
	providers []*provider.DeliveryProvider,
	criteria MatchCriteria,
) (*provider.DeliveryProvider, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	survivors := make([]*provider.DeliveryProvider, 0, len(providers))
	for _, p := range providers {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if m.passes(p, criteria) {
			survivors = append(survivors, p)
		}
	}

	if len(survivors) == 0 {
		return nil, nil
	}

	// Stable sort keeps catalogue order for providers that tie on all criteria.
	sort.SliceStable(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.IsBandaRecommended() != b.IsBandaRecommended() {
			return a.IsBandaRecommended()
		}
		if a.Rating() != b.Rating() {
			return a.Rating() > b.Rating()
		}
		return a.BaseCost() < b.BaseCost()
	})

	return survivors[0], nil
}

func (m ProviderMatcher) passes(p *provider.DeliveryProvider, criteria MatchCriteria) bool {
	if !p.IsAvailable() {
		return false
	}

	if !p.CanCarry(criteria.OrderWeightKg) {
		return false
	}

	if !p.CanReach(criteria.DistanceKm) {
		return false
	}

	if !hasPerishables(criteria.ProductCategories) && p.HasColdChain() {
		return false
	}

	if criteria.Urgency.IsExpress() &&
		!p.VehicleType().IsExpressCapable() && !p.IsBandaRecommended() {
		return false
	}

	return true
}

func hasPerishables(categories []string) bool {
	for _, c := range categories {
		if perishableCategories[strings.ToLower(strings.TrimSpace(c))] {
			return true
		}
	}
	return false
}

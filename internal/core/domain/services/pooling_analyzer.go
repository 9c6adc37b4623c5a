package services

import (
	"fmt"
	"math"

	"banda/internal/core/domain/model/fulfillment"
)

// Pooling economics constants, in KSh, minutes, and kg CO2.
const (
	separateFeePerSeller = 200.0

	pooledFeeHeavy     = 350.0 // totalWeight > 50kg
	pooledFeeMedium    = 250.0 // totalWeight > 20kg
	pooledFeeLight     = 180.0
	pooledHeavyWeight  = 50.0
	pooledMediumWeight = 20.0

	separateMinutesPerSeller = 90
	pooledBaseMinutes        = 60
	pooledMinutesPerSeller   = 15
	pickupOffsetMinutes      = 15

	co2KgPerSeparateRun = 2.5
	co2KgPooledFlat     = 3.0

	highlyRecommendedSavings = 100.0
	recommendedSavings       = 50.0

	routeOverlapRadiusKm  = 5.0
	routeOverlapSavingKSh = 150.0
)

// RecommendationTier grades a pooling opportunity by the money it saves.
type RecommendationTier string

const (
	TierHighlyRecommended RecommendationTier = "highly_recommended"
	TierRecommended       RecommendationTier = "recommended"
	TierOptional          RecommendationTier = "optional"
)

// PoolingStrategy is the top-level delivery recommendation for an order.
type PoolingStrategy string

const (
	StrategyPooled PoolingStrategy = "pooled"
	StrategySplit  PoolingStrategy = "split"
)

// SeparateDelivery estimates the cost of delivering each seller's shipment on its own run.
type SeparateDelivery struct {
	Fee         float64 `json:"fee"`
	TimeMinutes int     `json:"timeMinutes"`
	CO2Kg       float64 `json:"co2Kg"`
}

// PickupStop is one stop in a pooled run's pickup sequence.
type PickupStop struct {
	SellerID      string `json:"sellerId"`
	SellerName    string `json:"sellerName"`
	OffsetMinutes int    `json:"offsetMinutes"`
}

// PooledDelivery estimates the cost of combining a cluster's shipments into one run.
type PooledDelivery struct {
	Fee            float64      `json:"fee"`
	TimeMinutes    int          `json:"timeMinutes"`
	CO2Kg          float64      `json:"co2Kg"`
	PickupSequence []PickupStop `json:"pickupSequence"`
}

// PoolingSavings is the pooled-vs-separate delta for one opportunity.
type PoolingSavings struct {
	Amount           float64 `json:"amount"`
	Percentage       int     `json:"percentage"`
	TimeSavedMinutes int     `json:"timeSavedMinutes"`
	CO2SavedKg       float64 `json:"co2SavedKg"`
}

// PoolingOpportunity is a cluster of two or more sellers sharing a pickup
// location, with the economics of pooling their shipments.
type PoolingOpportunity struct {
	LocationKey   string             `json:"locationKey"`
	SellerIDs     []string           `json:"sellerIds"`
	SellerCount   int                `json:"sellerCount"`
	TotalWeightKg float64            `json:"totalWeightKg"`
	TotalSubtotal float64            `json:"totalSubtotal"`
	Separate      SeparateDelivery   `json:"separateDelivery"`
	Pooled        PooledDelivery     `json:"pooledDelivery"`
	Savings       PoolingSavings     `json:"savings"`
	Tier          RecommendationTier `json:"recommendation"`
}

// RouteOverlap is an advisory for two sellers whose pickup points are within
// 5 km of each other. Overlaps are computed from true coordinates and are
// independent of label-based clustering: they never become opportunities.
type RouteOverlap struct {
	SellerA    string  `json:"sellerA"`
	SellerB    string  `json:"sellerB"`
	DistanceKm float64 `json:"distanceKm"`
	Advisory   string  `json:"advisory"`
}

// CODRestriction reports whether the selected payment method permits pooling.
type CODRestriction struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PoolingRecommendation is the top-level pooled-vs-split call for the order.
type PoolingRecommendation struct {
	Strategy        PoolingStrategy `json:"strategy"`
	LocationKey     string          `json:"locationKey,omitempty"`
	TotalSavings    float64         `json:"totalSavings"`
	TotalCO2SavedKg float64         `json:"totalCo2SavedKg"`
}

// PoolingSummary aggregates the analysis for checkout display.
type PoolingSummary struct {
	SellerCount           int     `json:"sellerCount"`
	OpportunityCount      int     `json:"opportunityCount"`
	TotalSavings          float64 `json:"totalSavings"`
	TotalTimeSavedMinutes int     `json:"totalTimeSavedMinutes"`
	TotalCO2SavedKg       float64 `json:"totalCo2SavedKg"`
}

// PoolingAnalysis is the full result returned to the checkout flow.
type PoolingAnalysis struct {
	Opportunities  []PoolingOpportunity  `json:"poolingOpportunities"`
	RouteOverlaps  []RouteOverlap        `json:"routeOverlaps"`
	CODRestriction CODRestriction        `json:"codRestriction"`
	Recommendation PoolingRecommendation `json:"recommendation"`
	Summary        PoolingSummary        `json:"summary"`
}

// PoolingAnalyzer is a domain service that derives pooled-vs-separate delivery
// economics for a multi-seller checkout order.
//
// Key responsibilities:
//   - Clustering seller groups by exact normalized location label
//   - Computing fees, times, and emissions for separate and pooled runs
//   - Grading opportunities into recommendation tiers
//   - Enforcing the COD pooling restriction
//   - Surfacing coordinate-based route-overlap advisories
//
// Business rules:
//   - Sellers pool only on an exact normalized label match; proximity alone
//     never clusters them (overlaps stay advisories)
//   - Only clusters of two or more sellers become opportunities
//   - The analysis is pure: empty or disjoint input degrades to a split
//     recommendation, never an error
type PoolingAnalyzer struct{}

// NewPoolingAnalyzer creates a new PoolingAnalyzer instance.
func NewPoolingAnalyzer() PoolingAnalyzer {
	return PoolingAnalyzer{}
}

// Analyze derives the pooling analysis for one checkout order.
//
// groups are the order's seller fulfillment groups in checkout order; buyer is
// the delivery destination; paymentMethod gates the COD restriction. The only
// errors are boundary validation failures on improperly constructed inputs.
func (a PoolingAnalyzer) Analyze(
	groups []*fulfillment.SellerFulfillmentGroup,
	buyer fulfillment.BuyerLocation,
	paymentMethod fulfillment.PaymentMethod,
) (PoolingAnalysis, error) {
	if err := buyer.Validate(); err != nil {
		return PoolingAnalysis{}, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return PoolingAnalysis{}, err
	}
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return PoolingAnalysis{}, err
		}
	}

	opportunities := a.findOpportunities(groups)
	overlaps := a.findRouteOverlaps(groups)

	analysis := PoolingAnalysis{
		Opportunities:  opportunities,
		RouteOverlaps:  overlaps,
		CODRestriction: a.codRestriction(paymentMethod, opportunities),
		Recommendation: a.recommend(opportunities),
		Summary:        a.summarize(groups, opportunities),
	}

	return analysis, nil
}

// findOpportunities clusters groups by normalized location label, preserving
// input order, and computes the pooling economics for clusters of size >= 2.
func (a PoolingAnalyzer) findOpportunities(
	groups []*fulfillment.SellerFulfillmentGroup,
) []PoolingOpportunity {
	clusters := make(map[string][]*fulfillment.SellerFulfillmentGroup)
	order := make([]string, 0, len(groups))

	for _, g := range groups {
		key := g.NormalizedLocation()
		if _, seen := clusters[key]; !seen {
			order = append(order, key)
		}
		clusters[key] = append(clusters[key], g)
	}

	opportunities := make([]PoolingOpportunity, 0)
	for _, key := range order {
		cluster := clusters[key]
		if len(cluster) < 2 {
			continue
		}
		opportunities = append(opportunities, a.buildOpportunity(key, cluster))
	}

	return opportunities
}

func (a PoolingAnalyzer) buildOpportunity(
	key string,
	cluster []*fulfillment.SellerFulfillmentGroup,
) PoolingOpportunity {
	sellerCount := len(cluster)

	var totalWeight, totalSubtotal float64
	sellerIDs := make([]string, 0, sellerCount)
	pickups := make([]PickupStop, 0, sellerCount)

	for i, g := range cluster {
		totalWeight += g.TotalWeight()
		totalSubtotal += g.Subtotal()
		sellerIDs = append(sellerIDs, g.SellerID())
		pickups = append(pickups, PickupStop{
			SellerID:      g.SellerID(),
			SellerName:    g.SellerName(),
			OffsetMinutes: i * pickupOffsetMinutes,
		})
	}

	separateFee := float64(sellerCount) * separateFeePerSeller
	pooledFee := pooledFeeForWeight(totalWeight)

	savings := separateFee - pooledFee
	percentage := int(math.Round(savings / separateFee * 100))

	separateMinutes := sellerCount * separateMinutesPerSeller
	pooledMinutes := pooledBaseMinutes + sellerCount*pooledMinutesPerSeller

	co2Separate := float64(sellerCount) * co2KgPerSeparateRun

	return PoolingOpportunity{
		LocationKey:   key,
		SellerIDs:     sellerIDs,
		SellerCount:   sellerCount,
		TotalWeightKg: totalWeight,
		TotalSubtotal: totalSubtotal,
		Separate: SeparateDelivery{
			Fee:         separateFee,
			TimeMinutes: separateMinutes,
			CO2Kg:       co2Separate,
		},
		Pooled: PooledDelivery{
			Fee:            pooledFee,
			TimeMinutes:    pooledMinutes,
			CO2Kg:          co2KgPooledFlat,
			PickupSequence: pickups,
		},
		Savings: PoolingSavings{
			Amount:           savings,
			Percentage:       percentage,
			TimeSavedMinutes: separateMinutes - pooledMinutes,
			CO2SavedKg:       co2Separate - co2KgPooledFlat,
		},
		Tier: tierForSavings(savings),
	}
}

// pooledFeeForWeight applies the weight-tiered pooled fee schedule.
// Pooled fees tier on weight, not distance.
func pooledFeeForWeight(totalWeightKg float64) float64 {
	switch {
	case totalWeightKg > pooledHeavyWeight:
		return pooledFeeHeavy
	case totalWeightKg > pooledMediumWeight:
		return pooledFeeMedium
	default:
		return pooledFeeLight
	}
}

func tierForSavings(savings float64) RecommendationTier {
	switch {
	case savings > highlyRecommendedSavings:
		return TierHighlyRecommended
	case savings > recommendedSavings:
		return TierRecommended
	default:
		return TierOptional
	}
}

// findRouteOverlaps emits an advisory for every unordered pair of seller
// groups whose pickup coordinates are both known and within 5 km. Overlaps
// are computed independently of label clustering.
func (a PoolingAnalyzer) findRouteOverlaps(
	groups []*fulfillment.SellerFulfillmentGroup,
) []RouteOverlap {
	overlaps := make([]RouteOverlap, 0)

	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			first, second := groups[i], groups[j]
			if first.Coordinates() == nil || second.Coordinates() == nil {
				continue
			}

			distance := first.Coordinates().DistanceKm(*second.Coordinates())
			if distance >= routeOverlapRadiusKm {
				continue
			}

			overlaps = append(overlaps, RouteOverlap{
				SellerA:    first.SellerID(),
				SellerB:    second.SellerID(),
				DistanceKm: distance,
				Advisory: fmt.Sprintf(
					"%s and %s are %.1f km apart - combining their pickups saves about KSh %.0f",
					first.SellerName(), second.SellerName(), distance, routeOverlapSavingKSh,
				),
			})
		}
	}

	return overlaps
}

func (a PoolingAnalyzer) codRestriction(
	paymentMethod fulfillment.PaymentMethod,
	opportunities []PoolingOpportunity,
) CODRestriction {
	if paymentMethod.IsCOD() && len(opportunities) > 0 {
		return CODRestriction{
			Allowed:    false,
			Reason:     "COD orders delivered separately for payment verification",
			Suggestion: "Switch to AgriPay or M-Pesa to unlock pooled delivery savings",
		}
	}

	return CODRestriction{Allowed: true}
}

func (a PoolingAnalyzer) recommend(opportunities []PoolingOpportunity) PoolingRecommendation {
	if len(opportunities) == 0 {
		return PoolingRecommendation{Strategy: StrategySplit}
	}

	var totalSavings, totalCO2 float64
	for _, opp := range opportunities {
		totalSavings += opp.Savings.Amount
		totalCO2 += opp.Savings.CO2SavedKg
	}

	return PoolingRecommendation{
		Strategy:        StrategyPooled,
		LocationKey:     opportunities[0].LocationKey,
		TotalSavings:    totalSavings,
		TotalCO2SavedKg: totalCO2,
	}
}

func (a PoolingAnalyzer) summarize(
	groups []*fulfillment.SellerFulfillmentGroup,
	opportunities []PoolingOpportunity,
) PoolingSummary {
	summary := PoolingSummary{
		SellerCount:      len(groups),
		OpportunityCount: len(opportunities),
	}

	for _, opp := range opportunities {
		summary.TotalSavings += opp.Savings.Amount
		summary.TotalTimeSavedMinutes += opp.Savings.TimeSavedMinutes
		summary.TotalCO2SavedKg += opp.Savings.CO2SavedKg
	}

	return summary
}

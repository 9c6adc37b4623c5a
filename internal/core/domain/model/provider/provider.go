package provider

import (
	"errors"
	"strings"

	"banda/internal/core/domain/model/kernel"
	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

// Domain errors for delivery providers.
var (
	// ErrNameIsRequired is returned when attempting to create a provider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProviderIsNotConstructed is returned when using an improperly initialized provider.
	ErrProviderIsNotConstructed = errors.New(
		"DeliveryProvider must be created via NewDeliveryProvider constructor")
)

const (
	minRating = 0.0
	maxRating = 5.0
)

// DeliveryProvider represents a transport provider in the catalogue with the
// capability attributes the matcher filters and ranks on.
//
// Key attributes:
//   - Hard capability limits: maximum load weight and trip distance
//   - Cost structure: base cost plus a per-kilometer rate
//   - Quality signals: buyer rating and the curated bandaRecommended flag
//   - Cold-chain capability, encoded as a "cold" specialty
//
// Business rules:
//   - Provider must have a valid UUID, non-empty name, and a valid vehicle type
//   - Costs must be non-negative; rating within [0..5]
//   - Weight and distance limits must be positive
//
// New providers are created available; availability is flipped by catalog
// management, never by the matching pipeline.
type DeliveryProvider struct {
	id               kernel.UUID
	name             string
	vehicleType      VehicleType
	baseCost         float64
	costPerKm        float64
	rating           float64
	maxWeightKg      float64
	maxDistanceKm    float64
	specialties      []string
	available        bool
	bandaRecommended bool
	serviceAreas     []string
	operatingHours   string
	guard            guard.ConstructorGuard
}

// NewDeliveryProvider creates a new DeliveryProvider with the specified attributes.
// This is the only way to create a valid provider; the provider starts available.
func NewDeliveryProvider(
	id kernel.UUID,
	name string,
	vehicleType VehicleType,
	baseCost float64,
	costPerKm float64,
	rating float64,
	maxWeightKg float64,
	maxDistanceKm float64,
	specialties []string,
	bandaRecommended bool,
	serviceAreas []string,
	operatingHours string,
) (*DeliveryProvider, error) {
	p := &DeliveryProvider{
		specialties:      specialties,
		available:        true,
		bandaRecommended: bandaRecommended,
		serviceAreas:     serviceAreas,
		operatingHours:   operatingHours,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setVehicleType(vehicleType),
		p.setBaseCost(baseCost),
		p.setCostPerKm(costPerKm),
		p.setRating(rating),
		p.setMaxWeightKg(maxWeightKg),
		p.setMaxDistanceKm(maxDistanceKm),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryProvider reconstructs a DeliveryProvider from persistent storage,
// including its persisted availability. The restored provider behaves identically
// to one created through NewDeliveryProvider.
func RestoreDeliveryProvider(
	id kernel.UUID,
	name string,
	vehicleType VehicleType,
	baseCost float64,
	costPerKm float64,
	rating float64,
	maxWeightKg float64,
	maxDistanceKm float64,
	specialties []string,
	available bool,
	bandaRecommended bool,
	serviceAreas []string,
	operatingHours string,
) (*DeliveryProvider, error) {
	p, err := NewDeliveryProvider(
		id, name, vehicleType,
		baseCost, costPerKm, rating,
		maxWeightKg, maxDistanceKm,
		specialties, bandaRecommended, serviceAreas, operatingHours,
	)
	if err != nil {
		return nil, err
	}

	p.available = available
	return p, nil
}

// Validate ensures the provider was created via a constructor.
func (p *DeliveryProvider) Validate() error {
	if p == nil {
		return ErrProviderIsNotConstructed
	}
	return p.guard.Validate(ErrProviderIsNotConstructed)
}

// IsEqual compares two providers by their unique identifiers.
func (p *DeliveryProvider) IsEqual(other *DeliveryProvider) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the provider's unique identifier.
func (p *DeliveryProvider) ID() kernel.UUID {
	return p.id
}

// Name returns the provider's display name.
func (p *DeliveryProvider) Name() string {
	return p.name
}

// VehicleType returns the provider's transport class.
func (p *DeliveryProvider) VehicleType() VehicleType {
	return p.vehicleType
}

// BaseCost returns the flat pickup cost in KSh.
func (p *DeliveryProvider) BaseCost() float64 {
	return p.baseCost
}

// CostPerKm returns the per-kilometer rate in KSh.
func (p *DeliveryProvider) CostPerKm() float64 {
	return p.costPerKm
}

// Rating returns the buyer rating in [0..5].
func (p *DeliveryProvider) Rating() float64 {
	return p.rating
}

// MaxWeightKg returns the maximum load the provider accepts.
func (p *DeliveryProvider) MaxWeightKg() float64 {
	return p.maxWeightKg
}

// MaxDistanceKm returns the maximum trip distance the provider accepts.
func (p *DeliveryProvider) MaxDistanceKm() float64 {
	return p.maxDistanceKm
}

// Specialties returns the provider's free-text specialty tags.
func (p *DeliveryProvider) Specialties() []string {
	return p.specialties
}

// IsAvailable reports whether the provider currently accepts orders.
func (p *DeliveryProvider) IsAvailable() bool {
	return p.available
}

// SetAvailable flips the provider's availability.
// Only catalog management calls this; matching treats availability as read-only.
func (p *DeliveryProvider) SetAvailable(available bool) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.available = available
	return nil
}

// IsBandaRecommended reports whether the provider carries the curated flag
// granting ranking priority and the promotional fee discount.
func (p *DeliveryProvider) IsBandaRecommended() bool {
	return p.bandaRecommended
}

// ServiceAreas returns the areas the provider serves.
func (p *DeliveryProvider) ServiceAreas() []string {
	return p.serviceAreas
}

// OperatingHours returns the provider's display operating hours, e.g. "05:00-21:00".
func (p *DeliveryProvider) OperatingHours() string {
	return p.operatingHours
}

// HasColdChain reports whether any specialty mentions refrigerated transport.
func (p *DeliveryProvider) HasColdChain() bool {
	for _, s := range p.specialties {
		if strings.Contains(strings.ToLower(s), "cold") {
			return true
		}
	}
	return false
}

// CanCarry reports whether the order weight is within the provider's limit.
func (p *DeliveryProvider) CanCarry(orderWeightKg float64) bool {
	return orderWeightKg <= p.maxWeightKg
}

// CanReach reports whether the trip distance is within the provider's limit.
func (p *DeliveryProvider) CanReach(distanceKm float64) bool {
	return distanceKm <= p.maxDistanceKm
}

func (p *DeliveryProvider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *DeliveryProvider) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *DeliveryProvider) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	p.vehicleType = vehicleType
	return nil
}

func (p *DeliveryProvider) setBaseCost(baseCost float64) error {
	if baseCost < 0 {
		return errs.NewValueIsInvalidError("baseCost")
	}

	p.baseCost = baseCost
	return nil
}

func (p *DeliveryProvider) setCostPerKm(costPerKm float64) error {
	if costPerKm < 0 {
		return errs.NewValueIsInvalidError("costPerKm")
	}

	p.costPerKm = costPerKm
	return nil
}

func (p *DeliveryProvider) setRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}

	p.rating = rating
	return nil
}

func (p *DeliveryProvider) setMaxWeightKg(maxWeightKg float64) error {
	if maxWeightKg <= 0 {
		return errs.NewValueIsInvalidError("maxWeightKg")
	}

	p.maxWeightKg = maxWeightKg
	return nil
}

func (p *DeliveryProvider) setMaxDistanceKm(maxDistanceKm float64) error {
	if maxDistanceKm <= 0 {
		return errs.NewValueIsInvalidError("maxDistanceKm")
	}

	p.maxDistanceKm = maxDistanceKm
	return nil
}

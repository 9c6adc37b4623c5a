package catalogcache

import (
	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/zone"
)

// Seed provider identifiers are fixed so repeated restarts produce a stable
// catalogue and clients can reference seed providers by ID.
var (
	seedBodaID    = mustUUID("0d3f1b7c-9a64-4e1f-8b25-1c2a90d4e501")
	seedVanID     = mustUUID("7b8e2f10-3c55-4d9a-a6e1-5f0b8c7d2a02")
	seedTruckID   = mustUUID("c4a91e6d-2f38-47bb-9d04-8e6153fa0b03")
	seedTractorID = mustUUID("91f7d5a3-6b0c-4e82-bf19-2d48c7e96a04")
	seedPickupID  = mustUUID("e5062c8b-14df-4a73-8c9e-7ba0d1f35c05")
)

func mustUUID(s string) kernel.UUID {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		panic("invalid seed UUID: " + err.Error())
	}
	return id
}

// DefaultProviders returns the static default provider catalogue: five Kenyan
// transport providers covering every vehicle class.
func DefaultProviders() []*provider.DeliveryProvider {
	specs := []struct {
		id               kernel.UUID
		name             string
		vehicleType      provider.VehicleType
		baseCost         float64
		costPerKm        float64
		rating           float64
		maxWeightKg      float64
		maxDistanceKm    float64
		specialties      []string
		bandaRecommended bool
		serviceAreas     []string
		operatingHours   string
	}{
		{
			id: seedBodaID, name: "Kamau Boda Express", vehicleType: provider.VehicleTypeBoda,
			baseCost: 80, costPerKm: 15, rating: 4.7,
			maxWeightKg: 20, maxDistanceKm: 15,
			specialties:      []string{"vegetables", "fruits"},
			bandaRecommended: true,
			serviceAreas:     []string{"Westlands", "Parklands", "Kasarani"},
			operatingHours:   "06:00-21:00",
		},
		{
			id: seedVanID, name: "Mkulima Fresh Vans", vehicleType: provider.VehicleTypeVan,
			baseCost: 150, costPerKm: 20, rating: 4.8,
			maxWeightKg: 500, maxDistanceKm: 50,
			specialties:      []string{"cold chain", "dairy"},
			bandaRecommended: true,
			serviceAreas:     []string{"Kilimani", "Karen", "Langata"},
			operatingHours:   "05:00-20:00",
		},
		{
			id: seedTruckID, name: "TransRift Haulage", vehicleType: provider.VehicleTypeTruck,
			baseCost: 500, costPerKm: 35, rating: 4.2,
			maxWeightKg: 3000, maxDistanceKm: 300,
			specialties:      []string{"grains", "livestock"},
			bandaRecommended: false,
			serviceAreas:     []string{"Nakuru", "Eldoret", "Naivasha"},
			operatingHours:   "04:00-22:00",
		},
		{
			id: seedTractorID, name: "Shamba Tractor Services", vehicleType: provider.VehicleTypeTractor,
			baseCost: 300, costPerKm: 25, rating: 4.0,
			maxWeightKg: 1500, maxDistanceKm: 40,
			specialties:      []string{"bulk produce"},
			bandaRecommended: false,
			serviceAreas:     []string{"Kitale", "Kericho"},
			operatingHours:   "06:00-18:00",
		},
		{
			id: seedPickupID, name: "Duka Pickup Partners", vehicleType: provider.VehicleTypePickup,
			baseCost: 200, costPerKm: 22, rating: 4.5,
			maxWeightKg: 800, maxDistanceKm: 80,
			specialties:      []string{"mixed loads"},
			bandaRecommended: true,
			serviceAreas:     []string{"Thika", "Ruiru", "Juja"},
			operatingHours:   "06:00-20:00",
		},
	}

	providers := make([]*provider.DeliveryProvider, 0, len(specs))
	for _, s := range specs {
		p, err := provider.NewDeliveryProvider(
			s.id, s.name, s.vehicleType,
			s.baseCost, s.costPerKm, s.rating,
			s.maxWeightKg, s.maxDistanceKm,
			s.specialties, s.bandaRecommended, s.serviceAreas, s.operatingHours,
		)
		if err != nil {
			panic("invalid seed provider: " + err.Error())
		}
		providers = append(providers, p)
	}

	return providers
}

// DefaultZones returns the static default zone table.
func DefaultZones() []zone.DeliveryZone {
	specs := []struct {
		name                  string
		areas                 []string
		baseDeliveryFee       float64
		freeDeliveryThreshold float64
	}{
		{
			name:            "Nairobi Metro",
			areas:           []string{"Westlands", "Parklands", "Kasarani", "Kilimani", "Karen", "Langata"},
			baseDeliveryFee: 120, freeDeliveryThreshold: 2000,
		},
		{
			name:            "Central Highlands",
			areas:           []string{"Thika", "Ruiru", "Juja", "Nyeri", "Muranga"},
			baseDeliveryFee: 180, freeDeliveryThreshold: 3000,
		},
		{
			name:            "Rift Valley",
			areas:           []string{"Nakuru", "Naivasha", "Eldoret", "Kericho"},
			baseDeliveryFee: 250, freeDeliveryThreshold: 5000,
		},
		{
			name:            "Western Corridor",
			areas:           []string{"Kisumu", "Kakamega", "Kitale"},
			baseDeliveryFee: 300, freeDeliveryThreshold: 5000,
		},
	}

	zones := make([]zone.DeliveryZone, 0, len(specs))
	for _, s := range specs {
		z, err := zone.NewDeliveryZone(s.name, s.areas, s.baseDeliveryFee, s.freeDeliveryThreshold)
		if err != nil {
			panic("invalid seed zone: " + err.Error())
		}
		zones = append(zones, z)
	}

	return zones
}

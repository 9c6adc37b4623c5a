// Package providerrepo provides data transfer objects and mapping functions
// for delivery provider persistence. This package implements the repository
// pattern for the provider catalogue aggregate, handling the conversion
// between domain entities and database representations.
package providerrepo

import (
	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProviderDTO represents the database structure for persisting provider aggregates.
// Specialties and service areas are stored as Postgres text arrays.
type ProviderDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name             string         `gorm:"type:varchar(255);not null"`
	VehicleType      string         `gorm:"type:varchar(32);not null"`
	BaseCost         float64        `gorm:"type:numeric;not null"`
	CostPerKm        float64        `gorm:"type:numeric;not null"`
	Rating           float64        `gorm:"type:numeric;not null"`
	MaxWeightKg      float64        `gorm:"type:numeric;not null"`
	MaxDistanceKm    float64        `gorm:"type:numeric;not null"`
	Specialties      pq.StringArray `gorm:"type:text[]"`
	Available        bool           `gorm:"not null"`
	BandaRecommended bool           `gorm:"not null"`
	ServiceAreas     pq.StringArray `gorm:"type:text[]"`
	OperatingHours   string         `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for provider entities.
// Overrides GORM's default naming convention to use "providers" instead of "provider_dtos".
func (ProviderDTO) TableName() string {
	return "providers"
}

// fromDomain converts a provider domain aggregate to its database representation.
func fromDomain(p *provider.DeliveryProvider) ProviderDTO {
	return ProviderDTO{
		ID:               p.ID().Bytes(),
		Name:             p.Name(),
		VehicleType:      p.VehicleType().String(),
		BaseCost:         p.BaseCost(),
		CostPerKm:        p.CostPerKm(),
		Rating:           p.Rating(),
		MaxWeightKg:      p.MaxWeightKg(),
		MaxDistanceKm:    p.MaxDistanceKm(),
		Specialties:      p.Specialties(),
		Available:        p.IsAvailable(),
		BandaRecommended: p.IsBandaRecommended(),
		ServiceAreas:     p.ServiceAreas(),
		OperatingHours:   p.OperatingHours(),
	}
}

// toDomain converts a database DTO to a provider domain aggregate.
// Reconstructs the aggregate with its persisted availability using
// RestoreDeliveryProvider.
func toDomain(dto ProviderDTO) (*provider.DeliveryProvider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := provider.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	return provider.RestoreDeliveryProvider(
		id,
		dto.Name,
		vehicleType,
		dto.BaseCost,
		dto.CostPerKm,
		dto.Rating,
		dto.MaxWeightKg,
		dto.MaxDistanceKm,
		dto.Specialties,
		dto.Available,
		dto.BandaRecommended,
		dto.ServiceAreas,
		dto.OperatingHours,
	)
}

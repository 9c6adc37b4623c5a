// Package zonerepo provides data transfer objects and mapping functions for
// delivery zone persistence. Zones are immutable value objects keyed by name,
// so the repository surface is append-and-read.
package zonerepo

import (
	"banda/internal/core/domain/model/zone"

	"github.com/lib/pq"
)

// ZoneDTO represents the database structure for persisting delivery zones.
// Covered areas are stored as a Postgres text array.
type ZoneDTO struct {
	Name                  string         `gorm:"type:varchar(255);primaryKey"`
	Areas                 pq.StringArray `gorm:"type:text[]"`
	BaseDeliveryFee       float64        `gorm:"type:numeric;not null"`
	FreeDeliveryThreshold float64        `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for zone entities.
// Overrides GORM's default naming convention to use "delivery_zones" instead of "zone_dtos".
func (ZoneDTO) TableName() string {
	return "delivery_zones"
}

// fromDomain converts a zone value object to its database representation.
func fromDomain(z zone.DeliveryZone) ZoneDTO {
	return ZoneDTO{
		Name:                  z.Name(),
		Areas:                 z.Areas(),
		BaseDeliveryFee:       z.BaseDeliveryFee(),
		FreeDeliveryThreshold: z.FreeDeliveryThreshold(),
	}
}

// toDomain converts a database DTO to a zone value object.
// NewDeliveryZone doubles as the restore constructor since zones carry no
// mutable state.
func toDomain(dto ZoneDTO) (zone.DeliveryZone, error) {
	return zone.NewDeliveryZone(
		dto.Name,
		dto.Areas,
		dto.BaseDeliveryFee,
		dto.FreeDeliveryThreshold,
	)
}

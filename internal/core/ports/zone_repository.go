package ports

import (
	"context"

	"banda/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for delivery zones.
// Zones are keyed by name.
type ZoneRepository interface {
	// Add persists a new zone.
	// The zone must be valid and its name not already taken.
	Add(ctx context.Context, zone zone.DeliveryZone) error

	// Get retrieves a zone by name.
	Get(ctx context.Context, name string) (zone.DeliveryZone, error)

	// GetAll retrieves the full zone table.
	GetAll(ctx context.Context) ([]zone.DeliveryZone, error)
}

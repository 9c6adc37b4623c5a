package ports

import (
	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/zone"
)

// ProviderCatalog is the read-only view of the provider catalogue consumed by
// the matching and fee computation path. Implementations serve an in-memory
// snapshot so checkout computation never blocks on storage; the snapshot is
// injected as a value, enabling substitution in tests.
type ProviderCatalog interface {
	// Providers returns the current catalogue snapshot.
	// Callers must not mutate the returned aggregates.
	Providers() []*provider.DeliveryProvider

	// ProviderByID looks up one provider in the snapshot.
	ProviderByID(id string) (*provider.DeliveryProvider, bool)
}

// ZoneCatalog is the read-only view of the delivery zone table.
type ZoneCatalog interface {
	// Zones returns the current zone table snapshot.
	Zones() []zone.DeliveryZone

	// ZoneByName looks up a zone by its unique name.
	ZoneByName(name string) (zone.DeliveryZone, bool)

	// ZoneForArea resolves a free-text area to its covering zone,
	// matched case-insensitively against each zone's areas.
	ZoneForArea(area string) (zone.DeliveryZone, bool)
}

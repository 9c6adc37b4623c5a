// Package catalogcache provides an in-memory snapshot of the provider and
// zone catalogues. Checkout computation reads from the snapshot so it never
// blocks on storage; the refresh job swaps the snapshot in whole when the
// database changes.
package catalogcache

import (
	"sync"

	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/zone"
)

// Cache is a concurrency-safe snapshot of the provider and zone catalogues.
// Implements both catalog ports. Readers see a consistent snapshot; Replace
// swaps the whole set under the write lock.
type Cache struct {
	mu            sync.RWMutex
	providers     []*provider.DeliveryProvider
	providersByID map[string]*provider.DeliveryProvider
	zones         []zone.DeliveryZone
	zonesByName   map[string]zone.DeliveryZone
}

// NewCache creates an empty catalog cache.
// Call ReplaceProviders and ReplaceZones to populate it.
func NewCache() *Cache {
	return &Cache{
		providersByID: make(map[string]*provider.DeliveryProvider),
		zonesByName:   make(map[string]zone.DeliveryZone),
	}
}

// NewSeededCache creates a catalog cache populated with the static default
// catalogue. The service computes from the seed until the refresh job
// overrides it with database state.
func NewSeededCache() *Cache {
	cache := NewCache()
	cache.ReplaceProviders(DefaultProviders())
	cache.ReplaceZones(DefaultZones())
	return cache
}

// ReplaceProviders swaps the provider snapshot.
func (c *Cache) ReplaceProviders(providers []*provider.DeliveryProvider) {
	byID := make(map[string]*provider.DeliveryProvider, len(providers))
	for _, p := range providers {
		byID[p.ID().String()] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = providers
	c.providersByID = byID
}

// ReplaceZones swaps the zone snapshot.
func (c *Cache) ReplaceZones(zones []zone.DeliveryZone) {
	byName := make(map[string]zone.DeliveryZone, len(zones))
	for _, z := range zones {
		byName[z.Name()] = z
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.zones = zones
	c.zonesByName = byName
}

// Providers returns the current provider snapshot.
// Callers must not mutate the returned aggregates.
func (c *Cache) Providers() []*provider.DeliveryProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.providers
}

// ProviderByID looks up one provider in the snapshot.
func (c *Cache) ProviderByID(id string) (*provider.DeliveryProvider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.providersByID[id]
	return p, ok
}

// Zones returns the current zone snapshot.
func (c *Cache) Zones() []zone.DeliveryZone {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zones
}

// ZoneByName looks up a zone by its unique name.
func (c *Cache) ZoneByName(name string) (zone.DeliveryZone, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	z, ok := c.zonesByName[name]
	return z, ok
}

// ZoneForArea resolves a free-text area to its covering zone.
// Matching is case-insensitive against each zone's area list; the first
// covering zone in snapshot order wins.
func (c *Cache) ZoneForArea(area string) (zone.DeliveryZone, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, z := range c.zones {
		if z.CoversArea(area) {
			return z, true
		}
	}
	return zone.DeliveryZone{}, false
}

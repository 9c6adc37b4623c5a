// Package ports defines the contracts between the delivery core and
// infrastructure: persistence repositories for the provider and zone
// catalogues, the transactional unit of work, and the read-only catalog
// views injected into the computation query handlers.
package ports

import (
	"context"

	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for delivery provider aggregates.
type ProviderRepository interface {
	// Add persists a new provider aggregate to storage.
	// The provider must be valid and not already exist in the repository.
	Add(ctx context.Context, provider *provider.DeliveryProvider) error

	// Update persists changes to an existing provider aggregate.
	Update(ctx context.Context, provider *provider.DeliveryProvider) error

	// Get retrieves a provider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*provider.DeliveryProvider, error)

	// GetAll retrieves the full provider catalogue, available or not.
	// Availability filtering is a matching concern, not a storage concern.
	GetAll(ctx context.Context) ([]*provider.DeliveryProvider, error)
}

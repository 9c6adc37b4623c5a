package commands

import (
	"context"

	"banda/internal/core/domain/model/provider"
)

// CreateProviderCommandHandler handles the business logic for provider
// registration. Creates and persists new provider aggregates in the catalogue.
//
// Example:
//
//	handler := NewCreateProviderCommandHandler(uowFactory)
//	cmd, _ := NewCreateProviderCommand("Mama Mboga Vans", provider.VehicleTypeVan, attrs)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("provider registration failed: %w", err)
//	}
type CreateProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewCreateProviderCommandHandler creates a handler for provider registration.
// Requires a ProviderUoWFactory for transactional persistence operations.
func NewCreateProviderCommandHandler(uowFactory ProviderUoWFactory) CreateProviderCommandHandler {
	return CreateProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider creation command.
// Creates a new provider aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateProviderCommandHandler) Handle(ctx context.Context, cmd CreateProviderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	attrs := cmd.Attributes()
	providerAggregate, err := provider.NewDeliveryProvider(
		cmd.ProviderID(),
		cmd.Name(),
		cmd.VehicleType(),
		attrs.BaseCost,
		attrs.CostPerKm,
		attrs.Rating,
		attrs.MaxWeightKg,
		attrs.MaxDistanceKm,
		attrs.Specialties,
		attrs.BandaRecommended,
		attrs.ServiceAreas,
		attrs.OperatingHours,
	)
	if err != nil {
		return err
	}

	providerRepo := uow.ProviderRepository()
	if err = providerRepo.Add(ctx, providerAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"banda/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler handles the business logic for zone registration.
// Creates and persists new delivery zones in the pricing table.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone registration.
// Requires a ZoneUoWFactory for transactional persistence operations.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command.
// Creates a new zone value object and persists it within a transaction.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
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

	deliveryZone, err := zone.NewDeliveryZone(
		cmd.Name(),
		cmd.Areas(),
		cmd.BaseDeliveryFee(),
		cmd.FreeDeliveryThreshold(),
	)
	if err != nil {
		return err
	}

	zoneRepo := uow.ZoneRepository()
	if err = zoneRepo.Add(ctx, deliveryZone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

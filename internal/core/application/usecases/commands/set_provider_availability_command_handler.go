package commands

import "context"

// SetProviderAvailabilityCommandHandler handles availability changes for
// catalogued providers. Loads the aggregate, flips its availability, and
// persists the change within a transaction.
type SetProviderAvailabilityCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewSetProviderAvailabilityCommandHandler creates a handler for availability changes.
// Requires a ProviderUoWFactory for transactional persistence operations.
func NewSetProviderAvailabilityCommandHandler(
	uowFactory ProviderUoWFactory,
) SetProviderAvailabilityCommandHandler {
	return SetProviderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
// Returns errs.ErrObjectNotFound (wrapped) when the provider does not exist.
func (h *SetProviderAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetProviderAvailabilityCommand,
) error {
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

	providerRepo := uow.ProviderRepository()
	providerAggregate, err := providerRepo.Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if err = providerAggregate.SetAvailable(cmd.Available()); err != nil {
		return err
	}

	if err = providerRepo.Update(ctx, providerAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

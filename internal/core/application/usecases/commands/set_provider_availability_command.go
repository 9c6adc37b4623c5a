package commands

import (
	"errors"

	"banda/internal/core/domain/model/kernel"
	"banda/internal/pkg/guard"
)

var ErrSetProviderAvailabilityCommandIsNotConstructed = errors.New(
	"SetProviderAvailabilityCommand must be created via NewSetProviderAvailabilityCommand constructor",
)

// SetProviderAvailabilityCommand represents a request to flip a catalogued
// provider's availability. Unavailable providers stay in the catalogue but
// are skipped by matching.
type SetProviderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	available  bool

	guard guard.ConstructorGuard
}

// NewSetProviderAvailabilityCommand creates a command to change a provider's availability.
// Validates that the provider ID is a valid UUID.
func NewSetProviderAvailabilityCommand(
	providerID kernel.UUID,
	available bool,
) (SetProviderAvailabilityCommand, error) {
	command := SetProviderAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setProviderID(providerID); err != nil {
		return SetProviderAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetProviderAvailabilityCommandIsNotConstructed if validation fails.
func (c SetProviderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProviderAvailabilityCommandIsNotConstructed)
}

// ProviderID returns the target provider ID from the command.
func (c SetProviderAvailabilityCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// Available returns the requested availability state from the command.
func (c SetProviderAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetProviderAvailabilityCommand) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.providerID = id
	return nil
}

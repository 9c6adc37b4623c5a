package commands

import (
	"errors"
	"strings"

	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"
	"banda/internal/pkg/guard"
)

var (
	ErrCreateProviderCommandIsNotConstructed = errors.New(
		"CreateProviderCommand must be created via NewCreateProviderCommand constructor",
	)
	ErrProviderNameIsRequired = errors.New("name is required")
)

// ProviderAttributes carries the catalogue attributes of a provider being
// registered: its cost structure, capability limits, and curation flags.
// Validation of ranges happens when the aggregate is constructed.
type ProviderAttributes struct {
	BaseCost         float64
	CostPerKm        float64
	Rating           float64
	MaxWeightKg      float64
	MaxDistanceKm    float64
	Specialties      []string
	BandaRecommended bool
	ServiceAreas     []string
	OperatingHours   string
}

// CreateProviderCommand represents a request to register a new delivery
// provider in the catalogue.
//
// Example:
//
//	cmd, err := NewCreateProviderCommand("Kamau Boda Services", provider.VehicleTypeBoda, attrs)
//	if err != nil {
//	    return fmt.Errorf("invalid provider data: %w", err)
//	}
//
//	handler := NewCreateProviderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create provider: %w", err)
//	}
//	fmt.Printf("Created provider with ID: %s", cmd.ProviderID())
type CreateProviderCommand struct { //nolint:recvcheck //using for validation
	providerID  kernel.UUID
	name        string
	vehicleType provider.VehicleType
	attributes  ProviderAttributes

	guard guard.ConstructorGuard
}

// NewCreateProviderCommand creates a command to register a new provider.
// Automatically generates a unique ID for the provider.
// Validates that the name is not empty and the vehicle type is valid.
func NewCreateProviderCommand(
	name string,
	vehicleType provider.VehicleType,
	attributes ProviderAttributes,
) (CreateProviderCommand, error) {
	command := CreateProviderCommand{
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProviderID(kernel.NewUUID()),
		command.setName(name),
		command.setVehicleType(vehicleType),
	); err != nil {
		return CreateProviderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProviderCommandIsNotConstructed if validation fails.
func (c CreateProviderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProviderCommandIsNotConstructed)
}

// ProviderID returns the generated provider ID from the command.
func (c CreateProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// Name returns the provider name from the command.
func (c CreateProviderCommand) Name() string {
	return c.name
}

// VehicleType returns the provider's transport class from the command.
func (c CreateProviderCommand) VehicleType() provider.VehicleType {
	return c.vehicleType
}

// Attributes returns the provider's catalogue attributes from the command.
func (c CreateProviderCommand) Attributes() ProviderAttributes {
	return c.attributes
}

func (c *CreateProviderCommand) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.providerID = id
	return nil
}

func (c *CreateProviderCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProviderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProviderCommand) setVehicleType(vehicleType provider.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

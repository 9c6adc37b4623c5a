package commands

import (
	"errors"
	"strings"

	"banda/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired         = errors.New("name is required")
	ErrZoneBaseFeeIsInvalid       = errors.New("base delivery fee must not be negative")
	ErrZoneFreeThresholdIsInvalid = errors.New("free delivery threshold must not be negative")
)

// CreateZoneCommand represents a request to register a new delivery zone:
// the areas it covers, its base delivery fee, and its free-delivery threshold.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	name                  string
	areas                 []string
	baseDeliveryFee       float64
	freeDeliveryThreshold float64

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new delivery zone.
// Validates that the name is not empty and fees are non-negative.
func NewCreateZoneCommand(
	name string,
	areas []string,
	baseDeliveryFee float64,
	freeDeliveryThreshold float64,
) (CreateZoneCommand, error) {
	command := CreateZoneCommand{
		areas: areas,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setBaseDeliveryFee(baseDeliveryFee),
		command.setFreeDeliveryThreshold(freeDeliveryThreshold),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateZoneCommandIsNotConstructed if validation fails.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// Name returns the zone name from the command.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Areas returns the covered areas from the command.
func (c CreateZoneCommand) Areas() []string {
	return c.areas
}

// BaseDeliveryFee returns the base delivery fee from the command.
func (c CreateZoneCommand) BaseDeliveryFee() float64 {
	return c.baseDeliveryFee
}

// FreeDeliveryThreshold returns the free delivery threshold from the command.
func (c CreateZoneCommand) FreeDeliveryThreshold() float64 {
	return c.freeDeliveryThreshold
}

func (c *CreateZoneCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setBaseDeliveryFee(fee float64) error {
	if fee < 0 {
		return ErrZoneBaseFeeIsInvalid
	}

	c.baseDeliveryFee = fee
	return nil
}

func (c *CreateZoneCommand) setFreeDeliveryThreshold(threshold float64) error {
	if threshold < 0 {
		return ErrZoneFreeThresholdIsInvalid
	}

	c.freeDeliveryThreshold = threshold
	return nil
}

package queries

import (
	"errors"

	"banda/internal/pkg/guard"
)

var ErrValidateDeliverySlotQueryIsNotConstructed = errors.New(
	"ValidateDeliverySlotQuery must be created via NewValidateDeliverySlotQuery constructor",
)

// ValidateDeliverySlotQuery requests a policy verdict for one requested slot
// start. The start is accepted as-is: a malformed datetime is a verdict with
// an invalid-format reason, not a construction error.
type ValidateDeliverySlotQuery struct {
	start string

	guard guard.ConstructorGuard
}

// NewValidateDeliverySlotQuery creates a slot validation query for the given
// RFC 3339 start datetime.
func NewValidateDeliverySlotQuery(start string) ValidateDeliverySlotQuery {
	return ValidateDeliverySlotQuery{
		start: start,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrValidateDeliverySlotQueryIsNotConstructed if validation fails.
func (q ValidateDeliverySlotQuery) Validate() error {
	return q.guard.Validate(ErrValidateDeliverySlotQueryIsNotConstructed)
}

// Start returns the requested slot start datetime.
func (q ValidateDeliverySlotQuery) Start() string {
	return q.start
}

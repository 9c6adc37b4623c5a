package queries

import (
	"context"
	"time"

	"banda/internal/core/domain/model/schedule"
	"banda/internal/core/domain/services"
)

// ValidateDeliverySlotQueryHandler checks a requested slot start against the
// scheduling policy. Every failure state is a verdict with a buyer-facing
// reason; errors are reserved for improperly constructed queries.
type ValidateDeliverySlotQueryHandler struct {
	policy services.IsoSlotPolicy
	clock  func() time.Time
}

// NewValidateDeliverySlotQueryHandler creates a handler for slot validation queries.
func NewValidateDeliverySlotQueryHandler(
	policy services.IsoSlotPolicy,
	clock func() time.Time,
) ValidateDeliverySlotQueryHandler {
	return ValidateDeliverySlotQueryHandler{
		policy: policy,
		clock:  clock,
	}
}

// Handle evaluates the requested start against the policy.
func (h ValidateDeliverySlotQueryHandler) Handle(
	_ context.Context,
	query ValidateDeliverySlotQuery,
) (schedule.SlotVerdict, error) {
	if err := query.Validate(); err != nil {
		return schedule.SlotVerdict{}, err
	}

	return h.policy.ValidateStart(query.Start(), h.clock()), nil
}

package queries

import (
	"context"
	"time"

	"banda/internal/core/domain/services"
)

// GetDeliverySlotsQueryHandler produces the bookable delivery slot read model
// from the scheduling policy's rolling window.
type GetDeliverySlotsQueryHandler struct {
	policy services.IsoSlotPolicy
	clock  func() time.Time
}

// NewGetDeliverySlotsQueryHandler creates a handler for delivery slot queries.
func NewGetDeliverySlotsQueryHandler(
	policy services.IsoSlotPolicy,
	clock func() time.Time,
) GetDeliverySlotsQueryHandler {
	return GetDeliverySlotsQueryHandler{
		policy: policy,
		clock:  clock,
	}
}

// Handle generates the rolling window and filters it down to the slots that
// pass the booking buffer, delivery hours, and scheduling window rules.
func (h GetDeliverySlotsQueryHandler) Handle(
	_ context.Context,
	query GetDeliverySlotsQuery,
) (GetDeliverySlotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliverySlotsQueryResponse{}, err
	}

	now := h.clock()
	valid := h.policy.FilterValidSlots(h.policy.GenerateSlots(now), now)

	response := GetDeliverySlotsQueryResponse{Slots: valid}
	if len(valid) > 0 {
		response.NextAvailable = &valid[0]
	}

	return response, nil
}

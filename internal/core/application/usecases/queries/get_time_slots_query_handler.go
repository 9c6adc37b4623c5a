package queries

import (
	"context"
	"time"

	"banda/internal/core/domain/services"
)

// GetTimeSlotsQueryHandler produces the legacy day-grid slot read model.
// The clock is injected so tests can pin the reference instant.
type GetTimeSlotsQueryHandler struct {
	policy services.LabelSlotPolicy
	clock  func() time.Time
}

// NewGetTimeSlotsQueryHandler creates a handler for day-grid slot queries.
func NewGetTimeSlotsQueryHandler(
	policy services.LabelSlotPolicy,
	clock func() time.Time,
) GetTimeSlotsQueryHandler {
	return GetTimeSlotsQueryHandler{
		policy: policy,
		clock:  clock,
	}
}

// Handle generates the slot grid for the requested day with availability
// flags computed against the current time.
func (h GetTimeSlotsQueryHandler) Handle(
	_ context.Context,
	query GetTimeSlotsQuery,
) (GetTimeSlotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTimeSlotsQueryResponse{}, err
	}

	now := h.clock()
	return GetTimeSlotsQueryResponse{
		Slots:         h.policy.GenerateDaySlots(query.Day(), now),
		NextAvailable: h.policy.NextAvailableSlot(now),
	}, nil
}

package queries

import (
	"errors"

	"banda/internal/core/domain/model/schedule"
	"banda/internal/pkg/guard"
)

var ErrGetDeliverySlotsQueryIsNotConstructed = errors.New(
	"GetDeliverySlotsQuery must be created via NewGetDeliverySlotsQuery constructor",
)

// GetDeliverySlotsQuery requests the bookable delivery slots of the rolling
// scheduling window. This is a parameterless query; the window starts at the
// current time.
type GetDeliverySlotsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliverySlotsQuery creates a delivery slot window query.
func NewGetDeliverySlotsQuery() GetDeliverySlotsQuery {
	return GetDeliverySlotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliverySlotsQueryIsNotConstructed if validation fails.
func (q GetDeliverySlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverySlotsQueryIsNotConstructed)
}

// GetDeliverySlotsQueryResponse is the bookable slot read model.
// Slots are valid under the scheduling policy and sorted by start time;
// NextAvailable is the earliest of them, nil when the window has none.
type GetDeliverySlotsQueryResponse struct {
	Slots         []schedule.DeliverySlot `json:"slots"`
	NextAvailable *schedule.DeliverySlot  `json:"nextAvailable,omitempty"`
}

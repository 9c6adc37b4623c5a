package queries

import (
	"errors"
	"time"

	"banda/internal/core/domain/model/schedule"
	"banda/internal/pkg/guard"
)

var ErrGetTimeSlotsQueryIsNotConstructed = errors.New(
	"GetTimeSlotsQuery must be created via NewGetTimeSlotsQuery constructor",
)

// GetTimeSlotsQuery requests the day-grid time slots for one calendar day,
// as rendered by the legacy scheduling UI.
type GetTimeSlotsQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetTimeSlotsQuery creates a time slot grid query for the given day.
func NewGetTimeSlotsQuery(day time.Time) GetTimeSlotsQuery {
	return GetTimeSlotsQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTimeSlotsQueryIsNotConstructed if validation fails.
func (q GetTimeSlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetTimeSlotsQueryIsNotConstructed)
}

// Day returns the calendar day the grid is requested for.
func (q GetTimeSlotsQuery) Day() time.Time {
	return q.day
}

// GetTimeSlotsQueryResponse is the day-grid read model.
// NextAvailable looks past the requested day when every slot on it is
// unavailable; nil when nothing is available within the lookahead window.
type GetTimeSlotsQueryResponse struct {
	Slots         []schedule.TimeSlot `json:"slots"`
	NextAvailable *schedule.TimeSlot  `json:"nextAvailable,omitempty"`
}

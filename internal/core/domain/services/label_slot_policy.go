package services

import (
	"fmt"
	"time"

	"banda/internal/core/domain/model/schedule"
)

// Label policy defaults: 08:00-20:00, Monday through Saturday, 2-hour slots.
const (
	labelOpenHour      = 8
	labelCloseHour     = 20
	labelSlotHours     = 2
	labelLookaheadDays = 7
)

// LabelSlotPolicy generates and validates the day-grid time slots used by the
// legacy scheduling UI. Slots are "HH:MM" strings on a given calendar day; a
// slot is available exactly when it is not past, within business hours, and
// on a business day.
//
// This policy evolved independently of IsoSlotPolicy and the two deliberately
// share no abstraction: their rules are not equivalent (see IsoSlotPolicy).
type LabelSlotPolicy struct {
	openHour     int
	closeHour    int
	businessDays map[time.Weekday]bool
}

// NewLabelSlotPolicy creates the policy with business defaults:
// 08:00-20:00, Monday through Saturday.
func NewLabelSlotPolicy() LabelSlotPolicy {
	return LabelSlotPolicy{
		openHour:  labelOpenHour,
		closeHour: labelCloseHour,
		businessDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
	}
}

// IsBusinessDay reports whether deliveries run on the given day.
func (p LabelSlotPolicy) IsBusinessDay(day time.Time) bool {
	return p.businessDays[day.Weekday()]
}

// WithinBusinessHours reports whether a slot starting at startHour and ending
// at endHour fits the policy's business hours.
func (p LabelSlotPolicy) WithinBusinessHours(startHour, endHour int) bool {
	return startHour >= p.openHour && endHour <= p.closeHour
}

// GenerateDaySlots produces the full 2-hour slot grid for one calendar day,
// with availability flags computed against now. IsPast compares the day's
// instant of the slot's start against now, so future days are never past.
func (p LabelSlotPolicy) GenerateDaySlots(day time.Time, now time.Time) []schedule.TimeSlot {
	slots := make([]schedule.TimeSlot, 0, (p.closeHour-p.openHour)/labelSlotHours)

	for hour := p.openHour; hour+labelSlotHours <= p.closeHour; hour += labelSlotHours {
		start := fmt.Sprintf("%02d:00", hour)
		end := fmt.Sprintf("%02d:00", hour+labelSlotHours)
		slots = append(slots, p.EvaluateSlot(day, start, end, now))
	}

	return slots
}

// EvaluateSlot builds a TimeSlot for the given day and "HH:MM" window with
// its availability flags computed. Malformed times yield an unavailable slot
// rather than an error.
func (p LabelSlotPolicy) EvaluateSlot(day time.Time, start, end string, now time.Time) schedule.TimeSlot {
	slot := schedule.TimeSlot{
		ID:    fmt.Sprintf("slot-%s-%s", day.Format("2006-01-02"), start),
		Label: labelForWindow(start, end),
		Start: start,
		End:   end,
	}

	startHour, startMinute, okStart := parseClock(start)
	endHour, _, okEnd := parseClock(end)
	if !okStart || !okEnd {
		return slot
	}

	startInstant := time.Date(
		day.Year(), day.Month(), day.Day(),
		startHour, startMinute, 0, 0, now.Location(),
	)
	slot.IsPast = startInstant.Before(now)

	slot.Available = !slot.IsPast &&
		p.WithinBusinessHours(startHour, endHour) &&
		p.IsBusinessDay(day)

	return slot
}

// NextAvailableSlot scans today and the following days for the earliest
// available slot. Returns nil when no slot is available within the lookahead
// window.
func (p LabelSlotPolicy) NextAvailableSlot(now time.Time) *schedule.TimeSlot {
	for d := 0; d < labelLookaheadDays; d++ {
		day := now.AddDate(0, 0, d)
		for _, slot := range p.GenerateDaySlots(day, now) {
			if slot.Available {
				return &slot
			}
		}
	}

	return nil
}

// parseClock parses an "HH:MM" string.
func parseClock(s string) (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

func labelForWindow(start, end string) string {
	return fmt.Sprintf("%s - %s", clockLabel(start), clockLabel(end))
}

// clockLabel renders "14:00" as "2:00 PM"; malformed input falls through unchanged.
func clockLabel(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

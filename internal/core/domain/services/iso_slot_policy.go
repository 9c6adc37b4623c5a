package services

import (
	"fmt"
	"sort"
	"time"

	"banda/internal/core/domain/model/schedule"
)

// ISO policy defaults: 30-minute booking buffer, 06:00-22:00 start hours,
// 14-day scheduling window, 2-hour slots.
const (
	isoBufferMinutes = 30
	isoEarliestHour  = 6
	isoLatestHour    = 22
	isoMaxDaysAhead  = 14
	isoSlotHours     = 2
)

// Verdict reasons, reported in check order: buffer/past first, then business
// hours, then the scheduling window.
const (
	reasonInvalidFormat = "Invalid time slot format"
	reasonTooSoon       = "Time slot must be at least 30 minutes from now"
	reasonOutsideHours  = "Delivery slots are available between 6:00 AM and 10:00 PM"
	reasonTooFarAhead   = "Delivery slots can only be booked up to 14 days in advance"
)

// IsoSlotPolicy validates and generates the absolute-datetime delivery slots
// used by the scheduling endpoints. A slot is valid when its start is at
// least the booking buffer ahead of now, starts within delivery hours, and
// lies within the scheduling window.
//
// This is the authoritative policy for production scheduling. It coexists
// with LabelSlotPolicy without a shared abstraction: the two rule sets are
// not equivalent (a slot the label grid still shows as "not past" can be
// rejected here by the 30-minute buffer) and may legitimately disagree.
type IsoSlotPolicy struct {
	bufferMinutes int
	earliestHour  int
	latestHour    int
	maxDaysAhead  int
}

// NewIsoSlotPolicy creates the policy with business defaults:
// 30-minute buffer, start hour in [6..22), at most 14 days ahead.
func NewIsoSlotPolicy() IsoSlotPolicy {
	return IsoSlotPolicy{
		bufferMinutes: isoBufferMinutes,
		earliestHour:  isoEarliestHour,
		latestHour:    isoLatestHour,
		maxDaysAhead:  isoMaxDaysAhead,
	}
}

// ValidateStart checks an RFC 3339 start datetime against the policy.
// All failure states are verdicts, never errors; reasons are checked and
// reported in order: format, buffer, hours, window.
func (p IsoSlotPolicy) ValidateStart(start string, now time.Time) schedule.SlotVerdict {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return schedule.SlotVerdict{IsValid: false, Reason: reasonInvalidFormat}
	}

	if startTime.Before(now.Add(time.Duration(p.bufferMinutes) * time.Minute)) {
		return schedule.SlotVerdict{IsValid: false, Reason: reasonTooSoon}
	}

	if startTime.Hour() < p.earliestHour || startTime.Hour() >= p.latestHour {
		return schedule.SlotVerdict{IsValid: false, Reason: reasonOutsideHours}
	}

	if startTime.After(now.AddDate(0, 0, p.maxDaysAhead)) {
		return schedule.SlotVerdict{IsValid: false, Reason: reasonTooFarAhead}
	}

	return schedule.SlotVerdict{IsValid: true}
}

// ValidateSlot checks a delivery slot's start against the policy.
func (p IsoSlotPolicy) ValidateSlot(slot schedule.DeliverySlot, now time.Time) schedule.SlotVerdict {
	return p.ValidateStart(slot.Start, now)
}

// FilterValidSlots returns the valid slots sorted ascending by start time.
func (p IsoSlotPolicy) FilterValidSlots(
	slots []schedule.DeliverySlot,
	now time.Time,
) []schedule.DeliverySlot {
	valid := make([]schedule.DeliverySlot, 0, len(slots))
	for _, slot := range slots {
		if p.ValidateSlot(slot, now).IsValid {
			valid = append(valid, slot)
		}
	}

	// Starts already passed format validation above.
	sort.SliceStable(valid, func(i, j int) bool {
		a, _ := time.Parse(time.RFC3339, valid[i].Start)
		b, _ := time.Parse(time.RFC3339, valid[j].Start)
		return a.Before(b)
	})

	return valid
}

// NextAvailableSlot returns the earliest valid slot, or nil when none is valid.
func (p IsoSlotPolicy) NextAvailableSlot(
	slots []schedule.DeliverySlot,
	now time.Time,
) *schedule.DeliverySlot {
	valid := p.FilterValidSlots(slots, now)
	if len(valid) == 0 {
		return nil
	}

	return &valid[0]
}

// GenerateSlots produces the rolling scheduling window: 2-hour slots between
// 06:00 and 22:00 for each day of the window, starting today. The caller
// filters them through FilterValidSlots for the buffer and window rules.
func (p IsoSlotPolicy) GenerateSlots(now time.Time) []schedule.DeliverySlot {
	slots := make([]schedule.DeliverySlot, 0, p.maxDaysAhead*(p.latestHour-p.earliestHour)/isoSlotHours)

	for d := 0; d <= p.maxDaysAhead; d++ {
		day := now.AddDate(0, 0, d)
		for hour := p.earliestHour; hour+isoSlotHours <= p.latestHour; hour += isoSlotHours {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, now.Location())
			end := start.Add(isoSlotHours * time.Hour)

			slots = append(slots, schedule.DeliverySlot{
				ID:    fmt.Sprintf("delivery-%s-%02d", start.Format("2006-01-02"), hour),
				Label: fmt.Sprintf("%s, %s - %s", start.Format("Mon Jan 2"), start.Format("3:04 PM"), end.Format("3:04 PM")),
				Start: start.Format(time.RFC3339),
				End:   end.Format(time.RFC3339),
			})
		}
	}

	return slots
}

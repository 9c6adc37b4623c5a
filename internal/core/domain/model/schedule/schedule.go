// Package schedule holds the time-slot data types exchanged with the
// scheduling UI. Two slot representations coexist deliberately: the label
// form (day grid with "HH:MM" strings and precomputed availability flags)
// and the ISO form (absolute datetimes whose validity is computed on demand).
// Their validation rules evolved independently and are not equivalent, so
// they share no abstraction.
package schedule

// TimeSlot is a label-based slot on a single day's delivery grid.
// Available is an invariant of the other fields: a slot is available exactly
// when it is not past, within business hours, and on a business day.
type TimeSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Start     string `json:"start"` // "HH:MM"
	End       string `json:"end"`   // "HH:MM"
	Available bool   `json:"available"`
	IsPast    bool   `json:"isPast"`
}

// DeliverySlot is an ISO-datetime slot in the rolling scheduling window.
// Validity is not stored: it is computed against "now" by the ISO policy.
type DeliverySlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

// SlotVerdict is the outcome of validating a delivery slot.
// Invalid slots carry the first failing reason; malformed input is a verdict,
// never an error.
type SlotVerdict struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
}

// TimeEstimate is a delivery travel-time window with a display label.
type TimeEstimate struct {
	MinMinutes int    `json:"minMinutes"`
	MaxMinutes int    `json:"maxMinutes"`
	Label      string `json:"label"`
}

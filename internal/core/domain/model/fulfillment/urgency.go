package fulfillment

import (
	"fmt"

	"banda/internal/pkg/errs"
)

// Urgency represents how quickly the buyer needs the delivery.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota

	// UrgencyStandard is a normal delivery.
	UrgencyStandard

	// UrgencyExpress is a same-day rush delivery, restricted to fast vehicles.
	UrgencyExpress

	// UrgencyScheduled is a delivery booked into a time slot.
	UrgencyScheduled
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown:   "unknown",
		UrgencyStandard:  "standard",
		UrgencyExpress:   "express",
		UrgencyScheduled: "scheduled",
	}
}

func getValidUrgencyStrings() map[Urgency]string {
	//nolint:exhaustive // UrgencyUnknown is intentionally excluded as it's invalid
	return map[Urgency]string{
		UrgencyStandard:  "standard",
		UrgencyExpress:   "express",
		UrgencyScheduled: "scheduled",
	}
}

// UrgencyFromString parses a wire name into an Urgency.
// Returns an error for names outside {standard, express, scheduled}.
func UrgencyFromString(s string) (Urgency, error) {
	for u, name := range getValidUrgencyStrings() {
		if name == s {
			return u, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"urgency",
		fmt.Errorf("%q is not a valid urgency", s),
	)
}

// Validate checks if the Urgency value is valid.
func (u Urgency) Validate() error {
	if _, ok := getValidUrgencyStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"urgency",
			fmt.Errorf("%d is not a valid urgency", u),
		)
	}
	return nil
}

// String returns the wire name of the urgency.
// This method implements the fmt.Stringer interface and is safe to call
// on any Urgency value, including invalid ones.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// IsExpress reports whether the urgency is express.
func (u Urgency) IsExpress() bool {
	return u == UrgencyExpress
}

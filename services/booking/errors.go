package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a wizard session is missing or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrAuthRequired signals that the requested transition needs a signed-in
	// user. The selection is retained; the step does not advance.
	ErrAuthRequired = errors.New("authentication required to continue booking")

	// ErrInvalidTransition is returned when an action does not apply to the
	// session's current step.
	ErrInvalidTransition = errors.New("action not valid for current booking step")

	// ErrScheduleIncomplete is returned when date or time is missing.
	ErrScheduleIncomplete = errors.New("both date and time are required")
)

// PaymentDeclinedError is returned when the payment processor rejects a card.
// The wizard session is left untouched so the caller can retry.
type PaymentDeclinedError struct {
	Reason string
}

func (e PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

package schedule

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	// ErrInvalidArgument is returned for malformed input: bad day names,
	// bad clock strings, inverted ranges, non-positive durations.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidDuration is a specific ErrInvalidArgument for plan durations.
	ErrInvalidDuration = fmt.Errorf("%w: duration must be a positive number of weeks", ErrInvalidArgument)
	// ErrInvalidTransition is returned when a session event is not allowed in its current state.
	ErrInvalidTransition = errors.New("invalid session state transition")

	ErrActiveSessionExists = errors.New("member already has an active workout session")
	ErrOverlappingPlan     = errors.New("member already has an active workout plan in this date range")
	ErrOutsideAvailability = errors.New("requested slot is outside the trainer's availability")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

package schedule

import (
	"fmt"
	"time"
)

// Reason names why a request was rejected.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonActiveSessionExists Reason = "active_session_exists"
	ReasonOverlappingPlan     Reason = "overlapping_plan"
	ReasonOutsideAvailability Reason = "outside_availability"
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonActiveSessionExists:
		return ErrActiveSessionExists
	case ReasonOverlappingPlan:
		return ErrOverlappingPlan
	case ReasonOutsideAvailability:
		return ErrOutsideAvailability
	}
	return nil
}

// Decision is the outcome of a policy check. Business rejections are
// Decisions, not errors; only malformed input produces an error.
type Decision struct {
	Accepted bool
	Reason   Reason
	// ConflictingID is the id of the existing booking that caused the
	// rejection, when there is one.
	ConflictingID string
}

func Accept() Decision { return Decision{Accepted: true} }

func Reject(reason Reason, conflictingID string) Decision {
	return Decision{Reason: reason, ConflictingID: conflictingID}
}

// Err converts a rejection into an error for callers that propagate
// failures as errors. Accepted decisions return nil.
func (d Decision) Err() error {
	if d.Accepted {
		return nil
	}
	return &RejectionError{Reason: d.Reason, ConflictingID: d.ConflictingID}
}

// RejectionError wraps a rejected Decision. errors.Is matches the sentinel
// of its Reason (ErrOverlappingPlan, ...).
type RejectionError struct {
	Reason        Reason
	ConflictingID string
}

func (e *RejectionError) Error() string {
	msg := string(e.Reason)
	if s := e.Reason.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.ConflictingID != "" {
		return fmt.Sprintf("%s (conflicts with %s)", msg, e.ConflictingID)
	}
	return msg
}

func (e *RejectionError) Unwrap() error {
	return e.Reason.sentinel()
}

// SessionRecord is the snapshot of an existing session the policy needs.
type SessionRecord struct {
	ID      string
	OwnerID string
	State   SessionState
}

// PlanRecord is the snapshot of a workout plan the policy needs.
type PlanRecord struct {
	ID      string
	OwnerID string
	Range   DateRange
	Active  bool
}

// CanStartSession rejects when memberID already owns a session that is
// in progress or paused. Records owned by other members are ignored.
func CanStartSession(memberID string, existing []SessionRecord) Decision {
	for _, s := range existing {
		if s.OwnerID != memberID {
			continue
		}
		if s.State.IsActive() {
			return Reject(ReasonActiveSessionExists, s.ID)
		}
	}
	return Accept()
}

// CanActivateWorkoutPlan rejects when another active plan of the same
// owner overlaps the candidate's date range. The candidate's own record is
// skipped so a plan can be reactivated.
func CanActivateWorkoutPlan(candidate PlanRecord, existing []PlanRecord) Decision {
	for _, p := range existing {
		if !p.Active || p.OwnerID != candidate.OwnerID {
			continue
		}
		if candidate.ID != "" && p.ID == candidate.ID {
			continue
		}
		if candidate.Range.Overlaps(p.Range) {
			return Reject(ReasonOverlappingPlan, p.ID)
		}
	}
	return Accept()
}

// CanBookTrainerSlot accepts only requests that fit entirely inside one of
// the trainer's slots for day. Partial overlap is not enough.
func CanBookTrainerSlot(avail WeeklyAvailability, day Weekday, start, end TimeOfDay) (Decision, error) {
	r, err := NewTimeRange(start, end)
	if err != nil {
		return Decision{}, err
	}
	inside, err := avail.Contains(day, r)
	if err != nil {
		return Decision{}, err
	}
	if !inside {
		return Reject(ReasonOutsideAvailability, ""), nil
	}
	return Accept(), nil
}

// CanBookTrainerSlotAt parses day and clock strings and calls CanBookTrainerSlot.
func CanBookTrainerSlotAt(avail WeeklyAvailability, day, start, end string) (Decision, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return Decision{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Decision{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Decision{}, err
	}
	return CanBookTrainerSlot(avail, d, s, e)
}

// ComputeEndDate returns the validity period of a plan lasting weeks weeks
// from start. The end is start plus weeks*7 calendar days.
func ComputeEndDate(start time.Time, weeks int) (DateRange, error) {
	if weeks <= 0 {
		return DateRange{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, weeks)
	}
	return DateRange{Start: start, End: start.AddDate(0, 0, weeks*7)}, nil
}

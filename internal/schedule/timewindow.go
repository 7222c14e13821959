// Package schedule holds the availability and booking-conflict rules:
// weekly time windows, interval overlap, and the accept/reject policy used
// by the plan and session services.
//
// Every function in this package is pure. Decisions are computed from the
// snapshot the caller hands in; callers that read existing bookings, decide,
// and then write must serialize that sequence themselves (see the owner
// locks in internal/service and the unique index on active sessions).
package schedule

import (
	"strings"
	"time"
)

// Weekday is a day of the week. Only the seven constants below are valid.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the number of Weekday values.
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Weekdays lists all days starting from Monday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday converts a day name ("monday", "Tuesday", ...) into a Weekday.
func ParseWeekday(name string) (Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range weekdayNames {
		if n == candidate {
			return Weekday(i), nil
		}
	}
	return 0, invalidArgument("unknown day of week %q", name)
}

// WeekdayOf returns the Weekday a date falls on.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts at Sunday = 0.
	return Weekday((int(t.Weekday()) + 6) % DaysInWeek)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func invalidWeekday(d Weekday) error {
	return invalidArgument("unknown day of week %d", int(d))
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return weekdayNames[d]
}

// TimeOfDay is a wall-clock time with minute precision and no timezone.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay builds a TimeOfDay from an hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, invalidArgument("time %02d:%02d out of range", hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// MustTimeOfDay is like ParseTimeOfDay but panics on error. Intended for
// constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses a zero-padded 24h "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, invalidArgument("time %q must be formatted as HH:MM", s)
	}
	hour, ok1 := twoDigits(s[0], s[1])
	minute, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 {
		return TimeOfDay{}, invalidArgument("time %q must be formatted as HH:MM", s)
	}
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, invalidArgument("time %q out of range", s)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after u.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	switch {
	case t.minutes < u.minutes:
		return -1
	case t.minutes > u.minutes:
		return 1
	}
	return 0
}

func (t TimeOfDay) String() string {
	h, m := t.Hour(), t.Minute()
	return string([]byte{byte('0' + h/10), byte('0' + h%10), ':', byte('0' + m/10), byte('0' + m%10)})
}

// TimeRange is a closed interval [Start, End] within a single day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeRange returns a range, rejecting start > end.
func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if start.Compare(end) > 0 {
		return TimeRange{}, invalidArgument("range start %s is after end %s", start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// ParseTimeRange parses two "HH:MM" strings into a TimeRange.
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

// Contains reports whether t lies inside the range, bounds included.
func (r TimeRange) Contains(t TimeOfDay) bool {
	return r.Start.Compare(t) <= 0 && t.Compare(r.End) <= 0
}

// ContainsRange reports whether other lies entirely inside r.
func (r TimeRange) ContainsRange(other TimeRange) bool {
	return other.Start.Compare(r.Start) >= 0 && other.End.Compare(r.End) <= 0
}

// Overlaps reports whether the two ranges share at least one minute,
// touching endpoints included.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// DayHours is the operating schedule of a single day. Closed overrides the range.
type DayHours struct {
	Open   TimeOfDay
	Close  TimeOfDay
	Closed bool
}

// ClosedDay is a DayHours value for a day without opening hours.
var ClosedDay = DayHours{Closed: true}

// NewDayHours validates open <= close for an open day.
func NewDayHours(open, close TimeOfDay) (DayHours, error) {
	if _, err := NewTimeRange(open, close); err != nil {
		return DayHours{}, err
	}
	return DayHours{Open: open, Close: close}, nil
}

// WeeklyHours holds exactly one DayHours per weekday.
type WeeklyHours [DaysInWeek]DayHours

// OpenAt reports whether the schedule is open on day at t (bounds inclusive).
// A day outside Monday..Sunday is an ErrInvalidArgument.
func (w WeeklyHours) OpenAt(day Weekday, t TimeOfDay) (bool, error) {
	if !day.Valid() {
		return false, invalidWeekday(day)
	}
	h := w[day]
	if h.Closed {
		return false, nil
	}
	return h.Open.Compare(t) <= 0 && t.Compare(h.Close) <= 0, nil
}

// IsOpenAt parses day and clock and reports whether the schedule is open.
// Malformed input is an ErrInvalidArgument, never a silent false.
func (w WeeklyHours) IsOpenAt(day, clock string) (bool, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return false, err
	}
	t, err := ParseTimeOfDay(clock)
	if err != nil {
		return false, err
	}
	return w.OpenAt(d, t)
}

// WeeklyAvailability holds zero or more slots per weekday. Slots within a day
// are not required to be disjoint.
type WeeklyAvailability [DaysInWeek][]TimeRange

// Slots returns a copy of the slots for day.
func (a WeeklyAvailability) Slots(day Weekday) []TimeRange {
	if !day.Valid() {
		return nil
	}
	out := make([]TimeRange, len(a[day]))
	copy(out, a[day])
	return out
}

// SetDay returns a copy of a with day's slots replaced.
func (a WeeklyAvailability) SetDay(day Weekday, slots []TimeRange) (WeeklyAvailability, error) {
	if !day.Valid() {
		return a, invalidWeekday(day)
	}
	next := a
	next[day] = append([]TimeRange(nil), slots...)
	return next, nil
}

// AvailableAt reports whether any slot on day contains t.
func (a WeeklyAvailability) AvailableAt(day Weekday, t TimeOfDay) (bool, error) {
	if !day.Valid() {
		return false, invalidWeekday(day)
	}
	for _, slot := range a[day] {
		if slot.Contains(t) {
			return true, nil
		}
	}
	return false, nil
}

// Contains reports whether any slot on day fully contains r.
func (a WeeklyAvailability) Contains(day Weekday, r TimeRange) (bool, error) {
	if !day.Valid() {
		return false, invalidWeekday(day)
	}
	for _, slot := range a[day] {
		if slot.ContainsRange(r) {
			return true, nil
		}
	}
	return false, nil
}

// IsAvailableAt is the string form of AvailableAt.
func (a WeeklyAvailability) IsAvailableAt(day, clock string) (bool, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return false, err
	}
	t, err := ParseTimeOfDay(clock)
	if err != nil {
		return false, err
	}
	return a.AvailableAt(d, t)
}

// ContainsRange is the string form of Contains.
func (a WeeklyAvailability) ContainsRange(day, start, end string) (bool, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return false, err
	}
	r, err := ParseTimeRange(start, end)
	if err != nil {
		return false, err
	}
	return a.Contains(d, r)
}

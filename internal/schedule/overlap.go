package schedule

import (
	"cmp"
	"time"
)

// Comparable is satisfied by instants that order themselves, such as
// time.Time and TimeOfDay.
type Comparable[T any] interface {
	Compare(T) int
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] intersect. Touching endpoints count as overlapping.
func Overlaps[T Comparable[T]](aStart, aEnd, bStart, bEnd T) bool {
	return aStart.Compare(bEnd) <= 0 && aEnd.Compare(bStart) >= 0
}

// OverlapsOrdered is Overlaps for built-in ordered types.
func OverlapsOrdered[T cmp.Ordered](aStart, aEnd, bStart, bEnd T) bool {
	return aStart <= bEnd && aEnd >= bStart
}

// DateRange is a validity period with End strictly after Start.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange rejects ranges where end is not after start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, invalidArgument("end date %s must be after start date %s",
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two ranges intersect, endpoints included.
func (r DateRange) Overlaps(other DateRange) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Ended reports whether the range is over at now.
func (r DateRange) Ended(now time.Time) bool {
	return now.After(r.End)
}

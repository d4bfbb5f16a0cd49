package domain

import "time"

// Interval is the half-open time span [Start, End) an event occupies.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds the interval starting at the given date and time of day
// and lasting durationMinutes.
func NewInterval(date Date, timeUTC ClockTime, durationMinutes int) Interval {
	start := date.Time().Add(timeUTC.Duration())
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap: an event ending exactly when another starts is
// permitted.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Booking is the temporal footprint of an existing event, the candidate set
// for conflict detection.
type Booking struct {
	EventID           int
	Date              Date
	TimeUTC           ClockTime
	DurationInMinutes int
}

// Interval returns the half-open span the booking occupies.
func (b Booking) Interval() Interval {
	return NewInterval(b.Date, b.TimeUTC, b.DurationInMinutes)
}

// OverlapsAny reports whether the candidate interval intersects any booking.
func OverlapsAny(candidate Interval, bookings []Booking) bool {
	for _, b := range bookings {
		if candidate.Overlaps(b.Interval()) {
			return true
		}
	}
	return false
}

package booking

import "time"

// ReservationDuration is the fixed length of every reservation. End times are
// always derived from the start, never supplied by callers.
const ReservationDuration = time.Hour + 15*time.Minute

// Interval is a half-open time span [Start, End). Using full timestamps keeps
// reservations that run past midnight (the café closes at 00:30) on the same
// arithmetic as everything else.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval derives the reservation interval from its start instant.
func NewInterval(start time.Time) Interval {
	return Interval{
		Start: start,
		End:   start.Add(ReservationDuration),
	}
}

// Overlaps reports whether two half-open intervals intersect. Touching
// intervals (one ending exactly when the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

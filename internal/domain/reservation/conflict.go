package reservation

// Interval is a half-open [Start, End) block of court time, in fractional
// hours from midnight.
type Interval struct {
	Start float64
	End   float64
}

func NewInterval(startHour float64, durationMinutes int) Interval {
	return Interval{
		Start: startHour,
		End:   startHour + float64(durationMinutes)/60,
	}
}

// Overlaps reports strict overlap. A booking that starts exactly when
// another ends is back-to-back, not a conflict.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// HasConflict decides whether a candidate interval may be admitted against
// the live reservations already holding the same court and date. Cancelled
// reservations must be filtered out by the caller before this check.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, taken := range existing {
		if candidate.Overlaps(taken) {
			return true
		}
	}
	return false
}

package domain

import "time"

// Range is the user-selected time range. Only the three listed values are
// recognized; anything else is rejected at the usecase boundary.
type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
)

func (r Range) Days() (int, bool) {
	switch r {
	case Range7d:
		return 7, true
	case Range30d:
		return 30, true
	case Range90d:
		return 90, true
	default:
		return 0, false
	}
}

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow anchors a window of the given length to "now minus N days".
func NewWindow(now time.Time, days int) Window {
	end := now.UTC()
	return Window{
		Start: end.Add(-time.Duration(days) * 24 * time.Hour),
		End:   end,
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) Midpoint() time.Time {
	return w.Start.Add(w.End.Sub(w.Start) / 2)
}

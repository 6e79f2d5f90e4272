package aggregate

import (
	"time"

	"castboard/internal/analytics/core/domain"
)

// Granularity selects the bucket size for time-series binning. Truncation is
// pinned to UTC so bucket boundaries stay deterministic.
type Granularity string

const (
	ByDay  Granularity = "day"
	ByHour Granularity = "hour"
)

func (g Granularity) step() time.Duration {
	if g == ByHour {
		return time.Hour
	}
	return 24 * time.Hour
}

func (g Granularity) truncate(t time.Time) time.Time {
	t = t.UTC()
	if g == ByHour {
		return t.Truncate(time.Hour)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (g Granularity) label(t time.Time) string {
	if g == ByHour {
		return t.Format("2006-01-02 15:04")
	}
	return t.Format("2006-01-02")
}

// BinTimeSeries produces exactly one point per bucket in the window, in
// chronological order, zero-filled. Buckets are keyed by the row timestamp
// truncated to the granularity; a boundary row belongs to the bucket it
// opens. Rows whose key falls outside the pre-built range are dropped.
func BinTimeSeries(events []domain.Event, w domain.Window, g Granularity) []domain.TimeSeriesPoint {
	n := int(w.End.Sub(w.Start) / g.step())
	if n <= 0 {
		return []domain.TimeSeriesPoint{}
	}

	type bucket struct {
		plays    int
		sessions map[string]struct{}
	}

	// Build the full key range before scanning any row so sparse input can
	// never leave gaps in the output.
	first := g.truncate(w.Start)
	keys := make([]time.Time, n)
	buckets := make(map[time.Time]*bucket, n)
	for i := 0; i < n; i++ {
		k := first.Add(time.Duration(i) * g.step())
		keys[i] = k
		buckets[k] = &bucket{sessions: make(map[string]struct{})}
	}

	for _, ev := range events {
		b, ok := buckets[g.truncate(ev.Timestamp)]
		if !ok {
			continue
		}
		if ev.Type == domain.EventPlay {
			b.plays++
		}
		b.sessions[ev.SessionID] = struct{}{}
	}

	points := make([]domain.TimeSeriesPoint, n)
	for i, k := range keys {
		b := buckets[k]
		points[i] = domain.TimeSeriesPoint{
			BucketLabel:     g.label(k),
			Plays:           b.plays,
			UniqueListeners: len(b.sessions),
		}
	}
	return points
}

package aggregate

import "castboard/internal/analytics/core/domain"

// Segment boundaries in seconds of cumulative per-session listen time.
var segmentDefs = []struct {
	name string
	min  float64 // inclusive
	max  float64 // exclusive, <0 means unbounded
}{
	{"Quick (<1m)", 0, 60},
	{"Short (1-5m)", 60, 300},
	{"Medium (5-15m)", 300, 900},
	{"Long (15m+)", 900, -1},
}

// SegmentEngagement classifies sessions into engagement buckets by the sum of
// their listen durations. Rows without a duration contribute nothing and do
// not create a session entry; segments with zero members are omitted so a
// pie-style display has no zero slices.
func SegmentEngagement(events []domain.Event) []domain.EngagementSegment {
	totals := make(map[string]float64)
	for _, ev := range events {
		if ev.HasDuration {
			totals[ev.SessionID] += ev.ListenDuration
		}
	}

	counts := make([]int, len(segmentDefs))
	for _, total := range totals {
		for i, def := range segmentDefs {
			if total >= def.min && (def.max < 0 || total < def.max) {
				counts[i]++
				break
			}
		}
	}

	segments := make([]domain.EngagementSegment, 0, len(segmentDefs))
	for i, def := range segmentDefs {
		if counts[i] > 0 {
			segments = append(segments, domain.EngagementSegment{Name: def.name, Sessions: counts[i]})
		}
	}
	return segments
}

package aggregate

import (
	"fmt"
	"sort"

	"castboard/internal/analytics/core/domain"
)

const unknownLabel = "Unknown"

// TopCountries counts events per listener country, descending, truncated to
// limit. Missing country values fold into "Unknown".
func TopCountries(events []domain.Event, limit int) []domain.CountryCount {
	counts := make(map[string]int)
	for _, ev := range events {
		counts[orUnknown(ev.Country)]++
	}

	out := make([]domain.CountryCount, 0, len(counts))
	for country, n := range counts {
		out = append(out, domain.CountryCount{Country: country, Plays: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Plays != out[j].Plays {
			return out[i].Plays > out[j].Plays
		}
		return out[i].Country < out[j].Country
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DeviceBreakdown counts events per device type, descending.
func DeviceBreakdown(events []domain.Event) []domain.DeviceCount {
	counts := make(map[string]int)
	for _, ev := range events {
		counts[orUnknown(ev.DeviceType)]++
	}

	out := make([]domain.DeviceCount, 0, len(counts))
	for device, n := range counts {
		out = append(out, domain.DeviceCount{Device: device, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Device < out[j].Device
	})
	return out
}

// HourOfDayActivity histograms play events over the 24 hours of the day
// (UTC). All 24 buckets are always present.
func HourOfDayActivity(events []domain.Event) []domain.HourActivity {
	var counts [24]int
	for _, ev := range events {
		if ev.Type == domain.EventPlay {
			counts[ev.Timestamp.UTC().Hour()]++
		}
	}

	out := make([]domain.HourActivity, 24)
	for h := 0; h < 24; h++ {
		out[h] = domain.HourActivity{
			Hour:  fmt.Sprintf("%02d:00", h),
			Plays: counts[h],
		}
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return unknownLabel
	}
	return s
}

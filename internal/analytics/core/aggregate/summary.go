// Package aggregate holds the pure transforms that turn raw event rows into
// the statistics and series the dashboard renders. Every function is
// deterministic given the same rows and carries no state between calls.
package aggregate

import (
	"math"

	"castboard/internal/analytics/core/domain"
)

// Summarize computes the scalar overview statistics for one window of events.
// Rows are assumed to already be scoped to the window and the caller's
// episodes; an empty slice yields an all-zero result, never an error.
func Summarize(events []domain.Event, w domain.Window) domain.SummaryStats {
	var stats domain.SummaryStats
	var totalDuration float64

	sessions := make(map[string]struct{}, len(events))
	completes := 0

	for _, ev := range events {
		switch ev.Type {
		case domain.EventPlay:
			stats.TotalPlays++
		case domain.EventComplete:
			completes++
		case domain.EventShare:
			stats.TotalShares++
		case domain.EventDownload:
			stats.TotalDownloads++
		}
		sessions[ev.SessionID] = struct{}{}
		if ev.HasDuration {
			totalDuration += ev.ListenDuration
		}
	}
	stats.UniqueListeners = len(sessions)

	// Rates divide by play count; zero plays is defined as zero, not NaN.
	if stats.TotalPlays > 0 {
		stats.AverageListenTime = roundToInt(totalDuration / float64(stats.TotalPlays))
		stats.CompletionRatePercent = roundToInt(float64(completes) / float64(stats.TotalPlays) * 100)
	}

	stats.GrowthPercent = growthPercent(events, w)

	return stats
}

// growthPercent splits the window at its temporal midpoint and compares play
// counts; the first half owning zero plays means "no growth signal" (0), not
// infinite growth.
func growthPercent(events []domain.Event, w domain.Window) int {
	mid := w.Midpoint()

	var firstHalf, secondHalf int
	for _, ev := range events {
		if ev.Type != domain.EventPlay || !w.Contains(ev.Timestamp) {
			continue
		}
		if ev.Timestamp.Before(mid) {
			firstHalf++
		} else {
			secondHalf++
		}
	}

	if firstHalf == 0 {
		return 0
	}
	return roundToInt(float64(secondHalf-firstHalf) / float64(firstHalf) * 100)
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}

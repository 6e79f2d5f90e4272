package aggregate

import (
	"sort"
	"time"

	"castboard/internal/analytics/core/domain"
)

const trendWeek = 7 * 24 * time.Hour

// RankEpisodes computes per-episode summary statistics plus a week-over-week
// trend, then ranks the episodes by descending total plays. The sort is
// stable: exact play-count ties keep the episodes' original order.
func RankEpisodes(episodes []domain.Episode, eventsByEpisode map[string][]domain.Event, now time.Time) []domain.EpisodeStats {
	now = now.UTC()

	// Growth uses the midpoint of the trailing two weeks, which makes it the
	// percentage companion of the trend indicator (same split point).
	trendWindow := domain.Window{Start: now.Add(-2 * trendWeek), End: now}

	ranked := make([]domain.EpisodeStats, 0, len(episodes))
	for _, ep := range episodes {
		events := eventsByEpisode[ep.ID]
		ranked = append(ranked, domain.EpisodeStats{
			EpisodeID: ep.ID,
			Title:     ep.Title,
			Stats:     Summarize(events, trendWindow),
			Trend:     weeklyTrend(events, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.TotalPlays > ranked[j].Stats.TotalPlays
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// weeklyTrend compares play counts in [now-7d, now) against [now-14d, now-7d).
func weeklyTrend(events []domain.Event, now time.Time) domain.Trend {
	thisWeek := domain.Window{Start: now.Add(-trendWeek), End: now}
	lastWeek := domain.Window{Start: now.Add(-2 * trendWeek), End: now.Add(-trendWeek)}

	var recent, previous int
	for _, ev := range events {
		if ev.Type != domain.EventPlay {
			continue
		}
		switch {
		case thisWeek.Contains(ev.Timestamp):
			recent++
		case lastWeek.Contains(ev.Timestamp):
			previous++
		}
	}

	switch {
	case recent > previous:
		return domain.TrendUp
	case recent < previous:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

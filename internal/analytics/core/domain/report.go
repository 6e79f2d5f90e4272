package domain

// ReportState distinguishes "the query returned no rows" from a populated
// result. Failures travel as errors and never as a state, so every report is
// one of three outcomes: error, empty, or populated.
type ReportState string

const (
	ReportEmpty     ReportState = "empty"
	ReportPopulated ReportState = "populated"
)

type SummaryStats struct {
	TotalPlays            int
	UniqueListeners       int
	AverageListenTime     int // seconds
	GrowthPercent         int
	TotalShares           int
	TotalDownloads        int
	CompletionRatePercent int
}

type TimeSeriesPoint struct {
	BucketLabel     string
	Plays           int
	UniqueListeners int
}

type EngagementSegment struct {
	Name     string
	Sessions int
}

type CountryCount struct {
	Country string
	Plays   int
}

type DeviceCount struct {
	Device string
	Count  int
}

type HourActivity struct {
	Hour  string // "00:00" .. "23:00", UTC
	Plays int
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// EpisodeStats is the per-episode row of the performance table. Rank is the
// 1-based position after sorting by plays and exists only for display.
type EpisodeStats struct {
	EpisodeID string
	Title     string
	Stats     SummaryStats
	Trend     Trend
	Rank      int
}

type OverviewReport struct {
	State  ReportState
	Range  Range
	Stats  SummaryStats
	Series []TimeSeriesPoint
}

type AudienceReport struct {
	State     ReportState
	Segments  []EngagementSegment
	Countries []CountryCount
	Devices   []DeviceCount
	HourOfDay []HourActivity
}

type PerformanceReport struct {
	State    ReportState
	Episodes []EpisodeStats
}

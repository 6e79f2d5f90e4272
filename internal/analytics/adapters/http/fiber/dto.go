package fiber

type SummaryStatsResponse struct {
	TotalPlays            int `json:"total_plays"`
	UniqueListeners       int `json:"unique_listeners"`
	AverageListenTime     int `json:"average_listen_time_seconds"`
	GrowthPercent         int `json:"growth_percent"`
	TotalShares           int `json:"total_shares"`
	TotalDownloads        int `json:"total_downloads"`
	CompletionRatePercent int `json:"completion_rate_percent"`
}

type TimeSeriesPointResponse struct {
	Bucket          string `json:"bucket"`
	Plays           int    `json:"plays"`
	UniqueListeners int    `json:"unique_listeners"`
}

type OverviewResponse struct {
	State  string                    `json:"state"`
	Range  string                    `json:"range"`
	Stats  *SummaryStatsResponse     `json:"stats,omitempty"`
	Series []TimeSeriesPointResponse `json:"series,omitempty"`
}

type EngagementSegmentResponse struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions"`
}

type CountryResponse struct {
	Country string `json:"country"`
	Plays   int    `json:"plays"`
}

type DeviceResponse struct {
	Device string `json:"device"`
	Count  int    `json:"count"`
}

type HourActivityResponse struct {
	Hour  string `json:"hour"`
	Plays int    `json:"plays"`
}

type AudienceResponse struct {
	State     string                      `json:"state"`
	Segments  []EngagementSegmentResponse `json:"segments,omitempty"`
	Countries []CountryResponse           `json:"countries,omitempty"`
	Devices   []DeviceResponse            `json:"devices,omitempty"`
	HourOfDay []HourActivityResponse      `json:"hour_of_day,omitempty"`
}

type EpisodeStatsResponse struct {
	EpisodeID string               `json:"episode_id"`
	Title     string               `json:"title"`
	Rank      int                  `json:"rank"`
	Trend     string               `json:"trend"`
	Stats     SummaryStatsResponse `json:"stats"`
}

type PerformanceResponse struct {
	State    string                 `json:"state"`
	Episodes []EpisodeStatsResponse `json:"episodes,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_time_range"`
	Message string `json:"message,omitempty" example:"unrecognized time range"`
}

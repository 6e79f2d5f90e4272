package fiber

// CreateEventRequest is the playback-event ingestion payload.
// @Description Playback event DTO
type CreateEventRequest struct {
	EpisodeID      string   `json:"episode_id"`
	EventType      string   `json:"event_type"`
	SessionID      string   `json:"session_id"`
	Timestamp      int64    `json:"timestamp"`
	ListenDuration *float64 `json:"listen_duration,omitempty"`
	Country        string   `json:"country,omitempty"`
	DeviceType     string   `json:"device_type,omitempty"`
}

type CreateEventResponse struct {
	Status string `json:"status"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message,omitempty" example:"Event payload is invalid"`
}

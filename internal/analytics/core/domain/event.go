package domain

import "time"

type EventType string

const (
	EventPlay     EventType = "play"
	EventComplete EventType = "complete"
	EventShare    EventType = "share"
	EventDownload EventType = "download"
)

// Event is one observed interaction with an episode. Rows are created by the
// playback instrumentation and are read-only input to all aggregation.
type Event struct {
	EpisodeID string
	Type      EventType
	Timestamp time.Time
	SessionID string

	// ListenDuration is valid only when HasDuration is true; share and
	// download events usually carry none.
	ListenDuration float64
	HasDuration    bool

	Country    string
	DeviceType string
}

type Episode struct {
	ID    string
	Title string
}

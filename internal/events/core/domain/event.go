package domain

import "time"

// Event is one playback interaction reported by the player instrumentation.
// Rows are immutable once stored.
type Event struct {
	EpisodeID      string
	EventType      string
	SessionID      string
	EventTime      time.Time
	ListenDuration *float64 // seconds; nil on events that carry no duration
	Country        string
	DeviceType     string
	DedupeKey      string
}

// KnownEventTypes is the accepted instrumentation enumeration. Kept as a map
// so new event types are a one-line addition.
var KnownEventTypes = map[string]struct{}{
	"play":     {},
	"complete": {},
	"share":    {},
	"download": {},
}

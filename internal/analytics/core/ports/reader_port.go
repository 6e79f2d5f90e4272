package ports

import (
	"context"
	"time"

	"castboard/internal/analytics/core/domain"
)

// EventReader is the event-store query contract: equality on episode ids,
// optional lower time bound. Results are returned whole; the core handles
// arbitrary-size row sets in memory.
type EventReader interface {
	ListEvents(ctx context.Context, episodeIDs []string, since *time.Time) ([]domain.Event, error)
}

// EpisodeReader lists the episodes owned by a user.
type EpisodeReader interface {
	ListEpisodes(ctx context.Context, userID string) ([]domain.Episode, error)
}

// SnapshotCache stores the most recent overview report per user and range.
// Implementations may be lossy; a miss just means recompute.
type SnapshotCache interface {
	Get(ctx context.Context, userID string, r domain.Range) (*domain.OverviewReport, error)
	Set(ctx context.Context, userID string, r domain.Range, report *domain.OverviewReport) error
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReader = (*EventReader)(nil)

const listEventsSQL = `
SELECT
    episode_id,
    event_type,
    event_time,
    session_id,
    listen_duration,
    country,
    device_type
FROM playback_events
WHERE episode_id = ANY($1)`

// ListEvents returns every event row for the given episodes, optionally
// bounded below by since. The whole result set is materialized; aggregation
// happens in the core.
func (r *EventReader) ListEvents(ctx context.Context, episodeIDs []string, since *time.Time) ([]domain.Event, error) {
	query := listEventsSQL
	args := []any{pq.Array(episodeIDs)}
	if since != nil {
		query += " AND event_time >= $2"
		args = append(args, since.UTC())
	}
	query += " ORDER BY event_time"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			ev       domain.Event
			evType   string
			duration sql.NullFloat64
			country  sql.NullString
			device   sql.NullString
		)
		if err := rows.Scan(&ev.EpisodeID, &evType, &ev.Timestamp, &ev.SessionID, &duration, &country, &device); err != nil {
			return nil, err
		}
		ev.Type = domain.EventType(evType)
		ev.Timestamp = ev.Timestamp.UTC()
		if duration.Valid {
			ev.ListenDuration = duration.Float64
			ev.HasDuration = true
		}
		ev.Country = country.String
		ev.DeviceType = device.String
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

type EpisodeReader struct {
	db DB
}

func NewEpisodeReader(db DB) *EpisodeReader {
	return &EpisodeReader{db: db}
}

var _ ports.EpisodeReader = (*EpisodeReader)(nil)

const listEpisodesSQL = `
SELECT id, title
FROM episodes
WHERE user_id = $1
ORDER BY created_at, id`

func (r *EpisodeReader) ListEpisodes(ctx context.Context, userID string) ([]domain.Episode, error) {
	rows, err := r.db.QueryContext(ctx, listEpisodesSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var episodes []domain.Episode
	for rows.Next() {
		var ep domain.Episode
		if err := rows.Scan(&ep.ID, &ep.Title); err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return episodes, nil
}

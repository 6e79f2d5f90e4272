package postgres

import (
	"context"

	"castboard/internal/events/core/domain"
	"castboard/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

const insertEventSQL = `
INSERT INTO playback_events (
    episode_id,
    event_type,
    session_id,
    event_time,
    listen_duration,
    country,
    device_type,
    dedupe_key
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	var country, device any
	if e.Country != "" {
		country = e.Country
	}
	if e.DeviceType != "" {
		device = e.DeviceType
	}

	var duration any
	if e.ListenDuration != nil {
		duration = *e.ListenDuration
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EpisodeID,
		e.EventType,
		e.SessionID,
		e.EventTime,
		duration,
		country,
		device,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

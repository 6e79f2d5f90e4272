package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"castboard/internal/events/core/domain"
	"castboard/internal/events/core/ports"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrUnknownEventType = errors.New("unknown event type")
	ErrFutureTime       = errors.New("timestamp cannot be in the future")
	ErrNegativeDuration = errors.New("listen duration cannot be negative")
)

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo}
}

type StoreEventInput struct {
	EpisodeID      string
	EventType      string
	SessionID      string
	Timestamp      int64
	ListenDuration *float64
	Country        string
	DeviceType     string
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	eventTime := time.Unix(in.Timestamp, 0).UTC()

	e := &domain.Event{
		EpisodeID:      in.EpisodeID,
		EventType:      in.EventType,
		SessionID:      in.SessionID,
		EventTime:      eventTime,
		ListenDuration: in.ListenDuration,
		Country:        in.Country,
		DeviceType:     in.DeviceType,
		DedupeKey:      buildDedupeKey(in, eventTime),
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(in StoreEventInput, t time.Time) string {
	// episode_id + session_id + event_type + unix_timestamp
	return fmt.Sprintf("%s|%s|%s|%d",
		in.EpisodeID,
		in.SessionID,
		in.EventType,
		t.Unix(),
	)
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	for _, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {
	if in.EpisodeID == "" || in.SessionID == "" {
		return ErrInvalidEvent
	}

	if _, ok := domain.KnownEventTypes[in.EventType]; !ok {
		return ErrUnknownEventType
	}

	if in.ListenDuration != nil && *in.ListenDuration < 0 {
		return ErrNegativeDuration
	}

	now := time.Now().Unix()
	if in.Timestamp > now {
		return ErrFutureTime
	}

	return nil
}

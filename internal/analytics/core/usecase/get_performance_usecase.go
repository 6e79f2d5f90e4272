package usecase

import (
	"context"
	"time"

	"castboard/internal/analytics/core/aggregate"
	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/ports"
)

type GetPerformanceInput struct {
	UserID string
}

type GetPerformanceUseCase struct {
	events   ports.EventReader
	episodes ports.EpisodeReader
	now      func() time.Time
}

func NewGetPerformanceUseCase(events ports.EventReader, episodes ports.EpisodeReader) *GetPerformanceUseCase {
	return &GetPerformanceUseCase{events: events, episodes: episodes, now: time.Now}
}

// Execute ranks the user's episodes by total plays over their full history,
// with a week-over-week trend per episode. Events are fetched in one query
// and partitioned by episode, which is equivalent to per-episode fetches.
func (uc *GetPerformanceUseCase) Execute(ctx context.Context, in GetPerformanceInput) (*domain.PerformanceReport, error) {
	if in.UserID == "" {
		return nil, ErrMissingUser
	}

	episodes, err := uc.episodes.ListEpisodes(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return &domain.PerformanceReport{State: domain.ReportEmpty}, nil
	}

	events, err := uc.events.ListEvents(ctx, episodeIDs(episodes), nil)
	if err != nil {
		return nil, err
	}

	byEpisode := make(map[string][]domain.Event, len(episodes))
	for _, ev := range events {
		byEpisode[ev.EpisodeID] = append(byEpisode[ev.EpisodeID], ev)
	}

	return &domain.PerformanceReport{
		State:    domain.ReportPopulated,
		Episodes: aggregate.RankEpisodes(episodes, byEpisode, uc.now()),
	}, nil
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"castboard/internal/analytics/core/aggregate"
	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/latest"
	"castboard/internal/analytics/core/ports"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidTimeRange = errors.New("unrecognized time range")
	ErrMissingUser      = errors.New("user id is required")
)

type GetOverviewInput struct {
	UserID string
	Range  domain.Range
}

type GetOverviewUseCase struct {
	events   ports.EventReader
	episodes ports.EpisodeReader
	cache    ports.SnapshotCache // nil disables snapshot caching

	now func() time.Time

	mu     sync.Mutex
	guards map[string]*latest.Guard[*domain.OverviewReport]
}

func NewGetOverviewUseCase(events ports.EventReader, episodes ports.EpisodeReader, cache ports.SnapshotCache) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		events:   events,
		episodes: episodes,
		cache:    cache,
		now:      time.Now,
		guards:   make(map[string]*latest.Guard[*domain.OverviewReport]),
	}
}

// Execute serves the overview from the snapshot cache when a fresh entry
// exists, otherwise fetches the user's events for the selected window and
// derives the overview statistics and the daily series. Concurrent refreshes
// for the same user and range are sequenced so a slow stale result never
// replaces a newer snapshot.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, in GetOverviewInput) (*domain.OverviewReport, error) {
	if in.UserID == "" {
		return nil, ErrMissingUser
	}
	days, ok := in.Range.Days()
	if !ok {
		return nil, ErrInvalidTimeRange
	}

	if uc.cache != nil {
		snapshot, err := uc.cache.Get(ctx, in.UserID, in.Range)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("overview snapshot cache read failed")
		} else if snapshot != nil {
			return snapshot, nil
		}
	}

	guard := uc.guardFor(in.UserID, in.Range)
	seq := guard.Begin()

	episodes, err := uc.episodes.ListEpisodes(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return &domain.OverviewReport{State: domain.ReportEmpty, Range: in.Range}, nil
	}

	window := domain.NewWindow(uc.now(), days)
	events, err := uc.events.ListEvents(ctx, episodeIDs(episodes), &window.Start)
	if err != nil {
		return nil, err
	}

	report := &domain.OverviewReport{State: domain.ReportEmpty, Range: in.Range}
	if len(events) > 0 {
		report.State = domain.ReportPopulated
		report.Stats = aggregate.Summarize(events, window)
		report.Series = aggregate.BinTimeSeries(events, window, aggregate.ByDay)
	}

	if guard.Accept(seq, report) && uc.cache != nil {
		if err := uc.cache.Set(ctx, in.UserID, in.Range, report); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("overview snapshot cache write failed")
		}
	}

	return report, nil
}

func (uc *GetOverviewUseCase) guardFor(userID string, r domain.Range) *latest.Guard[*domain.OverviewReport] {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	key := userID + "|" + string(r)
	g, ok := uc.guards[key]
	if !ok {
		g = latest.NewGuard[*domain.OverviewReport]()
		uc.guards[key] = g
	}
	return g
}

func episodeIDs(episodes []domain.Episode) []string {
	ids := make([]string, len(episodes))
	for i, ep := range episodes {
		ids[i] = ep.ID
	}
	return ids
}

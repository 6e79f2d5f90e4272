package usecase

import (
	"context"
	"time"

	"castboard/internal/analytics/core/aggregate"
	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/ports"

	"golang.org/x/sync/errgroup"
)

const topCountryLimit = 6

type GetAudienceInput struct {
	UserID string

	// Range is optional; when empty the full listening history is used,
	// matching how the audience view reads best over all time.
	Range domain.Range
}

type GetAudienceUseCase struct {
	events   ports.EventReader
	episodes ports.EpisodeReader
	now      func() time.Time
}

func NewGetAudienceUseCase(events ports.EventReader, episodes ports.EpisodeReader) *GetAudienceUseCase {
	return &GetAudienceUseCase{events: events, episodes: episodes, now: time.Now}
}

func (uc *GetAudienceUseCase) Execute(ctx context.Context, in GetAudienceInput) (*domain.AudienceReport, error) {
	if in.UserID == "" {
		return nil, ErrMissingUser
	}

	var since *time.Time
	if in.Range != "" {
		days, ok := in.Range.Days()
		if !ok {
			return nil, ErrInvalidTimeRange
		}
		start := domain.NewWindow(uc.now(), days).Start
		since = &start
	}

	episodes, err := uc.episodes.ListEpisodes(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return &domain.AudienceReport{State: domain.ReportEmpty}, nil
	}

	events, err := uc.events.ListEvents(ctx, episodeIDs(episodes), since)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return &domain.AudienceReport{State: domain.ReportEmpty}, nil
	}

	// The four breakdowns are independent transforms over the same read-only
	// rows, so they can run in parallel.
	report := &domain.AudienceReport{State: domain.ReportPopulated}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Segments = aggregate.SegmentEngagement(events)
		return nil
	})
	g.Go(func() error {
		report.Countries = aggregate.TopCountries(events, topCountryLimit)
		return nil
	})
	g.Go(func() error {
		report.Devices = aggregate.DeviceBreakdown(events)
		return nil
	})
	g.Go(func() error {
		report.HourOfDay = aggregate.HourOfDayActivity(events)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

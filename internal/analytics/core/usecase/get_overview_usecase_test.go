package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/usecase"
)

// fakeEventReader fakes the EventReader port.
type fakeEventReader struct {
	events    []domain.Event
	err       error
	lastIDs   []string
	lastSince *time.Time
	called    bool
}

func (f *fakeEventReader) ListEvents(ctx context.Context, episodeIDs []string, since *time.Time) ([]domain.Event, error) {
	f.called = true
	f.lastIDs = episodeIDs
	f.lastSince = since
	return f.events, f.err
}

type fakeEpisodeReader struct {
	episodes []domain.Episode
	err      error
	lastUser string
}

func (f *fakeEpisodeReader) ListEpisodes(ctx context.Context, userID string) ([]domain.Episode, error) {
	f.lastUser = userID
	return f.episodes, f.err
}

type fakeSnapshotCache struct {
	snapshot *domain.OverviewReport
	getErr   error
	getCalls int
	setCalls int
	setErr   error
	last     *domain.OverviewReport
}

func (f *fakeSnapshotCache) Get(ctx context.Context, userID string, r domain.Range) (*domain.OverviewReport, error) {
	f.getCalls++
	return f.snapshot, f.getErr
}

func (f *fakeSnapshotCache) Set(ctx context.Context, userID string, r domain.Range, report *domain.OverviewReport) error {
	f.setCalls++
	f.last = report
	return f.setErr
}

func playsAt(times ...time.Time) []domain.Event {
	events := make([]domain.Event, len(times))
	for i, at := range times {
		events[i] = domain.Event{EpisodeID: "ep1", Type: domain.EventPlay, SessionID: "s", Timestamp: at}
	}
	return events
}

func TestGetOverview_Populated(t *testing.T) {
	now := time.Now().UTC()
	events := &fakeEventReader{events: playsAt(now.Add(-time.Hour), now.Add(-2*time.Hour))}
	episodes := &fakeEpisodeReader{episodes: []domain.Episode{{ID: "ep1", Title: "Pilot"}}}
	cache := &fakeSnapshotCache{}

	uc := usecase.NewGetOverviewUseCase(events, episodes, cache)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range7d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != domain.ReportPopulated {
		t.Fatalf("expected populated report, got %s", out.State)
	}
	if out.Stats.TotalPlays != 2 {
		t.Fatalf("expected 2 plays, got %d", out.Stats.TotalPlays)
	}
	if len(out.Series) != 7 {
		t.Fatalf("expected 7 daily points, got %d", len(out.Series))
	}
	if events.lastSince == nil {
		t.Fatalf("expected a lower time bound on the event query")
	}
	if len(events.lastIDs) != 1 || events.lastIDs[0] != "ep1" {
		t.Fatalf("expected query scoped to the user's episodes, got %v", events.lastIDs)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected snapshot cached once, got %d", cache.setCalls)
	}
}

func TestGetOverview_EmptyIsNotAllZeros(t *testing.T) {
	events := &fakeEventReader{}
	episodes := &fakeEpisodeReader{episodes: []domain.Episode{{ID: "ep1"}}}

	uc := usecase.NewGetOverviewUseCase(events, episodes, nil)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range30d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != domain.ReportEmpty {
		t.Fatalf("zero rows must yield a distinguished empty state, got %s", out.State)
	}
	if len(out.Series) != 0 {
		t.Fatalf("empty report carries no series")
	}
}

func TestGetOverview_NoEpisodes(t *testing.T) {
	events := &fakeEventReader{}
	episodes := &fakeEpisodeReader{}

	uc := usecase.NewGetOverviewUseCase(events, episodes, nil)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range7d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != domain.ReportEmpty {
		t.Fatalf("expected empty state, got %s", out.State)
	}
	if events.called {
		t.Fatalf("no episodes means no event query")
	}
}

func TestGetOverview_InvalidRange(t *testing.T) {
	uc := usecase.NewGetOverviewUseCase(&fakeEventReader{}, &fakeEpisodeReader{}, nil)

	_, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: "14d"})
	if !errors.Is(err, usecase.ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestGetOverview_MissingUser(t *testing.T) {
	uc := usecase.NewGetOverviewUseCase(&fakeEventReader{}, &fakeEpisodeReader{}, nil)

	_, err := uc.Execute(context.Background(), usecase.GetOverviewInput{Range: domain.Range7d})
	if !errors.Is(err, usecase.ErrMissingUser) {
		t.Fatalf("expected ErrMissingUser, got %v", err)
	}
}

func TestGetOverview_StoreErrorIsNotEmpty(t *testing.T) {
	events := &fakeEventReader{err: errors.New("store down")}
	episodes := &fakeEpisodeReader{episodes: []domain.Episode{{ID: "ep1"}}}

	uc := usecase.NewGetOverviewUseCase(events, episodes, nil)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range7d})
	if err == nil {
		t.Fatalf("a failed query must surface as an error, not an empty report")
	}
	if out != nil {
		t.Fatalf("expected nil report on error")
	}
}

func TestGetOverview_CacheHitSkipsRecompute(t *testing.T) {
	events := &fakeEventReader{}
	episodes := &fakeEpisodeReader{}
	cached := &domain.OverviewReport{
		State: domain.ReportPopulated,
		Range: domain.Range7d,
		Stats: domain.SummaryStats{TotalPlays: 9},
	}
	cache := &fakeSnapshotCache{snapshot: cached}

	uc := usecase.NewGetOverviewUseCase(events, episodes, cache)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range7d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != cached {
		t.Fatalf("expected the cached snapshot to be returned")
	}
	if cache.getCalls != 1 {
		t.Fatalf("expected one cache lookup, got %d", cache.getCalls)
	}
	if events.called || episodes.lastUser != "" {
		t.Fatalf("a cache hit must not touch the store")
	}
	if cache.setCalls != 0 {
		t.Fatalf("a cache hit must not rewrite the snapshot")
	}
}

func TestGetOverview_CacheReadFailureFallsBackToStore(t *testing.T) {
	now := time.Now().UTC()
	events := &fakeEventReader{events: playsAt(now.Add(-time.Hour))}
	episodes := &fakeEpisodeReader{episodes: []domain.Episode{{ID: "ep1"}}}
	cache := &fakeSnapshotCache{getErr: errors.New("redis down")}

	uc := usecase.NewGetOverviewUseCase(events, episodes, cache)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range7d})
	if err != nil {
		t.Fatalf("cache read failure must not fail the request: %v", err)
	}
	if out.State != domain.ReportPopulated {
		t.Fatalf("expected a recomputed report, got %s", out.State)
	}
	if !events.called {
		t.Fatalf("a cache read failure must fall back to the store")
	}
}

func TestGetOverview_CacheFailureDoesNotFailRequest(t *testing.T) {
	now := time.Now().UTC()
	events := &fakeEventReader{events: playsAt(now.Add(-time.Hour))}
	episodes := &fakeEpisodeReader{episodes: []domain.Episode{{ID: "ep1"}}}
	cache := &fakeSnapshotCache{setErr: errors.New("redis down")}

	uc := usecase.NewGetOverviewUseCase(events, episodes, cache)

	out, err := uc.Execute(context.Background(), usecase.GetOverviewInput{UserID: "u1", Range: domain.Range7d})
	if err != nil {
		t.Fatalf("cache write failure must not fail the request: %v", err)
	}
	if out.State != domain.ReportPopulated {
		t.Fatalf("expected populated report, got %s", out.State)
	}
}

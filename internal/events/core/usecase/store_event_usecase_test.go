package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"castboard/internal/events/core/domain"
	"castboard/internal/events/core/usecase"
)

// fakeEventRepo fakes EventRepositoryPort.
type fakeEventRepo struct {
	InsertFn  func(ctx context.Context, e *domain.Event) (bool, error)
	lastEvent *domain.Event
	calls     int
}

func (f *fakeEventRepo) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	f.calls++
	f.lastEvent = e
	if f.InsertFn != nil {
		return f.InsertFn(ctx, e)
	}
	return true, nil
}

func validInput() usecase.StoreEventInput {
	return usecase.StoreEventInput{
		EpisodeID: "ep1",
		EventType: "play",
		SessionID: "sess-1",
		Timestamp: time.Now().Add(-time.Minute).Unix(),
	}
}

func TestStoreEvent_Created(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if repo.lastEvent.DedupeKey == "" {
		t.Fatalf("expected a dedupe key")
	}
	if repo.lastEvent.EventTime.Location() != time.UTC {
		t.Fatalf("event time must be UTC")
	}
}

func TestStoreEvent_Duplicate(t *testing.T) {
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, nil
		},
	}
	uc := usecase.NewStoreEventUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

func TestStoreEvent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.StoreEventInput)
		wantErr error
	}{
		{
			name:    "missing episode id",
			mutate:  func(in *usecase.StoreEventInput) { in.EpisodeID = "" },
			wantErr: usecase.ErrInvalidEvent,
		},
		{
			name:    "missing session id",
			mutate:  func(in *usecase.StoreEventInput) { in.SessionID = "" },
			wantErr: usecase.ErrInvalidEvent,
		},
		{
			name:    "unknown event type",
			mutate:  func(in *usecase.StoreEventInput) { in.EventType = "seek" },
			wantErr: usecase.ErrUnknownEventType,
		},
		{
			name:    "future timestamp",
			mutate:  func(in *usecase.StoreEventInput) { in.Timestamp = time.Now().Add(time.Hour).Unix() },
			wantErr: usecase.ErrFutureTime,
		},
		{
			name: "negative duration",
			mutate: func(in *usecase.StoreEventInput) {
				d := -5.0
				in.ListenDuration = &d
			},
			wantErr: usecase.ErrNegativeDuration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeEventRepo{}
			uc := usecase.NewStoreEventUseCase(repo)

			in := validInput()
			tt.mutate(&in)

			if _, err := uc.Execute(context.Background(), in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.calls != 0 {
				t.Fatalf("repository must not be called on invalid input")
			}
		})
	}
}

func TestStoreEvent_RepositoryError(t *testing.T) {
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, errors.New("db failure")
		},
	}
	uc := usecase.NewStoreEventUseCase(repo)

	if _, err := uc.Execute(context.Background(), validInput()); err == nil {
		t.Fatalf("expected error")
	}
}

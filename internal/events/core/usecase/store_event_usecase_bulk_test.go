package usecase_test

import (
	"context"
	"errors"
	"testing"

	"castboard/internal/events/core/domain"
	"castboard/internal/events/core/usecase"
)

func TestBulkCreateEvents_CountsCreatedAndDuplicates(t *testing.T) {
	seen := map[string]bool{}
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			if seen[e.DedupeKey] {
				return false, nil
			}
			seen[e.DedupeKey] = true
			return true, nil
		},
	}
	uc := usecase.NewStoreEventUseCase(repo)

	first := validInput()
	second := validInput()
	second.SessionID = "sess-2"

	res, err := uc.BulkCreateEvents(context.Background(), usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{first, second, first},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 2 {
		t.Fatalf("expected 2 created, got %d", res.Created)
	}
	if res.Duplicates != 1 {
		t.Fatalf("expected 1 duplicate, got %d", res.Duplicates)
	}
}

func TestBulkCreateEvents_ValidatesBeforeAnyInsert(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	good := validInput()
	bad := validInput()
	bad.EventType = "rewind"

	_, err := uc.BulkCreateEvents(context.Background(), usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{good, bad},
	})
	if !errors.Is(err, usecase.ErrUnknownEventType) {
		t.Fatalf("expected ErrUnknownEventType, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("no inserts may happen when any item is invalid, got %d", repo.calls)
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"castboard/internal/writing/core/domain"
)

func TestGenerateSEO_ShowNotes(t *testing.T) {
	completer := &fakeCompleter{response: "## Show Notes\n\nGreat episode."}
	uc := NewGenerateSEOUseCase(completer)

	result, err := uc.Execute(context.Background(), GenerateSEOInput{
		Script: "Welcome to the show...",
		Title:  "Episode 12",
		Type:   domain.SEOShowNotes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Type != domain.SEOShowNotes || result.Content != completer.response {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !strings.Contains(completer.lastPrompt.User, `"Episode 12"`) {
		t.Fatalf("title must appear in the prompt: %s", completer.lastPrompt.User)
	}
}

func TestGenerateSEO_UntitledFallback(t *testing.T) {
	completer := &fakeCompleter{response: "[00:00] - Intro"}
	uc := NewGenerateSEOUseCase(completer)

	_, err := uc.Execute(context.Background(), GenerateSEOInput{
		Script: "some script",
		Type:   domain.SEOTimestamps,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(completer.lastPrompt.User, `"Untitled"`) {
		t.Fatalf("missing title must fall back to Untitled: %s", completer.lastPrompt.User)
	}
}

func TestGenerateSEO_MissingScript(t *testing.T) {
	completer := &fakeCompleter{}
	uc := NewGenerateSEOUseCase(completer)

	_, err := uc.Execute(context.Background(), GenerateSEOInput{Type: domain.SEOTranscript})
	if !errors.Is(err, ErrMissingScript) {
		t.Fatalf("expected ErrMissingScript, got %v", err)
	}
	if completer.called != 0 {
		t.Fatal("gateway must not be called without a script")
	}
}

func TestGenerateSEO_UnknownType(t *testing.T) {
	uc := NewGenerateSEOUseCase(&fakeCompleter{})

	_, err := uc.Execute(context.Background(), GenerateSEOInput{Script: "x", Type: "summary"})
	if !errors.Is(err, ErrUnknownSEOType) {
		t.Fatalf("expected ErrUnknownSEOType, got %v", err)
	}
}

func TestGenerateSEO_GatewayErrorPassthrough(t *testing.T) {
	uc := NewGenerateSEOUseCase(&fakeCompleter{err: domain.ErrQuotaExhausted})

	_, err := uc.Execute(context.Background(), GenerateSEOInput{Script: "x", Type: domain.SEOShowNotes})
	if !errors.Is(err, domain.ErrQuotaExhausted) {
		t.Fatalf("expected quota error to pass through, got %v", err)
	}
}

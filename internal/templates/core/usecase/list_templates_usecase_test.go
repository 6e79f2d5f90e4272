package usecase

import (
	"context"
	"errors"
	"testing"

	"castboard/internal/templates/core/domain"
)

type fakeTemplateSource struct {
	templates []domain.Template
}

func (f *fakeTemplateSource) ListTemplates() []domain.Template {
	return f.templates
}

func testCatalog() *fakeTemplateSource {
	return &fakeTemplateSource{templates: []domain.Template{
		{ID: "tech-blog-1", Title: "Product Launch Announcement", Description: "Announce your new tech product", Category: domain.CategoryBlog, Industry: "tech", Tags: []string{"launch", "product"}},
		{ID: "tech-email-1", Title: "Beta Invitation Email", Description: "Invite users to test", Category: domain.CategoryEmail, Industry: "tech", Tags: []string{"beta", "invitation"}},
		{ID: "food-social-1", Title: "Restaurant Social Post", Description: "Mouth-watering food content", Category: domain.CategorySocial, Industry: "food", Tags: []string{"restaurant", "instagram"}},
	}}
}

func TestListTemplates_NoFilters(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	got, err := uc.Execute(context.Background(), ListTemplatesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all 3 templates, got %d", len(got))
	}
}

func TestListTemplates_AllSentinelsMatchEverything(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	got, err := uc.Execute(context.Background(), ListTemplatesInput{Industry: "all", Category: "all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all 3 templates, got %d", len(got))
	}
}

func TestListTemplates_ByIndustry(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	got, err := uc.Execute(context.Background(), ListTemplatesInput{Industry: "tech"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tech templates, got %d", len(got))
	}
}

func TestListTemplates_ByCategory(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	got, err := uc.Execute(context.Background(), ListTemplatesInput{Category: "social"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "food-social-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListTemplates_QueryMatchesTitleDescriptionAndTags(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{name: "title", query: "LAUNCH announcement", want: ""},
		{name: "description", query: "mouth-watering", want: "food-social-1"},
		{name: "tag", query: "beta", want: "tech-email-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), ListTemplatesInput{Query: tc.query})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != "" {
				if len(got) != 1 || got[0].ID != tc.want {
					t.Fatalf("expected %s, got %+v", tc.want, got)
				}
				return
			}
			if len(got) != 1 || got[0].ID != "tech-blog-1" {
				t.Fatalf("unexpected result: %+v", got)
			}
		})
	}
}

func TestListTemplates_UnknownCategory(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	_, err := uc.Execute(context.Background(), ListTemplatesInput{Category: "video"})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestListTemplates_NoMatchesReturnsEmptySlice(t *testing.T) {
	uc := NewListTemplatesUseCase(testCatalog())

	got, err := uc.Execute(context.Background(), ListTemplatesInput{Query: "nonexistent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", got)
	}
}

func TestGetTemplate_Found(t *testing.T) {
	uc := NewGetTemplateUseCase(testCatalog())

	got, err := uc.Execute(context.Background(), "tech-email-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Beta Invitation Email" {
		t.Fatalf("unexpected template: %+v", got)
	}
}

func TestGetTemplate_NotFound(t *testing.T) {
	uc := NewGetTemplateUseCase(testCatalog())

	_, err := uc.Execute(context.Background(), "missing")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

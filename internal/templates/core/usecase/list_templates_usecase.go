package usecase

import (
	"context"
	"errors"
	"strings"

	"castboard/internal/templates/core/domain"
	"castboard/internal/templates/core/ports"
)

var (
	ErrUnknownCategory  = errors.New("unknown template category")
	ErrTemplateNotFound = errors.New("template not found")
)

type ListTemplatesInput struct {
	Industry string
	Category string
	Query    string
}

// ListTemplatesUseCase filters the built-in catalog by industry, category and
// a free-text query over title, description and tags.
type ListTemplatesUseCase struct {
	source ports.TemplateSourcePort
}

func NewListTemplatesUseCase(source ports.TemplateSourcePort) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{source: source}
}

func (uc *ListTemplatesUseCase) Execute(ctx context.Context, in ListTemplatesInput) ([]domain.Template, error) {
	category := domain.Category(in.Category)
	if in.Category != "" && in.Category != "all" {
		if _, ok := domain.KnownCategories[category]; !ok {
			return nil, ErrUnknownCategory
		}
	}

	query := strings.ToLower(strings.TrimSpace(in.Query))

	matched := make([]domain.Template, 0)
	for _, tpl := range uc.source.ListTemplates() {
		if in.Industry != "" && in.Industry != "all" && tpl.Industry != in.Industry {
			continue
		}
		if in.Category != "" && in.Category != "all" && tpl.Category != category {
			continue
		}
		if query != "" && !matchesQuery(tpl, query) {
			continue
		}
		matched = append(matched, tpl)
	}

	return matched, nil
}

func matchesQuery(tpl domain.Template, query string) bool {
	if strings.Contains(strings.ToLower(tpl.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(tpl.Description), query) {
		return true
	}
	for _, tag := range tpl.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// GetTemplateUseCase resolves a single template by ID.
type GetTemplateUseCase struct {
	source ports.TemplateSourcePort
}

func NewGetTemplateUseCase(source ports.TemplateSourcePort) *GetTemplateUseCase {
	return &GetTemplateUseCase{source: source}
}

func (uc *GetTemplateUseCase) Execute(ctx context.Context, id string) (*domain.Template, error) {
	for _, tpl := range uc.source.ListTemplates() {
		if tpl.ID == id {
			return &tpl, nil
		}
	}
	return nil, ErrTemplateNotFound
}

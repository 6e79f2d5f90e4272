package usecase

import (
	"context"
	"errors"

	"castboard/internal/writing/core/domain"
	"castboard/internal/writing/core/ports"
)

var (
	ErrMissingScript  = errors.New("script is required")
	ErrUnknownSEOType = errors.New("unknown seo type")
)

type GenerateSEOInput struct {
	Script string
	Title  string
	Type   domain.SEOType
}

// GenerateSEOUseCase turns an episode script into show notes, a transcript or
// chapter timestamps.
type GenerateSEOUseCase struct {
	completer ports.CompleterPort
}

func NewGenerateSEOUseCase(completer ports.CompleterPort) *GenerateSEOUseCase {
	return &GenerateSEOUseCase{completer: completer}
}

func (uc *GenerateSEOUseCase) Execute(ctx context.Context, in GenerateSEOInput) (*domain.SEOResult, error) {
	if in.Script == "" {
		return nil, ErrMissingScript
	}
	if _, ok := domain.KnownSEOTypes[in.Type]; !ok {
		return nil, ErrUnknownSEOType
	}

	req := domain.SEORequest{Script: in.Script, Title: in.Title, Type: in.Type}

	raw, err := uc.completer.Complete(ctx, req.Prompt())
	if err != nil {
		return nil, err
	}

	return &domain.SEOResult{Type: in.Type, Content: raw}, nil
}

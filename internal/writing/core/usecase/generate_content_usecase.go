package usecase

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"castboard/internal/writing/core/domain"
	"castboard/internal/writing/core/extract"
	"castboard/internal/writing/core/ports"
)

var (
	ErrUnknownGenerationType = errors.New("unknown generation type")
	ErrMissingTopic          = errors.New("topic is required")
	ErrMissingPlatforms      = errors.New("at least one platform is required")
	ErrMissingPurpose        = errors.New("email purpose is required")
	ErrMissingContent        = errors.New("content to repurpose is required")
	ErrMissingFormats        = errors.New("at least one target format is required")
	ErrMalformedCompletion   = errors.New("completion did not contain the expected payload")
)

type GenerateContentInput struct {
	Type      domain.GenerationType
	Blog      domain.BlogRequest
	Social    domain.SocialRequest
	Email     domain.EmailRequest
	Repurpose domain.RepurposeRequest
}

// GenerateContentUseCase produces blog posts, social captions, emails and
// repurposed content via the completion gateway.
type GenerateContentUseCase struct {
	completer ports.CompleterPort
}

func NewGenerateContentUseCase(completer ports.CompleterPort) *GenerateContentUseCase {
	return &GenerateContentUseCase{completer: completer}
}

func (uc *GenerateContentUseCase) Execute(ctx context.Context, in GenerateContentInput) (*domain.GenerationResult, error) {
	prompt, err := promptFor(in)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := &domain.GenerationResult{Type: in.Type}

	switch in.Type {
	case domain.GenerateBlog:
		result.Content = raw

	case domain.GenerateSocial:
		payload, err := extract.Array(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
		if err := json.Unmarshal([]byte(payload), &result.Captions); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}

	case domain.GenerateEmail:
		payload, err := extract.Object(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
		var draft domain.EmailDraft
		if err := json.Unmarshal([]byte(payload), &draft); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
		result.Email = &draft

	case domain.GenerateRepurpose:
		payload, err := extract.Object(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
		if err := json.Unmarshal([]byte(payload), &result.Outputs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
	}

	return result, nil
}

func promptFor(in GenerateContentInput) (domain.Prompt, error) {
	switch in.Type {
	case domain.GenerateBlog:
		if in.Blog.Topic == "" {
			return domain.Prompt{}, ErrMissingTopic
		}
		return in.Blog.Prompt(), nil

	case domain.GenerateSocial:
		if in.Social.Topic == "" {
			return domain.Prompt{}, ErrMissingTopic
		}
		if len(in.Social.Platforms) == 0 {
			return domain.Prompt{}, ErrMissingPlatforms
		}
		return in.Social.Prompt(), nil

	case domain.GenerateEmail:
		if in.Email.Purpose == "" {
			return domain.Prompt{}, ErrMissingPurpose
		}
		return in.Email.Prompt(), nil

	case domain.GenerateRepurpose:
		if in.Repurpose.Content == "" {
			return domain.Prompt{}, ErrMissingContent
		}
		if len(in.Repurpose.Formats) == 0 {
			return domain.Prompt{}, ErrMissingFormats
		}
		return in.Repurpose.Prompt(), nil

	default:
		return domain.Prompt{}, ErrUnknownGenerationType
	}
}

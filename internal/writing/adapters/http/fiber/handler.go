package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"castboard/internal/writing/core/domain"
	"castboard/internal/writing/core/usecase"
)

type GenerateContentUseCase interface {
	Execute(ctx context.Context, in usecase.GenerateContentInput) (*domain.GenerationResult, error)
}

type GenerateSEOUseCase interface {
	Execute(ctx context.Context, in usecase.GenerateSEOInput) (*domain.SEOResult, error)
}

type WritingHandler struct {
	contentUC GenerateContentUseCase
	seoUC     GenerateSEOUseCase
}

func NewWritingHandler(content GenerateContentUseCase, seo GenerateSEOUseCase) *WritingHandler {
	return &WritingHandler{contentUC: content, seoUC: seo}
}

// GenerateContent godoc
// @Summary Generate written content
// @Description Produces a blog post, social captions, an email draft or repurposed content
// @Tags Writing
// @Accept json
// @Produce json
// @Param request body GenerateContentRequest true "Generation request"
// @Success 200 {object} GenerateContentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /writing/generate [post]
func (h *WritingHandler) GenerateContent(c *fiber.Ctx) error {
	var req GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request_body",
			Message: "Request body must be valid JSON",
		})
	}

	in := usecase.GenerateContentInput{
		Type: domain.GenerationType(req.Type),
		Blog: domain.BlogRequest{
			Topic:    req.Topic,
			Tone:     req.Tone,
			Length:   req.Length,
			Keywords: req.Keywords,
		},
		Social: domain.SocialRequest{
			Topic:     req.Topic,
			Platforms: req.Platforms,
			Context:   req.Context,
		},
		Email: domain.EmailRequest{
			EmailType: req.EmailType,
			Purpose:   req.Purpose,
			Recipient: req.Recipient,
			KeyPoints: req.KeyPoints,
		},
		Repurpose: domain.RepurposeRequest{
			Title:   req.Title,
			Content: req.Content,
			Formats: req.Formats,
		},
	}

	result, err := h.contentUC.Execute(c.UserContext(), in)
	if err != nil {
		return writingError(c, err)
	}

	resp := GenerateContentResponse{Type: string(result.Type), Content: result.Content, Outputs: result.Outputs}
	for _, caption := range result.Captions {
		resp.Captions = append(resp.Captions, SocialCaptionResponse{
			Platform: caption.Platform,
			Caption:  caption.Caption,
			Hashtags: caption.Hashtags,
		})
	}
	if result.Email != nil {
		resp.Subject = result.Email.Subject
		resp.Body = result.Email.Body
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GenerateSEO godoc
// @Summary Generate SEO assets from a script
// @Description Produces show notes, a transcript or chapter timestamps for an episode script
// @Tags Writing
// @Accept json
// @Produce json
// @Param request body GenerateSEORequest true "SEO request"
// @Success 200 {object} GenerateSEOResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /writing/seo [post]
func (h *WritingHandler) GenerateSEO(c *fiber.Ctx) error {
	var req GenerateSEORequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request_body",
			Message: "Request body must be valid JSON",
		})
	}

	result, err := h.seoUC.Execute(c.UserContext(), usecase.GenerateSEOInput{
		Script: req.Script,
		Title:  req.Title,
		Type:   domain.SEOType(req.Type),
	})
	if err != nil {
		return writingError(c, err)
	}

	return c.Status(http.StatusOK).JSON(GenerateSEOResponse{
		Type:    string(result.Type),
		Content: result.Content,
	})
}

func writingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownGenerationType),
		errors.Is(err, usecase.ErrUnknownSEOType),
		errors.Is(err, usecase.ErrMissingTopic),
		errors.Is(err, usecase.ErrMissingPlatforms),
		errors.Is(err, usecase.ErrMissingPurpose),
		errors.Is(err, usecase.ErrMissingContent),
		errors.Is(err, usecase.ErrMissingFormats),
		errors.Is(err, usecase.ErrMissingScript):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrRateLimited):
		return c.Status(http.StatusTooManyRequests).JSON(ErrorResponse{
			Error:   "rate_limited",
			Message: "Rate limit exceeded. Please try again later.",
		})
	case errors.Is(err, domain.ErrQuotaExhausted):
		return c.Status(http.StatusPaymentRequired).JSON(ErrorResponse{
			Error:   "quota_exhausted",
			Message: "API credits exhausted. Please add funds.",
		})
	case errors.Is(err, usecase.ErrMalformedCompletion):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "malformed_completion",
			Message: "The generated response could not be parsed",
		})
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error: "gateway_unavailable",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

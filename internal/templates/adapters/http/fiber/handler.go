package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"castboard/internal/templates/core/domain"
	"castboard/internal/templates/core/usecase"
)

type ListTemplatesUseCase interface {
	Execute(ctx context.Context, in usecase.ListTemplatesInput) ([]domain.Template, error)
}

type GetTemplateUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Template, error)
}

type TemplateHandler struct {
	listUC ListTemplatesUseCase
	getUC  GetTemplateUseCase
}

func NewTemplateHandler(list ListTemplatesUseCase, get GetTemplateUseCase) *TemplateHandler {
	return &TemplateHandler{listUC: list, getUC: get}
}

// ListTemplates godoc
// @Summary List content templates
// @Description Filters the template catalog by industry, category and free-text query
// @Tags Templates
// @Produce json
// @Param industry query string false "Industry facet, or all"
// @Param category query string false "Content type: blog | social | email | product | all"
// @Param q query string false "Free-text search over title, description and tags"
// @Success 200 {object} ListTemplatesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	in := usecase.ListTemplatesInput{
		Industry: c.Query("industry"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}

	templates, err := h.listUC.Execute(c.UserContext(), in)
	if err != nil {
		return templateError(c, err)
	}

	resp := ListTemplatesResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
		Total:     len(templates),
	}
	for _, tpl := range templates {
		resp.Templates = append(resp.Templates, toTemplateResponse(tpl))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetTemplate godoc
// @Summary Get a single template
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} TemplateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	tpl, err := h.getUC.Execute(c.UserContext(), c.Params("id"))
	if err != nil {
		return templateError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toTemplateResponse(*tpl))
}

// ListIndustries godoc
// @Summary List industry facets
// @Tags Templates
// @Produce json
// @Success 200 {array} IndustryResponse
// @Security BearerAuth
// @Router /templates/industries [get]
func (h *TemplateHandler) ListIndustries(c *fiber.Ctx) error {
	resp := make([]IndustryResponse, 0, len(domain.Industries))
	for _, ind := range domain.Industries {
		resp = append(resp, IndustryResponse{ID: ind.ID, Label: ind.Label})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func templateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownCategory):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "unknown_category",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "template_not_found",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toTemplateResponse(tpl domain.Template) TemplateResponse {
	return TemplateResponse{
		ID:          tpl.ID,
		Title:       tpl.Title,
		Description: tpl.Description,
		Category:    string(tpl.Category),
		Industry:    tpl.Industry,
		Content:     tpl.Content,
		Tags:        tpl.Tags,
	}
}

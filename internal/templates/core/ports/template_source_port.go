package ports

import "castboard/internal/templates/core/domain"

// TemplateSourcePort supplies the template catalog.
type TemplateSourcePort interface {
	ListTemplates() []domain.Template
}

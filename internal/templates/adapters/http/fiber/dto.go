package fiber

type TemplateResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Industry    string   `json:"industry"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

type IndustryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"template_not_found"`
	Message string `json:"message,omitempty"`
}

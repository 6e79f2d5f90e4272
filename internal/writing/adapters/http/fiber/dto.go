package fiber

// GenerateContentRequest is the writing assistant payload. Which fields are
// required depends on type.
// @Description Content generation request DTO
type GenerateContentRequest struct {
	Type string `json:"type" example:"blog"`

	// blog
	Topic    string   `json:"topic,omitempty"`
	Tone     string   `json:"tone,omitempty"`
	Length   string   `json:"length,omitempty" example:"short"`
	Keywords []string `json:"keywords,omitempty"`

	// social
	Platforms []string `json:"platforms,omitempty"`
	Context   string   `json:"context,omitempty"`

	// email
	EmailType string `json:"email_type,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	KeyPoints string `json:"key_points,omitempty"`

	// repurpose
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Formats []string `json:"formats,omitempty"`
}

type SocialCaptionResponse struct {
	Platform string   `json:"platform"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

type GenerateContentResponse struct {
	Type     string                  `json:"type"`
	Content  string                  `json:"content,omitempty"`
	Captions []SocialCaptionResponse `json:"captions,omitempty"`
	Subject  string                  `json:"subject,omitempty"`
	Body     string                  `json:"body,omitempty"`
	Outputs  map[string]string       `json:"outputs,omitempty"`
}

type GenerateSEORequest struct {
	Script string `json:"script"`
	Title  string `json:"title,omitempty"`
	Type   string `json:"type" example:"show-notes"`
}

type GenerateSEOResponse struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty"`
}

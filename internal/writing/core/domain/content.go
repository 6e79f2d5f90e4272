package domain

// GenerationType selects which kind of content the writing assistant produces.
type GenerationType string

const (
	GenerateBlog      GenerationType = "blog"
	GenerateSocial    GenerationType = "social"
	GenerateEmail     GenerationType = "email"
	GenerateRepurpose GenerationType = "repurpose"
)

// KnownGenerationTypes lists the accepted generation types.
var KnownGenerationTypes = map[GenerationType]struct{}{
	GenerateBlog:      {},
	GenerateSocial:    {},
	GenerateEmail:     {},
	GenerateRepurpose: {},
}

type BlogRequest struct {
	Topic    string
	Tone     string
	Length   string
	Keywords []string
}

type SocialRequest struct {
	Topic     string
	Platforms []string
	Context   string
}

type EmailRequest struct {
	EmailType string
	Purpose   string
	Recipient string
	KeyPoints string
}

type RepurposeRequest struct {
	Title   string
	Content string
	Formats []string
}

// SocialCaption is one platform-specific caption with its hashtags.
type SocialCaption struct {
	Platform string   `json:"platform"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerationResult carries the output for exactly one generation type.
type GenerationResult struct {
	Type     GenerationType
	Content  string
	Captions []SocialCaption
	Email    *EmailDraft
	Outputs  map[string]string
}

// SEOType selects which audio-to-text asset to derive from a script.
type SEOType string

const (
	SEOShowNotes  SEOType = "show-notes"
	SEOTranscript SEOType = "transcript"
	SEOTimestamps SEOType = "timestamps"
)

var KnownSEOTypes = map[SEOType]struct{}{
	SEOShowNotes:  {},
	SEOTranscript: {},
	SEOTimestamps: {},
}

type SEORequest struct {
	Script string
	Title  string
	Type   SEOType
}

type SEOResult struct {
	Type    SEOType
	Content string
}

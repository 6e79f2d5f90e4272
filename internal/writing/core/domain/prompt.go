package domain

import (
	"fmt"
	"strings"
)

// Prompt is a system/user instruction pair sent to the completion gateway.
type Prompt struct {
	System string
	User   string
}

func (r BlogRequest) Prompt() Prompt {
	words := "2000"
	switch r.Length {
	case "short":
		words = "500"
	case "medium":
		words = "1000"
	}

	keywords := "none specified"
	if len(r.Keywords) > 0 {
		keywords = strings.Join(r.Keywords, ", ")
	}

	return Prompt{
		System: "You are an expert SEO content writer. Generate engaging, well-structured blog posts " +
			"with proper headings (H2, H3), paragraphs, and natural keyword integration. " +
			"Include a compelling intro, body sections, and conclusion.",
		User: fmt.Sprintf(`Write a %s word blog post about: %q

Tone: %s
Keywords to include naturally: %s

Format with markdown headings and make it engaging and informative.`, words, r.Topic, r.Tone, keywords),
	}
}

func (r SocialRequest) Prompt() Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Create social media captions for the following platforms: %s\n\n", strings.Join(r.Platforms, ", "))
	fmt.Fprintf(&b, "Topic: %q\n", r.Topic)
	if r.Context != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", r.Context)
	}
	b.WriteString(`
For each platform, provide:
1. A caption optimized for that platform's style and character limits
2. Relevant hashtags (5-10 per platform)

Return as JSON array with format: [{"platform": "instagram", "caption": "...", "hashtags": ["#tag1", "#tag2"]}]`)

	return Prompt{
		System: "You are a viral social media content creator. Create platform-specific captions that are " +
			"engaging, authentic, and optimized for each platform's algorithm and culture.",
		User: b.String(),
	}
}

func (r EmailRequest) Prompt() Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s email for the following purpose:\n\n", r.EmailType)
	fmt.Fprintf(&b, "Purpose: %s\n", r.Purpose)
	if r.Recipient != "" {
		fmt.Fprintf(&b, "Recipient type: %s\n", r.Recipient)
	}
	if r.KeyPoints != "" {
		fmt.Fprintf(&b, "Key points to include: %s\n", r.KeyPoints)
	}
	b.WriteString(`
Provide:
1. A clear, compelling subject line
2. The email body with proper greeting and sign-off

Return as JSON: {"subject": "...", "body": "..."}`)

	return Prompt{
		System: "You are a professional email writer who crafts clear, effective emails that achieve their " +
			"intended purpose while maintaining appropriate tone and professionalism.",
		User: b.String(),
	}
}

func (r RepurposeRequest) Prompt() Prompt {
	return Prompt{
		System: "You are a content repurposing expert who transforms content into different formats while " +
			"preserving the key messages and adapting the style for each format.",
		User: fmt.Sprintf(`Repurpose the following content into these formats: %s

Original content title: %q
Content:
%s

For each format, create appropriate content:
- blog: Full article with headings and SEO optimization
- newsletter: Email-friendly with intro, bullet points, and CTA
- social: Twitter/X thread format (numbered tweets)
- linkedin: Professional article with insights
- summary: Bullet-point executive summary

Return as JSON: {"blog": "...", "newsletter": "...", etc.}`, strings.Join(r.Formats, ", "), r.Title, r.Content),
	}
}

func (r SEORequest) Prompt() Prompt {
	title := r.Title
	if title == "" {
		title = "Untitled"
	}

	switch r.Type {
	case SEOShowNotes:
		return Prompt{
			System: "You are an expert podcast SEO specialist. Generate comprehensive show notes that are " +
				"optimized for search engines and podcast directories.",
			User: fmt.Sprintf(`Generate SEO-optimized show notes for this podcast titled %q.

Include:
1. A compelling episode description (2-3 paragraphs)
2. Key topics covered (bullet points)
3. Notable quotes from the episode
4. Resources mentioned
5. SEO keywords and tags (comma-separated)
6. A call-to-action for listeners

Script:
%s

Format the output as clean, readable markdown.`, title, r.Script),
		}

	case SEOTranscript:
		return Prompt{
			System: "You are a professional transcription specialist. Create a clean, readable transcript " +
				"with proper formatting and speaker labels.",
			User: fmt.Sprintf(`Convert this podcast script into a professional transcript format.

Include:
1. Proper paragraph breaks
2. Speaker labels where appropriate
3. Timestamps every 2-3 minutes (estimated based on ~150 words per minute)
4. Section headers for major topic changes

Script:
%s

Format as a clean transcript with timestamps in [MM:SS] format.`, r.Script),
		}

	default:
		return Prompt{
			System: "You are a podcast editor who creates chapter markers and timestamps for easy navigation.",
			User: fmt.Sprintf(`Generate chapter timestamps for this podcast titled %q.

Create timestamps in this format:
[MM:SS] - Chapter Title

Estimate timing based on ~150 words per minute of speech.
Identify 5-10 key moments/chapters in the content.
Include an intro and outro marker.

Script:
%s

Return only the timestamps list, one per line.`, title, r.Script),
		}
	}
}

package core

import "time"

// Document represents a published document from the host content store.
// Documents are read-only snapshots; this core never mutates or persists them.
type Document struct {
	ID          string    `json:"id"`           // Unique identifier for the document
	Title       string    `json:"title"`        // Document title
	Body        string    `json:"body"`         // Document body (may contain markup)
	URL         string    `json:"url"`          // Canonical URL of the document
	PublishedAt time.Time `json:"published_at"` // Publication timestamp
}

// ContentSnippet is a sentence-level excerpt selected for relevance to a query.
// Text is always at least 50 characters; shorter sentences are discarded
// before scoring.
type ContentSnippet struct {
	Text             string `json:"text"`               // The excerpt text
	RelevanceCount   int    `json:"relevance_count"`    // Number of query tokens matched
	SourceDocumentID string `json:"source_document_id"` // ID of the source document
	SourceTitle      string `json:"source_title"`       // Title of the source document
	SourceURL        string `json:"source_url"`         // URL of the source document
}

// AssembledContent is the output of the retrieval assembly engine: a complete
// page built from ranked snippets distributed into a template layout.
type AssembledContent struct {
	ID          string     `json:"id"`           // Unique identifier for this assembly
	Title       string     `json:"title"`        // Page title (template prefix + query)
	HTMLBody    string     `json:"html_body"`    // Rendered HTML body
	TemplateID  string     `json:"template_id"`  // Template used (how_to, safety_tips, ...)
	Sources     []Document `json:"sources"`      // Unique source documents in first-seen order
	Confidence  float64    `json:"confidence"`   // Confidence score in [0, 1]
	Query       string     `json:"query"`        // The originating search query
	GeneratedAt time.Time  `json:"generated_at"` // When the content was assembled
}

// Intent is a coarse classification of searcher purpose.
type Intent string

const (
	IntentCommercial    Intent = "commercial"
	IntentEducational   Intent = "educational"
	IntentInformational Intent = "informational"
	IntentNavigational  Intent = "navigational"
)

// Interest is a weighted user-interest signal used for personalization.
type Interest struct {
	Name   string  `json:"name"`   // Interest label (e.g. "woodworking")
	Weight float64 `json:"weight"` // Relative weight, higher is stronger
}

// DiscoveryResult is a candidate page found by earlier discovery, scanned by
// the context builder for conversion and competitive signals.
type DiscoveryResult struct {
	Title      string   `json:"title"`      // Candidate page title
	Categories []string `json:"categories"` // Category labels
	Tags       []string `json:"tags"`       // Tag labels
}

// GenerationContext carries the structured signals derived from a search
// request. It is consumed by the prompt builder and the personalization
// engine and never outlives a single generation request.
type GenerationContext struct {
	Query               string            `json:"query"`                // The visitor search term
	Intent              Intent            `json:"intent"`               // Classified searcher intent
	CTAStrategy         string            `json:"cta_strategy"`         // Call-to-action strategy
	UrgencyLevel        string            `json:"urgency_level"`        // low, medium, high
	EmotionalTone       string            `json:"emotional_tone"`       // Tone for generated copy
	TargetAction        string            `json:"target_action"`        // What the page should drive
	FunnelStage         string            `json:"funnel_stage"`         // awareness, consideration, decision
	Themes              []string          `json:"themes"`               // Content themes from discovery
	Interests           []Interest        `json:"interests"`            // User interests by weight
	ConversionGoals     []string          `json:"conversion_goals"`     // purchase, signup, download
	CompetitiveKeywords []string          `json:"competitive_keywords"` // Deduped title keywords, max 5
	Extra               map[string]string `json:"extra,omitempty"`      // Additional named signals
}

// ProviderResult wraps raw generated text with provider metadata and the
// heuristic quality score.
type ProviderResult struct {
	RawContent   string         `json:"raw_content"`        // The provider's reply verbatim
	ProviderName string         `json:"provider_name"`      // e.g. "gemini", "chat"
	Model        string         `json:"model"`              // Model identifier
	QualityScore int            `json:"quality_score"`      // Heuristic score in [0, 100]
	WordCount    int            `json:"word_count"`         // Words in RawContent
	GeneratedAt  time.Time      `json:"generated_at"`       // When the reply was received
	Metadata     map[string]any `json:"metadata,omitempty"` // Provider-specific extras
}

package assemble

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"pagecraft/internal/core"
	"pagecraft/internal/sanitize"
)

// Confidence scoring constants. The base guarantees a positive score; the
// snippet contribution is capped so confidence stays within [0, 1] after the
// final clamp.
const (
	confidenceBase       = 0.3
	confidencePerSnippet = 0.05
	confidenceSnippetCap = 0.4
	confidenceTermBonus  = 0.1
)

// Assembler distributes ranked snippets into a template layout and renders
// the page body.
type Assembler struct {
	markdown goldmark.Markdown
}

// NewAssembler creates an Assembler with the default markdown renderer.
func NewAssembler() *Assembler {
	return &Assembler{markdown: goldmark.New()}
}

// Assemble builds a complete page for the query from the ranked snippet
// list. Snippets are chunked in relevance order across the template's
// non-introduction sections; a section left without snippets receives a
// generic placeholder sentence. The body ends with an attribution list of
// unique source documents in first-seen order.
func (a *Assembler) Assemble(query string, contentType ContentType, snippets []core.ContentSnippet) (core.AssembledContent, error) {
	tmpl := GetTemplate(contentType)

	var md strings.Builder
	title := fmt.Sprintf("%s %s", tmpl.TitlePrefix, strings.TrimSpace(query))
	md.WriteString(fmt.Sprintf("# %s\n\n", sanitize.EscapeHTML(title)))
	md.WriteString(fmt.Sprintf("This page collects what our published articles say about %q, organized for quick reading.\n\n", sanitize.EscapeHTML(query)))

	contentSections := tmpl.Sections[1:] // first section is the introduction
	chunks := chunkSnippets(snippets, len(contentSections))

	for i, section := range contentSections {
		md.WriteString(fmt.Sprintf("## %s\n\n", sectionHeading(section)))
		if len(chunks[i]) == 0 {
			md.WriteString(fmt.Sprintf("We are still gathering material for %s on this topic. Check the sources below for more detail.\n\n", strings.ToLower(sectionHeading(section))))
			continue
		}
		for _, snippet := range chunks[i] {
			md.WriteString(sanitize.EscapeHTML(snippet.Text))
			md.WriteString(".\n\n")
		}
	}

	sources := uniqueSources(snippets)
	if len(sources) > 0 {
		md.WriteString("## Sources\n\n")
		for _, src := range sources {
			md.WriteString(fmt.Sprintf("- [%s](%s)\n", sanitize.EscapeHTML(src.Title), src.URL))
		}
		md.WriteString("\n")
	}

	var html bytes.Buffer
	if err := a.markdown.Convert([]byte(md.String()), &html); err != nil {
		return core.AssembledContent{}, fmt.Errorf("failed to render page body: %w", err)
	}

	return core.AssembledContent{
		ID:          uuid.NewString(),
		Title:       title,
		HTMLBody:    html.String(),
		TemplateID:  string(tmpl.ID),
		Sources:     sources,
		Confidence:  ScoreConfidence(query, tmpl, len(snippets)),
		Query:       query,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// ScoreConfidence computes the confidence score for an assembly:
// base + capped snippet contribution + template boost + query term boosts,
// clamped to 1.0.
func ScoreConfidence(query string, tmpl ContentTemplate, snippetCount int) float64 {
	confidence := confidenceBase

	snippetBoost := float64(snippetCount) * confidencePerSnippet
	if snippetBoost > confidenceSnippetCap {
		snippetBoost = confidenceSnippetCap
	}
	confidence += snippetBoost
	confidence += tmpl.ConfidenceBoost

	if len(strings.Fields(query)) >= 2 {
		confidence += confidenceTermBonus
	}
	if len(query) >= 10 {
		confidence += confidenceTermBonus
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// chunkSnippets splits the snippet list into ceil(n/sections)-sized chunks
// in original order, one chunk per section. Later sections may be empty.
func chunkSnippets(snippets []core.ContentSnippet, sections int) [][]core.ContentSnippet {
	chunks := make([][]core.ContentSnippet, sections)
	if sections == 0 || len(snippets) == 0 {
		return chunks
	}

	size := (len(snippets) + sections - 1) / sections
	for i := 0; i < sections; i++ {
		start := i * size
		if start >= len(snippets) {
			break
		}
		end := start + size
		if end > len(snippets) {
			end = len(snippets)
		}
		chunks[i] = snippets[start:end]
	}
	return chunks
}

// uniqueSources returns the distinct source documents referenced by the
// snippets, in first-seen order.
func uniqueSources(snippets []core.ContentSnippet) []core.Document {
	seen := make(map[string]bool, len(snippets))
	sources := []core.Document{}
	for _, snippet := range snippets {
		if seen[snippet.SourceDocumentID] {
			continue
		}
		seen[snippet.SourceDocumentID] = true
		sources = append(sources, core.Document{
			ID:    snippet.SourceDocumentID,
			Title: snippet.SourceTitle,
			URL:   snippet.SourceURL,
		})
	}
	return sources
}

package relevance

import (
	"regexp"
	"sort"
	"strings"

	"pagecraft/internal/core"
	"pagecraft/internal/sanitize"
	"pagecraft/internal/tokenize"
)

const (
	// minSnippetLength is the minimum sentence length worth scoring.
	// Shorter fragments are discarded, never scored.
	minSnippetLength = 50
	// DefaultMaxSnippets caps the snippets returned across all documents.
	DefaultMaxSnippets = 20
)

var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

// Extractor selects and ranks sentence-level excerpts relevant to a query.
type Extractor struct {
	tokenizer   *tokenize.Tokenizer
	maxSnippets int
}

// NewExtractor creates an Extractor with the default snippet cap.
func NewExtractor(tokenizer *tokenize.Tokenizer) *Extractor {
	return &Extractor{tokenizer: tokenizer, maxSnippets: DefaultMaxSnippets}
}

// WithMaxSnippets overrides the snippet cap. Values below one are ignored.
func (e *Extractor) WithMaxSnippets(n int) *Extractor {
	if n > 0 {
		e.maxSnippets = n
	}
	return e
}

// Extract splits each ranked document into sentences, keeps those at least
// 50 characters long with at least one query-token match, and returns the
// top snippets sorted by descending relevance. Ties keep extraction order.
func (e *Extractor) Extract(query string, docs []RankedDocument) []core.ContentSnippet {
	queryTokens := uniqueTokens(e.tokenizer.Tokenize(query))
	if len(queryTokens) == 0 {
		return []core.ContentSnippet{}
	}

	snippets := []core.ContentSnippet{}
	for _, ranked := range docs {
		plain := sanitize.StripTags(ranked.Document.Body)
		for _, sentence := range sentenceSplitRegex.Split(plain, -1) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) < minSnippetLength {
				continue
			}

			relevance := overlapCount(sentence, queryTokens)
			if relevance == 0 {
				continue
			}

			snippets = append(snippets, core.ContentSnippet{
				Text:             sentence,
				RelevanceCount:   relevance,
				SourceDocumentID: ranked.Document.ID,
				SourceTitle:      ranked.Document.Title,
				SourceURL:        ranked.Document.URL,
			})
		}
	}

	sort.SliceStable(snippets, func(a, b int) bool {
		return snippets[a].RelevanceCount > snippets[b].RelevanceCount
	})

	if len(snippets) > e.maxSnippets {
		snippets = snippets[:e.maxSnippets]
	}
	return snippets
}

// overlapCount counts how many query tokens appear in the sentence.
func overlapCount(sentence string, queryTokens []string) int {
	lower := strings.ToLower(sentence)
	count := 0
	for _, token := range queryTokens {
		if strings.Contains(lower, token) {
			count++
		}
	}
	return count
}

func uniqueTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	unique := []string{}
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			unique = append(unique, token)
		}
	}
	return unique
}

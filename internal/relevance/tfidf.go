// Package relevance ranks a document corpus against a search query and
// extracts the sentence-level snippets used to assemble page content.
package relevance

import (
	"math"
	"sort"
	"strings"

	"pagecraft/internal/core"
	"pagecraft/internal/sanitize"
	"pagecraft/internal/tokenize"
)

// DefaultMaxResults caps how many ranked documents a query returns.
const DefaultMaxResults = 10

// RankedDocument pairs a document with its TF-IDF score against a query.
type RankedDocument struct {
	Document core.Document
	Score    float64
}

// Scorer ranks documents against a query using term-frequency /
// inverse-document-frequency.
type Scorer struct {
	tokenizer  *tokenize.Tokenizer
	maxResults int
}

// NewScorer creates a Scorer with the default result cap.
func NewScorer(tokenizer *tokenize.Tokenizer) *Scorer {
	return &Scorer{tokenizer: tokenizer, maxResults: DefaultMaxResults}
}

// WithMaxResults overrides the ranked-document cap. Values below one are
// ignored.
func (s *Scorer) WithMaxResults(n int) *Scorer {
	if n > 0 {
		s.maxResults = n
	}
	return s
}

// Rank scores every document against the query and returns the top documents
// by score, capped at the result limit. Documents scoring zero are excluded.
// Ties keep the original corpus order.
func (s *Scorer) Rank(query string, docs []core.Document) []RankedDocument {
	queryTokens := s.tokenizer.Tokenize(query)
	if len(queryTokens) == 0 || len(docs) == 0 {
		return []RankedDocument{}
	}

	// Document frequency uses a deliberately loose containment check: a term
	// counts as present when the raw lower-cased text contains it as a
	// substring, not only as an exact token.
	rawText := make([]string, len(docs))
	docTokens := make([][]string, len(docs))
	for i, doc := range docs {
		rawText[i] = strings.ToLower(doc.Title + " " + doc.Body)
		docTokens[i] = s.tokenizer.Tokenize(doc.Title + " " + sanitize.StripTags(doc.Body))
	}

	idf := make(map[string]float64, len(queryTokens))
	for _, term := range queryTokens {
		if _, seen := idf[term]; seen {
			continue
		}
		df := 0
		for i := range docs {
			if strings.Contains(rawText[i], term) {
				df++
			}
		}
		if df == 0 {
			continue // term appears nowhere, contributes nothing
		}
		idf[term] = math.Log(float64(len(docs)) / float64(df))
	}

	ranked := []RankedDocument{}
	for i, doc := range docs {
		score := s.scoreDocument(queryTokens, docTokens[i], idf)
		if score > 0 {
			ranked = append(ranked, RankedDocument{Document: doc, Score: score})
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if len(ranked) > s.maxResults {
		ranked = ranked[:s.maxResults]
	}
	return ranked
}

// scoreDocument sums tf(t,d) * idf(t) over the query terms.
func (s *Scorer) scoreDocument(queryTokens, docTokens []string, idf map[string]float64) float64 {
	if len(docTokens) == 0 {
		return 0
	}

	counts := make(map[string]int, len(docTokens))
	for _, token := range docTokens {
		counts[token]++
	}

	score := 0.0
	for _, term := range queryTokens {
		weight, ok := idf[term]
		if !ok {
			continue
		}
		tf := float64(counts[term]) / float64(len(docTokens))
		score += tf * weight
	}
	return score
}

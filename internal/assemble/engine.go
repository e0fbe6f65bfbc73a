package assemble

import (
	"context"
	"fmt"

	"pagecraft/internal/core"
	"pagecraft/internal/corpus"
	"pagecraft/internal/logger"
	"pagecraft/internal/relevance"
	"pagecraft/internal/tokenize"
)

// Engine is the retrieval assembly path: tokenize the query, rank the
// published corpus with TF-IDF, extract relevant snippets, and distribute
// them into a template. Each invocation is independent and side-effect-free.
type Engine struct {
	corpus    corpus.Corpus
	scorer    *relevance.Scorer
	extractor *relevance.Extractor
	assembler *Assembler
	fetchCap  int
}

// Limits bounds the stages of the retrieval pipeline. Zero values keep the
// stage's default cap.
type Limits struct {
	FetchDocuments  int // recent documents pulled from the corpus
	RankedDocuments int // documents kept after TF-IDF ranking
	Snippets        int // snippets kept across all documents
}

// NewEngine wires the retrieval pipeline over the given corpus with default
// limits.
func NewEngine(store corpus.Corpus) *Engine {
	return NewEngineWithLimits(store, Limits{})
}

// NewEngineWithLimits wires the retrieval pipeline with explicit stage
// limits.
func NewEngineWithLimits(store corpus.Corpus, limits Limits) *Engine {
	tokenizer := tokenize.New()
	fetchCap := corpus.DefaultFetchLimit
	if limits.FetchDocuments > 0 {
		fetchCap = limits.FetchDocuments
	}
	return &Engine{
		corpus:    store,
		scorer:    relevance.NewScorer(tokenizer).WithMaxResults(limits.RankedDocuments),
		extractor: relevance.NewExtractor(tokenizer).WithMaxSnippets(limits.Snippets),
		assembler: NewAssembler(),
		fetchCap:  fetchCap,
	}
}

// AssemblePage produces a complete page for the search query. When no
// document matches, the page is still assembled with placeholder sections
// and a low confidence score.
func (e *Engine) AssemblePage(ctx context.Context, query string) (core.AssembledContent, error) {
	docs, err := e.corpus.FetchPublished(ctx, e.fetchCap)
	if err != nil {
		return core.AssembledContent{}, fmt.Errorf("failed to fetch published documents: %w", err)
	}

	ranked := e.scorer.Rank(query, docs)
	snippets := e.extractor.Extract(query, ranked)
	contentType := ClassifyQuery(query)

	logger.Debug("assembling page", map[string]any{
		"query":        query,
		"content_type": contentType,
		"documents":    len(ranked),
		"snippets":     len(snippets),
	})

	return e.assembler.Assemble(query, contentType, snippets)
}

// Package corpus provides access to the host platform's published document
// store. The retrieval engine depends only on the Corpus interface so the
// store can be substituted with a test double.
package corpus

import (
	"context"
	"sort"

	"pagecraft/internal/core"
)

// DefaultFetchLimit bounds how many recent documents a query considers.
const DefaultFetchLimit = 50

// Corpus supplies published documents, most recent first.
type Corpus interface {
	// FetchPublished returns up to limit published documents ordered by
	// publication date descending.
	FetchPublished(ctx context.Context, limit int) ([]core.Document, error)
	// Permalink returns the canonical URL for a document ID, or "" when the
	// document is unknown.
	Permalink(documentID string) string
}

// StaticCorpus is an in-memory Corpus backed by a fixed document slice.
type StaticCorpus struct {
	docs []core.Document
}

// NewStaticCorpus creates a corpus over the given documents.
func NewStaticCorpus(docs []core.Document) *StaticCorpus {
	return &StaticCorpus{docs: docs}
}

// FetchPublished returns up to limit documents, most recent first.
func (s *StaticCorpus) FetchPublished(_ context.Context, limit int) ([]core.Document, error) {
	sorted := make([]core.Document, len(s.docs))
	copy(sorted, s.docs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].PublishedAt.After(sorted[b].PublishedAt)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// Permalink returns the stored URL for the document, or "".
func (s *StaticCorpus) Permalink(documentID string) string {
	for _, doc := range s.docs {
		if doc.ID == documentID {
			return doc.URL
		}
	}
	return ""
}

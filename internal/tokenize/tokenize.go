// Package tokenize normalizes text into the filtered word sequence used by
// the relevance scorer and snippet extractor.
package tokenize

import (
	"iter"
	"regexp"
	"strings"

	"pagecraft/internal/sanitize"
)

const minTokenLength = 3

var wordRegex = regexp.MustCompile(`[a-z0-9]+`)

// Tokenizer normalizes text into a filtered word sequence: lower-cased,
// markup stripped, alphanumeric words only, stop words and short words
// removed. Tokenization is deterministic for identical input.
type Tokenizer struct {
	stopWords map[string]bool
}

// New creates a Tokenizer with the default stop word set.
func New() *Tokenizer {
	return &Tokenizer{stopWords: defaultStopWords()}
}

// Tokens returns a lazy, order-preserving sequence of normalized tokens.
// Multiplicity is preserved: a word appearing twice yields two tokens.
func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		plain := strings.ToLower(sanitize.StripTags(text))
		for _, word := range wordRegex.FindAllString(plain, -1) {
			if len(word) < minTokenLength || t.stopWords[word] {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// Tokenize collects the token sequence into a slice. The result is never
// nil.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := []string{}
	for token := range t.Tokens(text) {
		tokens = append(tokens, token)
	}
	return tokens
}

// defaultStopWords returns the fixed set of common English stop words
// removed during tokenization.
func defaultStopWords() map[string]bool {
	words := []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can",
		"had", "her", "was", "one", "our", "out", "day", "get", "has",
		"him", "his", "how", "its", "may", "new", "now", "old", "see",
		"two", "way", "who", "did", "does", "this", "that", "with",
		"from", "they", "will", "what", "when", "where",
	}

	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}

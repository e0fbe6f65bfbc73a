package tokenize

import (
	"strings"
	"testing"
)

func TestTokenizeFiltersShortAndStopWords(t *testing.T) {
	tokenizer := New()
	tokens := tokenizer.Tokenize("How to fix a dripping faucet in the kitchen")

	for _, token := range tokens {
		if len(token) < 3 {
			t.Errorf("Token %q is shorter than 3 characters", token)
		}
		if tokenizer.stopWords[token] {
			t.Errorf("Stop word %q survived tokenization", token)
		}
	}

	joined := strings.Join(tokens, " ")
	for _, want := range []string{"fix", "dripping", "faucet", "kitchen"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected token %q in output, got %v", want, tokens)
		}
	}
}

func TestTokenizeLowercasesAndStripsMarkup(t *testing.T) {
	tokenizer := New()
	tokens := tokenizer.Tokenize("<p>Faucet <b>REPAIR</b> basics</p>")

	for _, token := range tokens {
		if token != strings.ToLower(token) {
			t.Errorf("Token %q is not lower-cased", token)
		}
		if strings.ContainsAny(token, "<>") {
			t.Errorf("Token %q contains markup", token)
		}
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	tokenizer := New()
	first := tokenizer.Tokenize("Choosing the best cordless drill for woodworking projects")
	second := tokenizer.Tokenize(strings.Join(first, " "))

	if len(first) != len(second) {
		t.Fatalf("Re-tokenization changed token count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Token %d changed on re-tokenization: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tokenizer := New()
	input := "Installing shelves on a plaster wall"
	first := tokenizer.Tokenize(input)
	second := tokenizer.Tokenize(input)

	if strings.Join(first, "|") != strings.Join(second, "|") {
		t.Errorf("Tokenization is not deterministic: %v vs %v", first, second)
	}
}

func TestTokenizePreservesMultiplicity(t *testing.T) {
	tokenizer := New()
	tokens := tokenizer.Tokenize("paint paint brush")

	count := 0
	for _, token := range tokens {
		if token == "paint" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("Expected 'paint' twice, got %d occurrences in %v", count, tokens)
	}
}

func TestTokensLazySequenceStopsEarly(t *testing.T) {
	tokenizer := New()
	seen := 0
	for range tokenizer.Tokens("one alpha beta gamma delta epsilon") {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("Expected iteration to stop after 2 tokens, saw %d", seen)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokenizer := New()
	tokens := tokenizer.Tokenize("")
	if tokens == nil {
		t.Error("Tokenize should return an empty slice, not nil")
	}
	if len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty input, got %v", tokens)
	}
}

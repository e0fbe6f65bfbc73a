package sanitize

import (
	"strings"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<b>"bold" & 'brash'</b>`)
	if strings.ContainsAny(got, "<>\"'") {
		t.Errorf("Expected special characters escaped, got %q", got)
	}
}

func TestStripTagsRemovesMarkup(t *testing.T) {
	got := StripTags("<p>Replace the <em>washer</em> first.</p>")
	if got != "Replace the washer first." {
		t.Errorf("Expected plain text, got %q", got)
	}
}

func TestStripTagsDropsScriptContent(t *testing.T) {
	got := StripTags(`<p>Safe text</p><script>alert("boom")</script><style>p{}</style>`)
	if strings.Contains(got, "alert") || strings.Contains(got, "p{}") {
		t.Errorf("Expected script and style content dropped, got %q", got)
	}
	if !strings.Contains(got, "Safe text") {
		t.Errorf("Expected the text content kept, got %q", got)
	}
}

func TestStripTagsCollapsesWhitespace(t *testing.T) {
	got := StripTags("line one\n\n   line   two\t\tend")
	if got != "line one line two end" {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}

func TestStripTagsPlainTextUnchanged(t *testing.T) {
	got := StripTags("no markup here")
	if got != "no markup here" {
		t.Errorf("Expected plain text unchanged, got %q", got)
	}
}

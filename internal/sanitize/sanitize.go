// Package sanitize provides the escaping and markup-stripping primitives
// applied to user- and provider-sourced text before it is embedded in output.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// EscapeHTML escapes special characters so the text is safe to embed in HTML.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// StripTags removes all markup from an HTML fragment and returns the plain
// text with collapsed whitespace. Script, style and other non-content
// elements are dropped entirely. Input that is not valid HTML is returned
// with whitespace collapsed.
func StripTags(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return collapse(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}

	doc.Find("script, style, noscript, iframe").Remove()
	return collapse(doc.Text())
}

func collapse(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

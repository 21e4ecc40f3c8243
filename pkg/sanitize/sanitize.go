// Package sanitize converts raw, possibly HTML-bearing text into plain text.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

// Matches the shortest run between '<' and the next '>'. A heuristic tag
// stripper, not an HTML parser: stray angle brackets inside attributes can
// over- or under-strip.
var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// Clean strips HTML tags, decodes character entities and collapses all
// whitespace runs into single spaces. Empty input yields an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	clean := tagPattern.ReplaceAllString(text, "")
	clean = html.UnescapeString(clean)

	return strings.Join(strings.Fields(clean), " ")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlight marks query-term occurrences inside record text for
// rendering. The text is markup-escaped before any marking, so a record
// whose abstract itself contains markup cannot inject it into the
// rendered page.
//
// Terms are matched independently of one another: when two terms
// overlap in the text, both spans are marked without deduplication.
// Inherited source behavior, kept as-is.
package highlight

import (
	"html"
	"regexp"
	"strings"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// minTermLength filters out short noise tokens; only terms longer than
// two characters are highlighted.
const minTermLength = 2

// Escape renders text safe for markup output.
func Escape(text string) string {
	return html.EscapeString(text)
}

// Terms extracts the distinct highlightable terms from a raw query:
// quotes removed, split on OR and whitespace, short tokens dropped.
// Terms come back lowercased in first-seen order.
func Terms(rawQuery string) []string {
	unquoted := strings.ReplaceAll(rawQuery, `"`, "")

	var terms []string
	seen := make(map[string]bool)
	for _, field := range strings.Fields(unquoted) {
		if strings.EqualFold(field, "OR") {
			continue
		}
		term := strings.ToLower(field)
		if len(term) <= minTermLength || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

// Highlight escapes text and wraps every case-insensitive occurrence of
// each query term in an emphasis marker. An empty query returns the
// escaped text unchanged.
func Highlight(text, rawQuery string) string {
	escaped := Escape(text)
	for _, term := range Terms(rawQuery) {
		pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		escaped = pattern.ReplaceAllString(escaped, markOpen+"$0"+markClose)
	}
	return escaped
}

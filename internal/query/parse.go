// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query parses free-text paper searches and evaluates the
// compound filter criteria against canonical Paper records.
//
// The query mini-language is deliberately small: space-separated terms
// are required together (AND), the word OR (any case) separates
// alternatives, and double quotes group an exact phrase. There is no
// negation and no field-scoped syntax.
package query

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedQuery is the boolean structure of a search string: an OR of
// AND-groups, each group an ordered list of lowercased tokens. An empty
// ParsedQuery matches everything.
type ParsedQuery [][]string

// IsEmpty reports whether the query imposes no text constraint.
func (q ParsedQuery) IsEmpty() bool { return len(q) == 0 }

// phrasePattern captures balanced double-quoted phrases. An unbalanced
// quote never matches and passes through as ordinary text.
var phrasePattern = regexp.MustCompile(`"([^"]*)"`)

// placeholder returns the stand-in substituted for the i-th extracted
// phrase so whitespace and OR splitting cannot break the phrase apart.
// NUL delimiters cannot occur in user input.
func placeholder(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}

// Parse turns a raw search string into its ParsedQuery. Whitespace-only
// input, a bare OR, and consecutive ORs all degrade to the most
// permissive interpretation rather than erroring: groups with no tokens
// are dropped, and no groups at all means match-everything.
func Parse(raw string) ParsedQuery {
	var phrases []string
	substituted := phrasePattern.ReplaceAllStringFunc(raw, func(m string) string {
		phrases = append(phrases, strings.ToLower(m[1:len(m)-1]))
		return placeholder(len(phrases) - 1)
	})

	var parsed ParsedQuery
	var group []string
	flush := func() {
		if len(group) > 0 {
			parsed = append(parsed, group)
			group = nil
		}
	}

	for _, field := range strings.Fields(substituted) {
		if strings.EqualFold(field, "OR") {
			flush()
			continue
		}
		if token := restore(field, phrases); token != "" {
			group = append(group, token)
		}
	}
	flush()

	return parsed
}

// restore lowercases a token and substitutes extracted phrases back in
// place of their placeholders. A token may be a bare placeholder or a
// placeholder glued to surrounding text.
func restore(token string, phrases []string) string {
	token = strings.ToLower(token)
	for i, phrase := range phrases {
		token = strings.ReplaceAll(token, placeholder(i), phrase)
	}
	return strings.TrimSpace(token)
}

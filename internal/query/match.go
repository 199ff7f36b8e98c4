// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// filterLevels are the relevance levels that count toward topic-tag
// filtering. Broader than the facet-count levels: a paper judged only
// Somewhat Relevant for a criterion still matches that criterion's tag
// filter, it just is not counted in the facet summary.
var filterLevels = []types.RelevanceLevel{
	types.PerfectlyRelevant,
	types.HighlyRelevant,
	types.SomewhatRelevant,
}

// TextMatches evaluates a parsed query against a body of text: true
// when the query is empty, false when the text is empty and the query
// is not, otherwise true iff at least one OR-group has all of its
// tokens present as case-insensitive substrings.
func TextMatches(text string, parsed ParsedQuery) bool {
	if parsed.IsEmpty() {
		return true
	}
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, group := range parsed {
		matched := true
		for _, token := range group {
			if !strings.Contains(lower, token) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// SearchableText concatenates the fields free-text queries match
// against: title, abstract, tldr, relevance summary, DOI, journal name,
// and author names. Empty fields are skipped. Nothing else in the
// record is searchable.
func SearchableText(p types.Paper) string {
	parts := make([]string, 0, 6+len(p.Authors))
	for _, s := range []string{p.Title, p.Abstract, p.TLDR, p.RelevanceSummary, p.DOI, p.Journal} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	for _, a := range p.Authors {
		if a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}

// Criteria is one search invocation's compound filter. Every axis left
// at its zero value imposes no constraint; axes combine with AND.
type Criteria struct {
	// Text is the raw free-text query.
	Text string

	// YearFrom and YearTo bound the extracted publication year
	// inclusively; zero means unbounded on that side. A record whose
	// year cannot be extracted is never excluded by the year filter.
	YearFrom int
	YearTo   int

	// MinCitations is the citation floor; zero passes everything.
	MinCitations int

	// Sources selects aggregator sources by case-insensitive substring.
	Sources []string

	// PublicationTypes selects publication types by exact membership.
	PublicationTypes []string

	// TopicTags selects papers whose criterion tags (at any relevance
	// level) intersect this set.
	TopicTags []string

	// AuthorSubstring matches case-insensitively against any author
	// display name.
	AuthorSubstring string

	// Journals selects journals by exact membership; a record with no
	// journal fails any active journal filter.
	Journals []string
}

// IsEmpty reports whether the criteria impose no constraint at all.
func (c Criteria) IsEmpty() bool {
	return c.Text == "" && c.YearFrom == 0 && c.YearTo == 0 && c.MinCitations == 0 &&
		len(c.Sources) == 0 && len(c.PublicationTypes) == 0 && len(c.TopicTags) == 0 &&
		c.AuthorSubstring == "" && len(c.Journals) == 0
}

// Filter is a Criteria compiled for repeated evaluation: the text query
// parsed once and the set axes materialized as lookup maps. A Filter is
// read-only after Compile and safe for concurrent use.
type Filter struct {
	criteria Criteria
	parsed   ParsedQuery
	sources  []string
	types    map[string]bool
	tags     map[string]bool
	journals map[string]bool
	author   string
}

// Compile prepares criteria for evaluation against many records.
func Compile(c Criteria) *Filter {
	f := &Filter{
		criteria: c,
		parsed:   Parse(c.Text),
		author:   strings.ToLower(c.AuthorSubstring),
	}
	for _, s := range c.Sources {
		if s != "" {
			f.sources = append(f.sources, strings.ToLower(s))
		}
	}
	f.types = toSet(c.PublicationTypes)
	f.tags = toSet(c.TopicTags)
	f.journals = toSet(c.Journals)
	return f
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}

// Query exposes the compiled text query, for callers that match
// additional texts (highlighting previews, TUI detail panes).
func (f *Filter) Query() ParsedQuery { return f.parsed }

// Matches evaluates the full compound filter against one record. All
// axes must pass.
func (f *Filter) Matches(p types.Paper) bool {
	if !TextMatches(SearchableText(p), f.parsed) {
		return false
	}
	if !f.yearInRange(p) {
		return false
	}
	if p.Citations < f.criteria.MinCitations {
		return false
	}
	if !f.sourceMatches(p) {
		return false
	}
	if len(f.types) > 0 && !f.types[p.PublicationType] {
		return false
	}
	if !f.tagsOverlap(p) {
		return false
	}
	if !f.authorMatches(p) {
		return false
	}
	if len(f.journals) > 0 && (p.Journal == "" || !f.journals[p.Journal]) {
		return false
	}
	return true
}

// yearInRange excludes a record only when its year is known and falls
// outside an explicitly bounded side of the range.
func (f *Filter) yearInRange(p types.Paper) bool {
	year, ok := p.Year()
	if !ok {
		return true
	}
	if f.criteria.YearFrom != 0 && year < f.criteria.YearFrom {
		return false
	}
	if f.criteria.YearTo != 0 && year > f.criteria.YearTo {
		return false
	}
	return true
}

func (f *Filter) sourceMatches(p types.Paper) bool {
	if len(f.sources) == 0 {
		return true
	}
	source := strings.ToLower(p.Source)
	for _, want := range f.sources {
		if strings.Contains(source, want) {
			return true
		}
	}
	return false
}

func (f *Filter) tagsOverlap(p types.Paper) bool {
	if len(f.tags) == 0 {
		return true
	}
	for _, tag := range p.TopicTags(filterLevels...) {
		if f.tags[tag] {
			return true
		}
	}
	return false
}

func (f *Filter) authorMatches(p types.Paper) bool {
	if f.author == "" {
		return true
	}
	for _, name := range p.Authors {
		if strings.Contains(strings.ToLower(name), f.author) {
			return true
		}
	}
	return false
}

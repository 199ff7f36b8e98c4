// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperdeck browser:
// the canonical Paper record, its derived-field accessors, and the
// configuration structs consumed by the CLI.
//
// A Paper is produced exactly once, by internal/dataset shape
// normalization; every downstream component (query, browse, export, tui)
// works with this single canonical form and never re-checks the loose
// shapes found in the raw dataset.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// RelevanceLevel is the judged relevance of a paper against a research
// criterion, as assigned by the upstream curation run.
type RelevanceLevel string

const (
	PerfectlyRelevant RelevanceLevel = "Perfectly Relevant"
	HighlyRelevant    RelevanceLevel = "Highly Relevant"
	SomewhatRelevant  RelevanceLevel = "Somewhat Relevant"
)

// RankUnknown is the sort sentinel assigned to records without a
// precomputed relevance rank. Unranked papers sort after ranked ones.
const RankUnknown = 9999

// urlKindPriority lists the URL kind keys inside a record's paper_urls
// map in best-link order: canonical HTML first, then PDF, then anything
// else, then uncategorized. BestURL depends on this exact order for
// reproducible link selection.
var urlKindPriority = []string{"Html", "Pdf", "Others", "Unknown"}

// Judgment is one criterion judgment from a paper's relevance metadata.
// Criterion names are hyphen-normalized at ingestion so that the same
// topic spelled with Unicode hyphen glyphs dedupes to one tag.
type Judgment struct {
	Criterion string         `json:"criterion_name" yaml:"criterion_name"`
	Relevance RelevanceLevel `json:"relevance" yaml:"relevance"`
}

// Paper is the canonical record for one academic paper. Every field may
// be empty; accessors degrade to typed defaults and never fail.
type Paper struct {
	// Title is the paper title, possibly empty.
	Title string `json:"title" yaml:"title"`

	// Abstract, TLDR, and RelevanceSummary are the free-text bodies
	// searched by the query engine.
	Abstract         string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	TLDR             string `json:"tldr,omitempty" yaml:"tldr,omitempty"`
	RelevanceSummary string `json:"relevance_summary,omitempty" yaml:"relevance_summary,omitempty"`

	// Date is the raw publication date as found in the source record:
	// "YYYY", "YYYY-MM", "YYYY-MM-DD", or any of those with a trailing
	// time/timezone suffix. Kept verbatim; see Year and FormatDate.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Authors lists display names in source order, empties dropped at
	// ingestion. AuthorTotal is the source's declared author count when
	// present, which may exceed len(Authors).
	Authors     []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	AuthorTotal int      `json:"author_total,omitempty" yaml:"author_total,omitempty"`

	// Journal is the journal display name, Source the aggregator that
	// supplied the record (SciSpace, Google Scholar, arXiv, PubMed, ...).
	Journal         string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Source          string `json:"source,omitempty" yaml:"source,omitempty"`
	PublicationType string `json:"publication_type,omitempty" yaml:"publication_type,omitempty"`

	// Citations is the citation count, clamped to >= 0 at ingestion.
	Citations int `json:"citations" yaml:"citations"`

	// Judgments holds the relevance criteria judged for this paper.
	Judgments []Judgment `json:"judgments,omitempty" yaml:"judgments,omitempty"`

	// Rank is the precomputed relevance rank; RankUnknown when absent.
	Rank int `json:"rank" yaml:"rank"`

	// Link fields, in descending trustworthiness. URLs maps a URL kind
	// (Html, Pdf, Others, Unknown) to candidate links.
	DOI         string              `json:"doi,omitempty" yaml:"doi,omitempty"`
	Link        string              `json:"link,omitempty" yaml:"link,omitempty"`
	FullTextURL string              `json:"fulltext_url,omitempty" yaml:"fulltext_url,omitempty"`
	URLs        map[string][]string `json:"paper_urls,omitempty" yaml:"paper_urls,omitempty"`
}

var leadingYear = regexp.MustCompile(`^\d{4}`)

// Year extracts the publication year from the leading four-digit run of
// the date field. ok is false when the date is empty or does not start
// with four digits; callers must treat an unknown year as unconstrained,
// never as an error.
func (p Paper) Year() (year int, ok bool) {
	m := leadingYear.FindString(strings.TrimSpace(p.Date))
	if m == "" {
		return 0, false
	}
	for _, c := range m {
		year = year*10 + int(c-'0')
	}
	return year, true
}

// dateLayouts are tried in order against the date with any time-of-day
// suffix stripped. First match wins.
var dateLayouts = []struct {
	layout string
	out    string
}{
	{"2006-01-02", "January 2006"},
	{"2006-01", "January 2006"},
	{"2006", "2006"},
}

// FormatDate renders the date as a human-readable month-year (or bare
// year). Content after the first space or 'T' is ignored for layout
// matching. An unrecognized date comes back trimmed but otherwise
// verbatim; an empty date comes back empty. Never fails.
func (p Paper) FormatDate() string {
	trimmed := strings.TrimSpace(p.Date)
	if trimmed == "" {
		return ""
	}
	head := trimmed
	if i := strings.IndexAny(head, " T"); i >= 0 {
		head = head[:i]
	}
	for _, dl := range dateLayouts {
		if t, err := time.Parse(dl.layout, head); err == nil {
			return t.Format(dl.out)
		}
	}
	return trimmed
}

// AuthorsNotAvailable is the display sentinel for records with no usable
// author names.
const AuthorsNotAvailable = "Authors not available"

// maxDisplayedAuthors bounds how many names FormatAuthors lists before
// collapsing to "et al.".
const maxDisplayedAuthors = 5

// FormatAuthors renders the author list: the first five distinct names,
// comma-joined, with an "et al. (N authors)" suffix when the total
// author count exceeds five.
func (p Paper) FormatAuthors() string {
	var names []string
	seen := make(map[string]bool)
	for _, name := range p.Authors {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
		if len(names) == maxDisplayedAuthors {
			break
		}
	}
	if len(names) == 0 {
		return AuthorsNotAvailable
	}

	total := p.AuthorTotal
	if total <= 0 {
		total = len(p.Authors)
	}
	result := strings.Join(names, ", ")
	if total > maxDisplayedAuthors {
		result += fmt.Sprintf(" et al. (%d authors)", total)
	}
	return result
}

// BestURL picks the single best outbound link for the paper: the
// explicit link field, else the first URL scanning kinds in priority
// order (Html, Pdf, Others, Unknown), else a DOI resolver URL, else "".
func (p Paper) BestURL() string {
	if p.Link != "" {
		return p.Link
	}
	for _, kind := range urlKindPriority {
		for _, u := range p.URLs[kind] {
			if u != "" {
				return u
			}
		}
	}
	if p.DOI != "" {
		return "https://doi.org/" + p.DOI
	}
	return ""
}

// FullText returns the fulltext URL, resolving SciSpace-relative "/pdf"
// paths against the SciSpace host. Empty when the record has none.
func (p Paper) FullText() string {
	if strings.HasPrefix(p.FullTextURL, "/pdf") {
		return "https://scispace.com" + p.FullTextURL
	}
	return p.FullTextURL
}

// TopicTags collects the distinct criterion names judged at any of the
// given relevance levels, in first-seen order.
func (p Paper) TopicTags(levels ...RelevanceLevel) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, j := range p.Judgments {
		if j.Criterion == "" || seen[j.Criterion] {
			continue
		}
		for _, lvl := range levels {
			if j.Relevance == lvl {
				seen[j.Criterion] = true
				tags = append(tags, j.Criterion)
				break
			}
		}
	}
	return tags
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
		ok   bool
	}{
		{"full date", "2021-06-01", 2021, true},
		{"year month", "2020-01", 2020, true},
		{"bare year", "2019", 2019, true},
		{"timestamp suffix", "2023-03-15T10:30:00Z", 2023, true},
		{"leading whitespace", "  2022-01-01", 2022, true},
		{"empty", "", 0, false},
		{"non numeric", "June 2021", 0, false},
		{"short digit run", "202", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paper{Date: tt.date}
			year, ok := p.Year()
			if ok != tt.ok || year != tt.want {
				t.Errorf("Year() = (%d, %v), want (%d, %v)", year, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"full date", "2021-06-01", "June 2021"},
		{"year month", "2020-01", "January 2020"},
		{"bare year", "2019", "2019"},
		{"time suffix stripped", "2021-06-01T12:00:00Z", "June 2021"},
		{"space suffix stripped", "2021-06-01 12:00:00", "June 2021"},
		{"unrecognized passes through", "circa 2020", "circa 2020"},
		{"invalid month passes through", "2021-13-01", "2021-13-01"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paper{Date: tt.date}
			if got := p.FormatDate(); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		total   int
		want    string
	}{
		{"no authors", nil, 0, AuthorsNotAvailable},
		{"single", []string{"Jane Doe"}, 1, "Jane Doe"},
		{"few", []string{"A One", "B Two"}, 2, "A One, B Two"},
		{
			"over five collapses",
			[]string{"A", "B", "C", "D", "E", "F", "G"}, 7,
			"A, B, C, D, E et al. (7 authors)",
		},
		{
			"declared total wins",
			[]string{"A", "B"}, 12,
			"A, B et al. (12 authors)",
		},
		{
			"duplicates skipped",
			[]string{"A", "A", "B"}, 3,
			"A, B",
		},
		{
			"blank names skipped",
			[]string{"", "  ", "Only Name"}, 3,
			"Only Name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paper{Authors: tt.authors, AuthorTotal: tt.total}
			if got := p.FormatAuthors(); got != tt.want {
				t.Errorf("FormatAuthors() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBestURL(t *testing.T) {
	tests := []struct {
		name  string
		paper Paper
		want  string
	}{
		{
			"explicit link wins over html",
			Paper{Link: "L", URLs: map[string][]string{"Html": {"H"}}},
			"L",
		},
		{
			"pdf when html list empty",
			Paper{URLs: map[string][]string{"Pdf": {"P"}, "Html": {}}},
			"P",
		},
		{
			"html before pdf",
			Paper{URLs: map[string][]string{"Pdf": {"P"}, "Html": {"H"}}},
			"H",
		},
		{
			"others before unknown",
			Paper{URLs: map[string][]string{"Unknown": {"U"}, "Others": {"O"}}},
			"O",
		},
		{
			"doi fallback",
			Paper{DOI: "10.1/x"},
			"https://doi.org/10.1/x",
		},
		{
			"doi loses to url",
			Paper{DOI: "10.1/x", URLs: map[string][]string{"Unknown": {"U"}}},
			"U",
		},
		{
			"empty strings skipped",
			Paper{URLs: map[string][]string{"Html": {"", "H2"}}},
			"H2",
		},
		{"nothing", Paper{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.paper.BestURL(); got != tt.want {
				t.Errorf("BestURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullText(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"scispace relative", "/pdf/123.pdf", "https://scispace.com/pdf/123.pdf"},
		{"absolute untouched", "https://example.org/x.pdf", "https://example.org/x.pdf"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paper{FullTextURL: tt.url}
			if got := p.FullText(); got != tt.want {
				t.Errorf("FullText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopicTags(t *testing.T) {
	p := Paper{Judgments: []Judgment{
		{Criterion: "Affinity Maturation", Relevance: PerfectlyRelevant},
		{Criterion: "Epitope Mapping", Relevance: SomewhatRelevant},
		{Criterion: "Affinity Maturation", Relevance: HighlyRelevant}, // dup criterion
		{Criterion: "Structure Prediction", Relevance: "Not Relevant"},
	}}

	got := p.TopicTags(PerfectlyRelevant, HighlyRelevant)
	want := []string{"Affinity Maturation"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("TopicTags(strict) = %v, want %v", got, want)
	}

	got = p.TopicTags(PerfectlyRelevant, HighlyRelevant, SomewhatRelevant)
	if len(got) != 2 || got[0] != "Affinity Maturation" || got[1] != "Epitope Mapping" {
		t.Errorf("TopicTags(all) = %v, want [Affinity Maturation Epitope Mapping]", got)
	}

	if tags := (Paper{}).TopicTags(PerfectlyRelevant); len(tags) != 0 {
		t.Errorf("TopicTags on empty paper = %v, want none", tags)
	}
}

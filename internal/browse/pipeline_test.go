// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"testing"

	"github.com/pdiddy/paperdeck/internal/query"
	"github.com/pdiddy/paperdeck/pkg/types"
)

func titles(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.Title
	}
	return out
}

func assertOrder(t *testing.T, papers []types.Paper, want ...string) {
	t.Helper()
	got := titles(papers)
	if len(got) != len(want) {
		t.Fatalf("result = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result = %v, want %v", got, want)
		}
	}
}

// The end-to-end scenario: text filter excludes R2, citations sort puts
// R1 before R3.
func TestRunFilterThenSort(t *testing.T) {
	papers := []types.Paper{
		{Title: "Antibody design with GNNs", Date: "2021", Citations: 10},
		{Title: "Protein folding", Date: "2023", Citations: 50},
		{Title: "Antibody optimization", Date: "2019", Citations: 5},
	}

	results := Run(papers, query.Criteria{Text: "antibody"}, SortCitations)
	assertOrder(t, results, "Antibody design with GNNs", "Antibody optimization")
}

func TestRunYearFilter(t *testing.T) {
	papers := []types.Paper{
		{Title: "unparseable", Date: "no date recorded"},
		{Title: "too old", Date: "2019-06-01"},
		{Title: "boundary", Date: "2020-01"},
	}

	results := Run(papers, query.Criteria{YearFrom: 2020}, SortRelevance)
	assertOrder(t, results, "unparseable", "boundary")
}

func TestSortCitationsStable(t *testing.T) {
	papers := []types.Paper{
		{Title: "first five", Citations: 5},
		{Title: "twenty", Citations: 20},
		{Title: "second five", Citations: 5},
	}

	results := Run(papers, query.Criteria{}, SortCitations)
	assertOrder(t, results, "twenty", "first five", "second five")
}

func TestSortRelevanceRank(t *testing.T) {
	papers := []types.Paper{
		{Title: "unranked", Rank: types.RankUnknown},
		{Title: "third", Rank: 3},
		{Title: "first", Rank: 1},
	}

	results := Run(papers, query.Criteria{}, SortRelevance)
	assertOrder(t, results, "first", "third", "unranked")
}

// Unknown years sort last in both year directions.
func TestSortYearUnknownLast(t *testing.T) {
	papers := []types.Paper{
		{Title: "undated"},
		{Title: "old", Date: "2015"},
		{Title: "new", Date: "2023-01-01"},
	}

	newest := Run(papers, query.Criteria{}, SortNewest)
	assertOrder(t, newest, "new", "old", "undated")

	oldest := Run(papers, query.Criteria{}, SortOldest)
	assertOrder(t, oldest, "old", "new", "undated")
}

func TestSortTitle(t *testing.T) {
	papers := []types.Paper{
		{Title: "beta"},
		{Title: "Alpha"},
		{Title: "gamma"},
	}

	results := Run(papers, query.Criteria{}, SortTitle)
	assertOrder(t, results, "Alpha", "beta", "gamma")
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", SortRelevance, false},
		{"relevance", SortRelevance, false},
		{"Citations", SortCitations, false},
		{"NEWEST", SortNewest, false},
		{"shuffle", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	papers := make([]types.Paper, 23)
	for i := range papers {
		papers[i] = types.Paper{Citations: i}
	}

	window, info := Page(papers, 1, 10)
	if len(window) != 10 || info.TotalPages != 3 || info.Start != 1 || info.End != 10 {
		t.Errorf("page 1: len=%d info=%+v", len(window), info)
	}

	window, info = Page(papers, 3, 10)
	if len(window) != 3 || info.Start != 21 || info.End != 23 {
		t.Errorf("page 3: len=%d info=%+v", len(window), info)
	}
	if window[0].Citations != 20 {
		t.Errorf("page 3 starts at record %d, want 20", window[0].Citations)
	}

	// Out-of-range pages clamp instead of erroring.
	_, info = Page(papers, 99, 10)
	if info.Page != 3 {
		t.Errorf("overflow page = %d, want 3", info.Page)
	}
	_, info = Page(papers, 0, 10)
	if info.Page != 1 {
		t.Errorf("underflow page = %d, want 1", info.Page)
	}

	window, info = Page(nil, 1, 10)
	if window != nil || info.TotalPages != 0 {
		t.Errorf("empty collection: window=%v info=%+v", window, info)
	}
	if info.Summary() != "No papers to show." {
		t.Errorf("empty summary = %q", info.Summary())
	}
}

func TestStatsCollect(t *testing.T) {
	papers := []types.Paper{
		{Date: "2019", Citations: 10},
		{Date: "2023-05-01", Citations: 30},
		{Date: "not a date", Citations: 2},
	}

	s := Collect(papers)
	if s.Total != 3 || s.TotalCitations != 42 {
		t.Errorf("stats = %+v", s)
	}
	if s.AvgCitations != 14.0 {
		t.Errorf("avg = %f, want 14.0", s.AvgCitations)
	}
	if s.YearMin != 2019 || s.YearMax != 2023 {
		t.Errorf("year range = %d-%d, want 2019-2023", s.YearMin, s.YearMax)
	}

	empty := Collect(nil)
	if empty.Total != 0 || empty.AvgCitations != 0 || empty.YearMin != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}

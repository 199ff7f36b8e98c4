// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browse orchestrates the query engine over a paper collection:
// filtering, sorting, pagination, facet summaries, and collection
// statistics. It owns no state; every call is a pure function of the
// immutable record slice and the per-invocation criteria.
package browse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paperdeck/internal/query"
	"github.com/pdiddy/paperdeck/pkg/types"
)

// SortKey selects one of the fixed result orderings.
type SortKey string

const (
	// SortRelevance orders by precomputed rank, best first; unranked
	// records sort last via the RankUnknown sentinel.
	SortRelevance SortKey = "relevance"

	// SortCitations orders by citation count, highest first.
	SortCitations SortKey = "citations"

	// SortNewest and SortOldest order by extracted year. Records with
	// an unknown year sort last in both directions.
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"

	// SortTitle orders case-insensitively by title.
	SortTitle SortKey = "title"
)

// SortKeys lists the valid keys in display order.
var SortKeys = []SortKey{SortRelevance, SortCitations, SortNewest, SortOldest, SortTitle}

// ParseSortKey resolves a user-supplied sort name, defaulting to
// relevance for empty input.
func ParseSortKey(name string) (SortKey, error) {
	if name == "" {
		return SortRelevance, nil
	}
	for _, key := range SortKeys {
		if strings.EqualFold(name, string(key)) {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (valid: relevance, citations, newest, oldest, title)", name)
}

// oldestUnknownYear sorts unknown-year records to the end of an
// oldest-first ordering; newest-first uses zero for the same effect.
const oldestUnknownYear = 10000

// Run filters the collection through the compiled criteria, preserving
// input order among survivors, then applies the sort key. Sorting is
// stable: equal keys keep their filtered order, so repeated runs over
// the same dataset are deterministic.
func Run(papers []types.Paper, criteria query.Criteria, key SortKey) []types.Paper {
	filter := query.Compile(criteria)

	results := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if filter.Matches(p) {
			results = append(results, p)
		}
	}

	sortPapers(results, key)
	return results
}

func sortPapers(papers []types.Paper, key SortKey) {
	switch key {
	case SortCitations:
		sort.SliceStable(papers, func(i, j int) bool {
			return papers[i].Citations > papers[j].Citations
		})
	case SortNewest:
		sort.SliceStable(papers, func(i, j int) bool {
			return yearOrZero(papers[i]) > yearOrZero(papers[j])
		})
	case SortOldest:
		sort.SliceStable(papers, func(i, j int) bool {
			return yearOrMax(papers[i]) < yearOrMax(papers[j])
		})
	case SortTitle:
		sort.SliceStable(papers, func(i, j int) bool {
			return strings.ToLower(papers[i].Title) < strings.ToLower(papers[j].Title)
		})
	default: // SortRelevance
		sort.SliceStable(papers, func(i, j int) bool {
			return papers[i].Rank < papers[j].Rank
		})
	}
}

func yearOrZero(p types.Paper) int {
	year, ok := p.Year()
	if !ok {
		return 0
	}
	return year
}

func yearOrMax(p types.Paper) int {
	year, ok := p.Year()
	if !ok {
		return oldestUnknownYear
	}
	return year
}

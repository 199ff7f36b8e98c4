// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import "github.com/pdiddy/paperdeck/pkg/types"

// Stats summarizes a (possibly filtered) collection: counts, citation
// totals, and the known-year range.
type Stats struct {
	Total          int     `json:"total"`
	TotalCitations int     `json:"total_citations"`
	AvgCitations   float64 `json:"avg_citations"`

	// YearMin and YearMax span the extractable years; both zero when no
	// record has a known year.
	YearMin int `json:"year_min"`
	YearMax int `json:"year_max"`
}

// Collect computes Stats in one pass. Records without an extractable
// year contribute to counts and citations but not to the year range.
func Collect(papers []types.Paper) Stats {
	s := Stats{Total: len(papers)}
	for _, p := range papers {
		s.TotalCitations += p.Citations
		if year, ok := p.Year(); ok {
			if s.YearMin == 0 || year < s.YearMin {
				s.YearMin = year
			}
			if year > s.YearMax {
				s.YearMax = year
			}
		}
	}
	if s.Total > 0 {
		s.AvgCitations = float64(s.TotalCitations) / float64(s.Total)
	}
	return s
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"fmt"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// DefaultPageSize is the per-page record count used when the
// configuration does not override it.
const DefaultPageSize = 10

// PageInfo describes one page window over a result list. Start and End
// are 1-based inclusive display positions.
type PageInfo struct {
	Page       int
	TotalPages int
	Start      int
	End        int
	Total      int
}

// Summary renders the pagination footer line.
func (pi PageInfo) Summary() string {
	if pi.Total == 0 {
		return "No papers to show."
	}
	return fmt.Sprintf("Page %d of %d | Showing papers %d-%d of %d",
		pi.Page, pi.TotalPages, pi.Start, pi.End, pi.Total)
}

// Page windows a result list. The page number is clamped into the valid
// range rather than erroring; perPage falls back to DefaultPageSize
// when non-positive.
func Page(papers []types.Paper, page, perPage int) ([]types.Paper, PageInfo) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	total := len(papers)
	totalPages := (total + perPage - 1) / perPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	info := PageInfo{Page: page, TotalPages: totalPages, Total: total}
	if total == 0 {
		return nil, info
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	info.Start = start + 1
	info.End = end
	return papers[start:end], info
}

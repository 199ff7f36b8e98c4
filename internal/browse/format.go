// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// FormatTable writes papers as a human-readable table to w. offset is
// the 0-based position of the first row within the full result list, so
// paginated output keeps absolute numbering.
func FormatTable(papers []types.Paper, offset int, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found matching your criteria.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %-6s  %s\n",
		"#", "Title", "Authors", "Year", "Cites", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, p := range papers {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := ""
		if y, ok := p.Year(); ok {
			year = fmt.Sprintf("%d", y)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %-6d  %s\n",
			offset+i+1, title, shortAuthors(p), year, p.Citations, displaySource(p.Source))
	}
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// shortAuthors renders a column-width author cell: first author plus
// "et al." when there are more.
func shortAuthors(p types.Paper) string {
	switch len(p.Authors) {
	case 0:
		return ""
	case 1:
		return truncate(p.Authors[0], 24)
	default:
		return truncate(p.Authors[0], 18) + " et al."
	}
}

// displaySource uppercases the aggregator name for display, with an
// "UNKNOWN" fallback. Presentation-boundary sentinel only; the record
// itself keeps the empty string.
func displaySource(source string) string {
	if source == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(source)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

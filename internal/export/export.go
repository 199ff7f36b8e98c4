// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes filtered paper collections for downstream
// use: CSV for spreadsheets, JSON for tooling, CSL-YAML for reference
// managers, and a SQLite snapshot for ad-hoc querying. Every format is
// a pure mapping of each record through the canonical field accessors;
// nothing here mutates or re-filters the collection.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// csvHeader defines the CSV column layout. Order is part of the export
// contract; downstream spreadsheets key on it.
var csvHeader = []string{
	"rank", "title", "authors", "year", "date", "journal", "source",
	"publication_type", "citations", "doi", "url", "fulltext_url", "topic_tags",
}

// WriteCSV writes one row per paper, fields derived through the
// canonical accessors so CSV output and on-screen display never
// disagree.
func WriteCSV(papers []types.Paper, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, p := range papers {
		year := ""
		if y, ok := p.Year(); ok {
			year = strconv.Itoa(y)
		}
		rank := ""
		if p.Rank != types.RankUnknown {
			rank = strconv.Itoa(p.Rank)
		}
		row := []string{
			rank,
			p.Title,
			p.FormatAuthors(),
			year,
			p.FormatDate(),
			p.Journal,
			p.Source,
			p.PublicationType,
			strconv.Itoa(p.Citations),
			p.DOI,
			p.BestURL(),
			p.FullText(),
			strings.Join(p.TopicTags(types.PerfectlyRelevant, types.HighlyRelevant, types.SomewhatRelevant), "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the collection as indented JSON.
func WriteJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

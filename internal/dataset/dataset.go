// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads a papertable JSON document and normalizes its
// loosely-typed records into canonical types.Paper values.
//
// The papertable shape is {columns: [{column_id, name, ...}], data:
// [{column_id: payload, ...}]}; the column whose name contains "Papers"
// holds the paper payloads. Shape normalization happens here exactly
// once: downstream packages never see the raw alternate shapes
// (authors as object-or-array, paper_urls as dict-or-array).
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// DefaultColumnHint is the substring used to locate the paper column
// when the configuration does not override it.
const DefaultColumnHint = "Papers"

// Column describes one column of the papertable document.
type Column struct {
	ColumnID string `json:"column_id"`
	Name     string `json:"name"`
}

// document is the top-level papertable shape. Row values stay raw until
// the paper column has been located.
type document struct {
	Columns []Column                     `json:"columns"`
	Data    []map[string]json.RawMessage `json:"data"`
}

// Load reads and parses the papertable document at path. A missing
// file, unparseable JSON, or absent paper column is a load failure
// surfaced to the caller; malformed individual records are not, they
// normalize to defaults.
func Load(path, columnHint string) ([]types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	papers, err := Parse(data, columnHint)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return papers, nil
}

// Parse decodes a papertable document from raw bytes, locates the paper
// column, and normalizes every record.
func Parse(data []byte, columnHint string) ([]types.Paper, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing papertable JSON: %w", err)
	}

	columnID, ok := PaperColumn(doc.Columns, columnHint)
	if !ok {
		return nil, fmt.Errorf("no paper column found (hint %q)", hintOrDefault(columnHint))
	}

	return Records(doc.Data, columnID), nil
}

// PaperColumn returns the column_id of the first column whose name
// contains the hint substring. Resolved once per load; the repeated
// per-record work only sees the resolved id.
func PaperColumn(columns []Column, hint string) (string, bool) {
	hint = hintOrDefault(hint)
	for _, col := range columns {
		if strings.Contains(col.Name, hint) {
			return col.ColumnID, true
		}
	}
	return "", false
}

// Records normalizes the paper payload of every row. Rows without a
// payload under columnID are skipped; payloads with missing or
// malformed fields normalize field-by-field to defaults.
func Records(rows []map[string]json.RawMessage, columnID string) []types.Paper {
	papers := make([]types.Paper, 0, len(rows))
	for _, row := range rows {
		raw, ok := row[columnID]
		if !ok || len(raw) == 0 {
			continue
		}
		paper, ok := normalize(raw)
		if !ok {
			continue
		}
		papers = append(papers, paper)
	}
	return papers
}

func hintOrDefault(hint string) string {
	if hint == "" {
		return DefaultColumnHint
	}
	return hint
}

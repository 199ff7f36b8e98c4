// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperdeck/pkg/types"
)

const sampleDoc = `{
	"columns": [
		{"column_id": "c1", "name": "Notes"},
		{"column_id": "c2", "name": "Research Papers"}
	],
	"data": [
		{"c2": {
			"title": "Antibody design with GNNs",
			"abstract": "Graph neural networks for antibody engineering.",
			"date": "2021-06-01",
			"source": "SciSpace",
			"publication_type": "Journal Article",
			"journal": {"display_name": "Nature Methods"},
			"authors": {"total": 7, "entries": [
				{"display_name": "Jane Doe"},
				{"display_name": ""},
				{"display_name": "Bob Roe"}
			]},
			"metrics": {"citations": {"total": 42}},
			"rank": 1,
			"doi": "10.1/abc",
			"paper_urls": {"data": {"Html": ["https://example.org/h"], "Pdf": ["https://example.org/p"]}}
		}},
		{"c2": {
			"title": "Legacy shapes",
			"authors": ["A One", "", "B Two"],
			"paper_urls": ["https://example.org/bare"],
			"metrics": {"citations": {"total": -3}}
		}},
		{"c1": {"note": "no paper payload here"}}
	]
}`

func TestParse(t *testing.T) {
	papers, err := Parse([]byte(sampleDoc), "")
	require.NoError(t, err)
	require.Len(t, papers, 2)

	p := papers[0]
	assert.Equal(t, "Antibody design with GNNs", p.Title)
	assert.Equal(t, "Nature Methods", p.Journal)
	assert.Equal(t, []string{"Jane Doe", "Bob Roe"}, p.Authors)
	assert.Equal(t, 7, p.AuthorTotal)
	assert.Equal(t, 42, p.Citations)
	assert.Equal(t, 1, p.Rank)
	assert.Equal(t, "https://example.org/h", p.BestURL())

	legacy := papers[1]
	assert.Equal(t, []string{"A One", "B Two"}, legacy.Authors)
	assert.Equal(t, 3, legacy.AuthorTotal)
	assert.Equal(t, 0, legacy.Citations, "negative citation totals clamp to zero")
	assert.Equal(t, types.RankUnknown, legacy.Rank)
	assert.Equal(t, "https://example.org/bare", legacy.BestURL())
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid JSON", `{"columns": [`},
		{"no paper column", `{"columns": [{"column_id": "c1", "name": "Notes"}], "data": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "")
			assert.Error(t, err)
		})
	}
}

func TestPaperColumn(t *testing.T) {
	columns := []Column{
		{ColumnID: "a", Name: "Summary"},
		{ColumnID: "b", Name: "Curated Papers (AI)"},
		{ColumnID: "c", Name: "More Papers"},
	}

	id, ok := PaperColumn(columns, "")
	require.True(t, ok)
	assert.Equal(t, "b", id, "first matching column wins")

	id, ok = PaperColumn(columns, "More")
	require.True(t, ok)
	assert.Equal(t, "c", id)

	_, ok = PaperColumn(columns, "Patents")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papers.papertable")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	papers, err := Load(path, "")
	require.NoError(t, err)
	assert.Len(t, papers, 2)

	_, err = Load(filepath.Join(dir, "missing.papertable"), "")
	assert.Error(t, err)
}

func TestNormalizeMalformedFields(t *testing.T) {
	// Every field the wrong shape at once; nothing may error, every
	// field degrades to its zero value.
	raw := []byte(`{
		"title": 42,
		"abstract": null,
		"date": {"oops": true},
		"authors": "not a list",
		"journal": "not an object",
		"metrics": {"citations": "many"},
		"relevance_metadata": [],
		"rank": "first",
		"paper_urls": 7
	}`)

	p, ok := normalize(raw)
	require.True(t, ok)
	assert.Equal(t, "", p.Title)
	assert.Equal(t, "", p.Abstract)
	assert.Equal(t, "", p.Date)
	assert.Empty(t, p.Authors)
	assert.Equal(t, "", p.Journal)
	assert.Equal(t, 0, p.Citations)
	assert.Empty(t, p.Judgments)
	assert.Equal(t, types.RankUnknown, p.Rank)
	assert.Empty(t, p.URLs)

	_, ok = normalize([]byte(`"just a string"`))
	assert.False(t, ok, "non-object payloads are skipped")
}

func TestNormalizeJudgmentHyphens(t *testing.T) {
	raw := []byte(`{
		"title": "T",
		"relevance_metadata": {"criteria_judgments": [
			{"criterion_name": "Antibody` + "‑" + `Antigen Binding", "relevance": "Highly Relevant"},
			{"criterion_name": "Antibody-Antigen Binding", "relevance": "Perfectly Relevant"},
			{"criterion_name": "Single` + "‐" + `Domain", "relevance": "Somewhat Relevant"}
		]}
	}`)

	p, ok := normalize(raw)
	require.True(t, ok)
	require.Len(t, p.Judgments, 3)
	assert.Equal(t, "Antibody-Antigen Binding", p.Judgments[0].Criterion)
	assert.Equal(t, "Antibody-Antigen Binding", p.Judgments[1].Criterion)
	assert.Equal(t, "Single-Domain", p.Judgments[2].Criterion)

	// After normalization the two glyph spellings dedupe to one tag.
	tags := p.TopicTags(types.PerfectlyRelevant, types.HighlyRelevant)
	assert.Equal(t, []string{"Antibody-Antigen Binding"}, tags)
}

func TestNormalizeCitationShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"normal", `{"metrics": {"citations": {"total": 17}}}`, 17},
		{"float total", `{"metrics": {"citations": {"total": 17.9}}}`, 17},
		{"missing metrics", `{}`, 0},
		{"null total", `{"metrics": {"citations": {"total": null}}}`, 0},
		{"negative", `{"metrics": {"citations": {"total": -5}}}`, 0},
		{"not a dict", `{"metrics": 3}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := normalize([]byte(tt.raw))
			require.True(t, ok)
			assert.Equal(t, tt.want, p.Citations)
		})
	}
}

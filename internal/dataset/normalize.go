// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// hyphenNormalizer folds the Unicode hyphen glyphs that appear
// inconsistently in curated criterion names down to ASCII "-", so that
// tag-set deduplication and facet counting see one spelling.
var hyphenNormalizer = strings.NewReplacer("‐", "-", "‑", "-")

// normalize converts one raw paper payload into the canonical Paper.
// Every field degrades independently: a wrong-shaped sub-field yields
// that field's zero value, never an error. Only a payload that is not a
// JSON object at all is rejected.
func normalize(raw json.RawMessage) (types.Paper, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return types.Paper{}, false
	}

	p := types.Paper{
		Title:            asString(fields["title"]),
		Abstract:         asString(fields["abstract"]),
		TLDR:             asString(fields["tldr"]),
		RelevanceSummary: asString(fields["relevance_summary"]),
		Date:             asString(fields["date"]),
		Source:           asString(fields["source"]),
		PublicationType:  asString(fields["publication_type"]),
		DOI:              asString(fields["doi"]),
		Link:             asString(fields["link"]),
		FullTextURL:      asString(fields["fulltext_url"]),
		Journal:          journalName(fields["journal"]),
		Citations:        citationCount(fields["metrics"]),
		Judgments:        judgments(fields["relevance_metadata"]),
		Rank:             rank(fields["rank"]),
	}
	p.Authors, p.AuthorTotal = authors(fields["authors"])
	p.URLs = paperURLs(fields["paper_urls"])
	return p, true
}

// asString decodes a JSON string, returning "" for anything else.
func asString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// journalName reads journal.display_name.
func journalName(raw json.RawMessage) string {
	var j struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return ""
	}
	return j.DisplayName
}

// citationCount reads metrics.citations.total, returning 0 when the
// chain is absent, the wrong shape, non-numeric, NaN, or negative.
func citationCount(raw json.RawMessage) int {
	var m struct {
		Citations struct {
			Total *float64 `json:"total"`
		} `json:"citations"`
	}
	if err := json.Unmarshal(raw, &m); err != nil || m.Citations.Total == nil {
		return 0
	}
	total := *m.Citations.Total
	if math.IsNaN(total) || total <= 0 {
		return 0
	}
	return int(total)
}

// authors accepts both author shapes: the nested object
// {total, entries: [{display_name}]} and the legacy bare sequence of
// name strings. Empty names are dropped here so display and matching
// never re-filter them.
func authors(raw json.RawMessage) (names []string, total int) {
	var nested struct {
		Total   *int `json:"total"`
		Entries []struct {
			DisplayName string `json:"display_name"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && (nested.Total != nil || nested.Entries != nil) {
		for _, e := range nested.Entries {
			if name := strings.TrimSpace(e.DisplayName); name != "" {
				names = append(names, name)
			}
		}
		if nested.Total != nil && *nested.Total > 0 {
			total = *nested.Total
		} else {
			total = len(names)
		}
		return names, total
	}

	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		for _, name := range legacy {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		return names, len(legacy)
	}

	return nil, 0
}

// paperURLs accepts paper_urls as {data: {kind: [urls]}}, as
// {data: [urls]}, or as a bare [urls]. Bare sequences land under the
// "Unknown" kind, which keeps BestURL's fixed priority scan correct:
// with no other kinds present the first element still wins.
func paperURLs(raw json.RawMessage) map[string][]string {
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return urlData(wrapped.Data)
	}
	return urlData(raw)
}

func urlData(raw json.RawMessage) map[string][]string {
	var kinds map[string][]string
	if err := json.Unmarshal(raw, &kinds); err == nil {
		return kinds
	}
	var bare []string
	if err := json.Unmarshal(raw, &bare); err == nil && len(bare) > 0 {
		return map[string][]string{"Unknown": bare}
	}
	return nil
}

// judgments reads relevance_metadata.criteria_judgments, normalizing
// criterion-name hyphens on the way in.
func judgments(raw json.RawMessage) []types.Judgment {
	var meta struct {
		CriteriaJudgments []struct {
			CriterionName string `json:"criterion_name"`
			Relevance     string `json:"relevance"`
		} `json:"criteria_judgments"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil
	}
	var out []types.Judgment
	for _, cj := range meta.CriteriaJudgments {
		name := hyphenNormalizer.Replace(strings.TrimSpace(cj.CriterionName))
		if name == "" {
			continue
		}
		out = append(out, types.Judgment{
			Criterion: name,
			Relevance: types.RelevanceLevel(cj.Relevance),
		})
	}
	return out
}

// rank reads the precomputed relevance rank, tolerating a float-encoded
// value. Missing or malformed ranks become the worst-rank sentinel.
func rank(raw json.RawMessage) int {
	var r *float64
	if err := json.Unmarshal(raw, &r); err != nil || r == nil || math.IsNaN(*r) {
		return types.RankUnknown
	}
	return int(*r)
}

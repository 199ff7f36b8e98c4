// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paperdeck/internal/query"
	"github.com/pdiddy/paperdeck/pkg/types"
)

func TestSummarize(t *testing.T) {
	papers := []types.Paper{
		{
			PublicationType: "Journal Article",
			Journal:         "Nature Methods",
			Judgments: []types.Judgment{
				{Criterion: "Affinity Maturation", Relevance: types.PerfectlyRelevant},
				{Criterion: "Epitope Mapping", Relevance: types.HighlyRelevant},
			},
		},
		{
			PublicationType: "Preprint",
			Journal:         "bioRxiv",
			Judgments: []types.Judgment{
				{Criterion: "Affinity Maturation", Relevance: types.HighlyRelevant},
			},
		},
		{
			// No type, no journal: contributes nothing to those sets.
			Judgments: []types.Judgment{
				{Criterion: "Affinity Maturation", Relevance: types.SomewhatRelevant},
			},
		},
	}

	facets := Summarize(papers)

	if want := []string{"Journal Article", "Preprint"}; !reflect.DeepEqual(facets.PublicationTypes, want) {
		t.Errorf("PublicationTypes = %v, want %v", facets.PublicationTypes, want)
	}
	if want := []string{"Nature Methods", "bioRxiv"}; !reflect.DeepEqual(facets.Journals, want) {
		t.Errorf("Journals = %v, want %v", facets.Journals, want)
	}
	if facets.TagCounts["Affinity Maturation"] != 2 {
		t.Errorf("Affinity Maturation count = %d, want 2 (Somewhat Relevant not counted)",
			facets.TagCounts["Affinity Maturation"])
	}
	if facets.TagCounts["Epitope Mapping"] != 1 {
		t.Errorf("Epitope Mapping count = %d, want 1", facets.TagCounts["Epitope Mapping"])
	}
}

// A Somewhat Relevant judgment matches the tag filter but is absent
// from the tag counts. Inherited asymmetry, verified so nobody "fixes"
// it by accident.
func TestTagFilterCountAsymmetry(t *testing.T) {
	papers := []types.Paper{{
		Title: "somewhat tagged",
		Judgments: []types.Judgment{
			{Criterion: "Affinity Maturation", Relevance: types.SomewhatRelevant},
		},
	}}

	results := Run(papers, query.Criteria{TopicTags: []string{"Affinity Maturation"}}, SortRelevance)
	if len(results) != 1 {
		t.Fatalf("tag filter matched %d papers, want 1", len(results))
	}

	facets := Summarize(papers)
	if count := facets.TagCounts["Affinity Maturation"]; count != 0 {
		t.Errorf("tag count = %d, want 0", count)
	}
}

func TestFacetsTagsOrder(t *testing.T) {
	f := Facets{TagCounts: map[string]int{
		"Beta":  3,
		"Alpha": 3,
		"Gamma": 7,
	}}
	want := []string{"Gamma", "Alpha", "Beta"}
	if got := f.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

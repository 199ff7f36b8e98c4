// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"sort"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// countLevels are the relevance levels that contribute to facet tag
// counts. Narrower than topic-tag filtering, which also admits Somewhat
// Relevant: a paper judged only Somewhat Relevant for a criterion
// matches that tag filter but does not add to the tag's count. The
// asymmetry is inherited source behavior, kept deliberately.
var countLevels = []types.RelevanceLevel{
	types.PerfectlyRelevant,
	types.HighlyRelevant,
}

// Facets holds the distinct filterable value sets derived from a
// collection, used to populate filter choices and browse-by-topic
// shortcuts.
type Facets struct {
	// PublicationTypes and Journals are sorted distinct non-empty values.
	PublicationTypes []string `json:"publication_types"`
	Journals         []string `json:"journals"`

	// TagCounts maps each topic tag to the number of papers judged
	// Perfectly or Highly Relevant for it.
	TagCounts map[string]int `json:"tag_counts"`
}

// Summarize collects facets in a single pass over the collection.
// Re-running over an unchanged collection yields the identical result.
func Summarize(papers []types.Paper) Facets {
	typeSet := make(map[string]bool)
	journalSet := make(map[string]bool)
	tagCounts := make(map[string]int)

	for _, p := range papers {
		if p.PublicationType != "" {
			typeSet[p.PublicationType] = true
		}
		if p.Journal != "" {
			journalSet[p.Journal] = true
		}
		for _, tag := range p.TopicTags(countLevels...) {
			tagCounts[tag]++
		}
	}

	return Facets{
		PublicationTypes: sortedKeys(typeSet),
		Journals:         sortedKeys(journalSet),
		TagCounts:        tagCounts,
	}
}

// Tags returns the counted tags sorted by descending count, ties
// broken alphabetically, for stable display.
func (f Facets) Tags() []string {
	tags := make([]string, 0, len(f.TagCounts))
	for tag := range f.TagCounts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if f.TagCounts[tags[i]] != f.TagCounts[tags[j]] {
			return f.TagCounts[tags[i]] > f.TagCounts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdeck/internal/browse"
	"github.com/pdiddy/paperdeck/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search and filter the paper dataset",
	Long: `Search runs the query engine over the dataset. The free-text query
supports space-separated required terms, OR between alternatives, and
double-quoted phrases. Structured filters combine with AND across axes;
filters left unset impose no constraint.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("query", "q", "", "free-text query (terms, OR, \"phrases\")")
	searchCmd.Flags().Int("year-from", 0, "earliest publication year (inclusive)")
	searchCmd.Flags().Int("year-to", 0, "latest publication year (inclusive)")
	searchCmd.Flags().Int("min-citations", 0, "minimum citation count")
	searchCmd.Flags().StringSlice("source", nil, "filter by source (substring, repeatable)")
	searchCmd.Flags().StringSlice("type", nil, "filter by publication type (exact, repeatable)")
	searchCmd.Flags().StringSlice("tag", nil, "filter by topic tag (repeatable)")
	searchCmd.Flags().String("author", "", "filter by author name substring")
	searchCmd.Flags().StringSlice("journal", nil, "filter by journal (exact, repeatable)")
	searchCmd.Flags().String("sort", "", "sort key: relevance, citations, newest, oldest, title")
	searchCmd.Flags().Int("page", 1, "result page to show")
	searchCmd.Flags().Int("page-size", 0, "papers per page (default from config)")
	searchCmd.Flags().Bool("all", false, "show all results without pagination")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

// criteriaFromFlags assembles the per-invocation filter criteria. The
// CLI owns this session state; the core never reads ambient state.
func criteriaFromFlags(cmd *cobra.Command) query.Criteria {
	text, _ := cmd.Flags().GetString("query")
	yearFrom, _ := cmd.Flags().GetInt("year-from")
	yearTo, _ := cmd.Flags().GetInt("year-to")
	minCitations, _ := cmd.Flags().GetInt("min-citations")
	sources, _ := cmd.Flags().GetStringSlice("source")
	pubTypes, _ := cmd.Flags().GetStringSlice("type")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	author, _ := cmd.Flags().GetString("author")
	journals, _ := cmd.Flags().GetStringSlice("journal")

	return query.Criteria{
		Text:             text,
		YearFrom:         yearFrom,
		YearTo:           yearTo,
		MinCitations:     minCitations,
		Sources:          sources,
		PublicationTypes: pubTypes,
		TopicTags:        tags,
		AuthorSubstring:  author,
		Journals:         journals,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	papers, err := loadPapers(cmd, cfg)
	if err != nil {
		return err
	}

	sortName, _ := cmd.Flags().GetString("sort")
	if sortName == "" {
		sortName = cfg.Browse.DefaultSort
	}
	sortKey, err := browse.ParseSortKey(sortName)
	if err != nil {
		return err
	}

	results := browse.Run(papers, criteriaFromFlags(cmd), sortKey)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return browse.FormatJSON(results, os.Stdout)
	}

	showAll, _ := cmd.Flags().GetBool("all")
	if showAll {
		browse.FormatTable(results, 0, os.Stdout)
		fmt.Fprintf(os.Stdout, "\n%d papers\n", len(results))
		return nil
	}

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = cfg.Browse.PageSize
	}

	window, info := browse.Page(results, page, pageSize)
	browse.FormatTable(window, info.Start-1, os.Stdout)
	if info.Total > 0 {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, info.Summary())
	}
	return nil
}

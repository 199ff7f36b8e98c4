// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdeck/internal/browse"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics for the (filtered) dataset",
	Long: `Stats reports paper count, total and average citations, and the
publication year range. All search filters apply, so the numbers describe
exactly the set a matching search would return.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringP("query", "q", "", "free-text query (terms, OR, \"phrases\")")
	statsCmd.Flags().Int("year-from", 0, "earliest publication year (inclusive)")
	statsCmd.Flags().Int("year-to", 0, "latest publication year (inclusive)")
	statsCmd.Flags().Int("min-citations", 0, "minimum citation count")
	statsCmd.Flags().StringSlice("source", nil, "filter by source (substring, repeatable)")
	statsCmd.Flags().StringSlice("type", nil, "filter by publication type (exact, repeatable)")
	statsCmd.Flags().StringSlice("tag", nil, "filter by topic tag (repeatable)")
	statsCmd.Flags().String("author", "", "filter by author name substring")
	statsCmd.Flags().StringSlice("journal", nil, "filter by journal (exact, repeatable)")
	statsCmd.Flags().Bool("json", false, "output stats as JSON")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	papers, err := loadPapers(cmd, cfg)
	if err != nil {
		return err
	}

	results := browse.Run(papers, criteriaFromFlags(cmd), browse.SortRelevance)
	stats := browse.Collect(results)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Papers:          %d\n", stats.Total)
	fmt.Printf("Total citations: %d\n", stats.TotalCitations)
	fmt.Printf("Avg citations:   %.1f\n", stats.AvgCitations)
	if stats.YearMin > 0 {
		fmt.Printf("Year range:      %d-%d\n", stats.YearMin, stats.YearMax)
	} else {
		fmt.Printf("Year range:      N/A\n")
	}
	return nil
}

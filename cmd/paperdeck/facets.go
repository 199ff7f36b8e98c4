// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdeck/internal/browse"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the dataset's filterable value sets",
	Long: `Facets summarizes the distinct publication types, journals, and topic
tags present in the dataset, with per-tag paper counts. Tag counts include
only Perfectly and Highly Relevant judgments; Somewhat Relevant judgments
still match the tag filter but are not counted here.`,
	RunE: runFacets,
}

func init() {
	facetsCmd.Flags().Bool("json", false, "output facets as JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	papers, err := loadPapers(cmd, cfg)
	if err != nil {
		return err
	}

	facets := browse.Summarize(papers)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(facets)
	}

	fmt.Println("Publication types:")
	for _, t := range facets.PublicationTypes {
		fmt.Printf("  %s\n", t)
	}

	fmt.Println("\nJournals:")
	for _, j := range facets.Journals {
		fmt.Printf("  %s\n", j)
	}

	fmt.Println("\nTopic tags:")
	for _, tag := range facets.Tags() {
		fmt.Printf("  %-50s %d\n", tag, facets.TagCounts[tag])
	}
	return nil
}

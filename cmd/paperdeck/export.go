// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdeck/internal/browse"
	"github.com/pdiddy/paperdeck/internal/export"
	"github.com/pdiddy/paperdeck/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the (filtered) dataset to a file",
	Long: `Export serializes the filtered, sorted result set. Formats: csv for
spreadsheets, json for tooling, csl for reference managers (CSL-YAML),
and sqlite for a queryable snapshot with a full-text index. All search
filters and sort keys apply.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("query", "q", "", "free-text query (terms, OR, \"phrases\")")
	exportCmd.Flags().Int("year-from", 0, "earliest publication year (inclusive)")
	exportCmd.Flags().Int("year-to", 0, "latest publication year (inclusive)")
	exportCmd.Flags().Int("min-citations", 0, "minimum citation count")
	exportCmd.Flags().StringSlice("source", nil, "filter by source (substring, repeatable)")
	exportCmd.Flags().StringSlice("type", nil, "filter by publication type (exact, repeatable)")
	exportCmd.Flags().StringSlice("tag", nil, "filter by topic tag (repeatable)")
	exportCmd.Flags().String("author", "", "filter by author name substring")
	exportCmd.Flags().StringSlice("journal", nil, "filter by journal (exact, repeatable)")
	exportCmd.Flags().String("sort", "", "sort key: relevance, citations, newest, oldest, title")
	exportCmd.Flags().String("format", "", "export format: csv, json, csl, sqlite (default from config)")
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout; required for sqlite)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Export.Format
	}
	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" && filepath.Dir(outPath) == "." && cfg.Export.OutputDir != "" {
		outPath = filepath.Join(cfg.Export.OutputDir, outPath)
	}

	if format == "sqlite" {
		if outPath == "" {
			return fmt.Errorf("sqlite export requires --out")
		}
		if err := export.WriteSQLite(cmd.Context(), results, outPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d papers to %s\n", len(results), outPath)
		return nil
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	if err := writeFormat(results, format, w); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Exported %d papers to %s\n", len(results), outPath)
	}
	return nil
}

func writeFormat(papers []types.Paper, format string, w io.Writer) error {
	switch format {
	case "csv":
		return export.WriteCSV(papers, w)
	case "json":
		return export.WriteJSON(papers, w)
	case "csl":
		return export.WriteCSL(papers, w)
	default:
		return fmt.Errorf("unknown export format %q (valid: csv, json, csl, sqlite)", format)
	}
}

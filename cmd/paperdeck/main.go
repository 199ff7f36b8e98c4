// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperdeck CLI, a browser over
// a curated academic paper dataset. Subcommands cover each surface:
// search, facets, stats, export, and the interactive browse TUI. The
// dataset is loaded once per invocation and treated as read-only.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperdeck/internal/browse"
	"github.com/pdiddy/paperdeck/internal/dataset"
	"github.com/pdiddy/paperdeck/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperdeck CLI.
var rootCmd = &cobra.Command{
	Use:   "paperdeck",
	Short: "Browse, filter, and export a curated academic paper dataset",
	Long: `paperdeck is a query engine over a static, pre-curated collection of
academic paper records. It loads one papertable JSON document and lets you
search it with a small boolean query language, filter on structured axes
(year, citations, source, publication type, topic tag, author, journal),
sort, paginate, and export the result.

The dataset is never mutated; every command is a pure read.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperdeck.yaml or ~/.config/paperdeck/config.yaml)")
	rootCmd.PersistentFlags().String("dataset", "", "path to the papertable JSON dataset (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperdeck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperdeck"))
		}
	}

	viper.SetEnvPrefix("PAPERDECK")
	viper.AutomaticEnv()

	viper.SetDefault("dataset.column_hint", dataset.DefaultColumnHint)
	viper.SetDefault("browse.page_size", browse.DefaultPageSize)
	viper.SetDefault("browse.default_sort", string(browse.SortRelevance))
	viper.SetDefault("export.format", "csv")
	viper.SetDefault("ui.alt_screen", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig materializes the typed configuration from viper.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Dataset: types.DatasetConfig{
			Path:       viper.GetString("dataset.path"),
			ColumnHint: viper.GetString("dataset.column_hint"),
		},
		Browse: types.BrowseConfig{
			PageSize:    viper.GetInt("browse.page_size"),
			DefaultSort: viper.GetString("browse.default_sort"),
		},
		Export: types.ExportConfig{
			OutputDir: viper.GetString("export.output_dir"),
			Format:    viper.GetString("export.format"),
		},
		UI: types.UIConfig{
			AltScreen: viper.GetBool("ui.alt_screen"),
		},
	}
}

// loadPapers resolves the dataset path (flag over config) and loads the
// collection. A load failure is the one user-visible failure mode;
// malformed individual records degrade silently to defaults.
func loadPapers(cmd *cobra.Command, cfg types.AppConfig) ([]types.Paper, error) {
	path, _ := cmd.Flags().GetString("dataset")
	if path == "" {
		path = cfg.Dataset.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no dataset configured: pass --dataset or set dataset.path in paperdeck.yaml")
	}
	return dataset.Load(path, cfg.Dataset.ColumnHint)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

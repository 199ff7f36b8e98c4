// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdeck/internal/browse"
	"github.com/pdiddy/paperdeck/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the dataset interactively",
	Long: `Browse opens a terminal UI over the dataset: a sortable paper list
with incremental search and a detail pane with query-term highlighting.
The dataset stays read-only; quitting discards the session's filters.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().Bool("no-alt-screen", false, "disable the alternate screen buffer")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	papers, err := loadPapers(cmd, cfg)
	if err != nil {
		return err
	}

	sortKey, err := browse.ParseSortKey(cfg.Browse.DefaultSort)
	if err != nil {
		sortKey = browse.SortRelevance
	}

	noAltScreen, _ := cmd.Flags().GetBool("no-alt-screen")
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen && !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(
		tui.New(tui.Config{
			Papers:      papers,
			PageSize:    cfg.Browse.PageSize,
			DefaultSort: sortKey,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browse UI: %w", err)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DatasetConfig holds settings for locating and loading the paper dataset.
type DatasetConfig struct {
	// Path is the papertable JSON document to load.
	Path string `json:"path" yaml:"path"`

	// ColumnHint is the substring that identifies the paper column by
	// name (default "Papers").
	ColumnHint string `json:"column_hint,omitempty" yaml:"column_hint,omitempty"`
}

// BrowseConfig holds settings for the search and browse surfaces.
type BrowseConfig struct {
	// PageSize is the number of papers shown per page (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`

	// DefaultSort is the sort key used when none is requested:
	// relevance, citations, newest, oldest, or title.
	DefaultSort string `json:"default_sort" yaml:"default_sort"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutputDir is the directory export files are written into when the
	// caller gives a bare filename.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the default export format: csv, json, csl, or sqlite.
	Format string `json:"format" yaml:"format"`
}

// UIConfig holds settings for the interactive browse TUI.
type UIConfig struct {
	// AltScreen controls whether the TUI uses the terminal's alternate
	// screen buffer.
	AltScreen bool `json:"alt_screen" yaml:"alt_screen"`
}

// AppConfig groups all stage configurations for the browser.
type AppConfig struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset"`
	Browse  BrowseConfig  `json:"browse" yaml:"browse"`
	Export  ExportConfig  `json:"export" yaml:"export"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
}

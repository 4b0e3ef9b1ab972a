// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderConfig holds settings for producing output documents.
type RenderConfig struct {
	// OutputDir receives the merged packing-slip PDF and the pull sheet.
	// It is created when absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// CompanyName appears on each packing slip's thank-you line. Required;
	// resolved from the --company-name flag, the PACKSLIP_COMPANY_NAME
	// environment variable, the config file, or the settings directory.
	CompanyName string `json:"company_name" yaml:"company_name"`

	// Marketplace labels the thank-you line and output file names.
	Marketplace Marketplace `json:"marketplace" yaml:"marketplace"`

	// ArchiveSlips copies each per-order packing slip into OutputDir in
	// addition to the merged document.
	ArchiveSlips bool `json:"archive_slips" yaml:"archive_slips"`
}

// HistoryConfig holds settings for the optional order-history database.
type HistoryConfig struct {
	// DBPath is the SQLite database file. Empty disables history recording.
	DBPath string `json:"db_path" yaml:"db_path"`
}

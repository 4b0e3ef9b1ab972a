// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings loads seller settings from a directory of plain-text
// files. Each file in the directory holds one setting: the filename is
// the setting name and the file contents (trimmed) are the value.
//
// Supported setting files: company-name, default-marketplace, output-dir.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Setting file names recognized by the pack command.
const (
	KeyCompanyName        = "company-name"
	KeyDefaultMarketplace = "default-marketplace"
	KeyOutputDir          = "output-dir"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading settings directory %s: %w", dir, err)
	}

	values := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read setting %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			values[name] = value
		}
	}

	return values, nil
}

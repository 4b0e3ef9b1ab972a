// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// mergePDFs concatenates the given PDF files, in slice order, into a
// single document at outPath.
func mergePDFs(paths []string, outPath string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no slip files to merge")
	}
	return api.MergeCreateFile(paths, outPath, false, nil)
}

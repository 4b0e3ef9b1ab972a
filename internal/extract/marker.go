// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"

	"github.com/grademint/packslip/pkg/types"
)

// markerPattern matches the per-page order marker, e.g.
// "OrderNumber:ABC123-XYZ Page1of2". Page and total must be numeric.
var markerPattern = regexp.MustCompile(`OrderNumber:(\S+)\s+Page(\d+)of(\d+)`)

// Marker scans page text for the order/page marker. pdfPage is the 1-based
// index of the page within the source document. Pages without a well-formed
// marker (trailing pages, cover sheets) report ok == false.
func Marker(text string, pdfPage int) (types.PageMarker, bool) {
	m := markerPattern.FindStringSubmatch(text)
	if m == nil {
		return types.PageMarker{}, false
	}
	page, err := strconv.Atoi(m[2])
	if err != nil {
		return types.PageMarker{}, false
	}
	total, err := strconv.Atoi(m[3])
	if err != nil {
		return types.PageMarker{}, false
	}
	return types.PageMarker{
		OrderNumber: m[1],
		Page:        page,
		TotalPages:  total,
		PDFPage:     pdfPage,
	}, true
}

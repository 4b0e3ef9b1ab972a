// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces the output documents: per-order packing slips
// merged into one PDF, and the aggregated pull sheet. Both renderers are
// sized for 4x6in thermal printer stock and share the drawing primitives
// of Doc by composition.
package render

import (
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry and type sizes of the thermal slip layout, in inches and
// points respectively.
const (
	pageWidth        = 4.0
	pageHeight       = 6.0
	horizontalMargin = 0.2
	topMargin        = 0.1
	bottomMargin     = 0.2
	lineHeight       = 0.1

	standardFontSize    = 6
	orderHeaderFontSize = 10
	shipToFontSize      = 12
)

// fontFamily is a core font; nothing is embedded so slips stay small.
const fontFamily = "Arial"

// now is replaced in tests to pin output file names.
var now = time.Now

// timestamp renders the clock in the MMDDYYYY-HHMM form the output file
// names carry.
func timestamp() string {
	return now().Format("01022006-1504")
}

// Doc wraps one PDF document with the drawing primitives the renderers
// share.
type Doc struct {
	pdf *fpdf.Fpdf
}

// NewDoc returns a thermal-sized portrait document with auto page breaks.
func NewDoc() *Doc {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(horizontalMargin, topMargin, horizontalMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AliasNbPages("")
	return &Doc{pdf: pdf}
}

// SetFont selects the shared family with the given style ("", "B", "I")
// and size in points.
func (d *Doc) SetFont(style string, size float64) {
	d.pdf.SetFont(fontFamily, style, size)
}

// TextLine prints one full-width line and advances to the next.
func (d *Doc) TextLine(text string) {
	d.pdf.CellFormat(0, lineHeight, text, "", 1, "L", false, 0, "")
}

// DashedRule draws a dashed horizontal line across the printable width at
// the current position.
func (d *Doc) DashedRule() {
	d.pdf.SetLineWidth(0.01)
	d.pdf.SetDashPattern([]float64{0.03, 0.05}, 0)
	left, _, right, _ := d.pdf.GetMargins()
	w, _ := d.pdf.GetPageSize()
	y := d.pdf.GetY()
	d.pdf.Line(left, y, w-right, y)
	d.pdf.SetDashPattern([]float64{}, 0)
}

// HeaderRow prints bordered table header cells in bold.
func (d *Doc) HeaderRow(widths []float64, aligns []string, labels []string) {
	d.SetFont("B", standardFontSize)
	for i, label := range labels {
		d.pdf.CellFormat(widths[i], lineHeight, label, "1", 0, aligns[i], false, 0, "")
	}
	d.pdf.Ln(lineHeight)
	d.SetFont("", standardFontSize)
}

// rowCell is one cell of a table row. Bold cells re-select the font for
// emphasis; the wrap cell may span multiple lines and sets the row height.
type rowCell struct {
	text string
	bold bool
}

// TableRow prints one bordered row. The cell at wrapCol wraps onto as many
// lines as it needs; the other cells stretch to the resulting row height.
func (d *Doc) TableRow(widths []float64, aligns []string, cells []rowCell, wrapCol int, fill bool) {
	n := len(d.pdf.SplitText(cells[wrapCol].text, widths[wrapCol]))
	if n == 0 {
		n = 1
	}
	rowH := lineHeight * float64(n)

	x0, y0 := d.pdf.GetXY()
	x := x0
	for i, cell := range cells {
		style := ""
		if cell.bold {
			style = "B"
		}
		d.SetFont(style, standardFontSize)

		if i == wrapCol {
			d.pdf.SetXY(x, y0)
			d.pdf.MultiCell(widths[i], lineHeight, cell.text, "1", aligns[i], fill)
		} else {
			d.pdf.SetXY(x, y0)
			d.pdf.CellFormat(widths[i], rowH, cell.text, "1", 0, aligns[i], fill, 0, "")
		}
		x += widths[i]
	}
	d.SetFont("", standardFontSize)
	d.pdf.SetXY(x0, y0+rowH)
}

// WrappedLines reports how many lines text needs at the given width.
func (d *Doc) WrappedLines(text string, width float64) int {
	return len(d.pdf.SplitText(text, width))
}

// Output writes the document to path and releases it.
func (d *Doc) Output(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

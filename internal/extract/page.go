// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls structured fragments out of a single PDF page:
// the order/page marker, the ship-to block, the sale-information block,
// and the ruled line-item table. Extractors operate on positioned text
// runs and rectangles rather than on a PDF reader, so tests can feed
// synthetic pages.
package extract

import (
	"sort"
	"strings"
)

// Run is one positioned text run from a page's content stream. Coordinates
// are PDF points with the origin at the bottom-left corner (y grows upward).
type Run struct {
	S    string
	X    float64
	Y    float64
	W    float64 // advance width
	Size float64 // font size
}

// Box is an axis-aligned region in PDF coordinates.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Contains reports whether the point (x, y) lies within the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Page is the extractable content of one physical PDF page.
type Page struct {
	Runs  []Run
	Rects []Box // rectangles drawn on the page (table rulings and borders)
}

// lineYTolerance groups runs whose baselines differ by no more than this
// many points onto the same text line.
const lineYTolerance = 2.0

// Text renders the page's runs as plain text, one line per baseline group,
// top to bottom.
func (p Page) Text() string {
	return runsToText(p.Runs)
}

// RegionText renders only the runs whose origin falls inside the box.
func (p Page) RegionText(b Box) string {
	var inside []Run
	for _, r := range p.Runs {
		if b.Contains(r.X, r.Y) {
			inside = append(inside, r)
		}
	}
	return runsToText(inside)
}

// runsToText groups runs into baseline lines and joins them with newlines.
// Within a line, runs separated by more than a quarter of the font size
// get a space between them.
func runsToText(runs []Run) string {
	if len(runs) == 0 {
		return ""
	}

	sorted := make([]Run, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines [][]Run
	current := []Run{sorted[0]}
	for _, r := range sorted[1:] {
		if current[len(current)-1].Y-r.Y > lineYTolerance {
			lines = append(lines, current)
			current = []Run{r}
		} else {
			current = append(current, r)
		}
	}
	lines = append(lines, current)

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })
		b.WriteString(joinRuns(line))
	}
	return b.String()
}

// joinRuns concatenates runs left to right, inserting a space at word gaps.
func joinRuns(line []Run) string {
	var b strings.Builder
	for i, r := range line {
		if i > 0 {
			prev := line[i-1]
			if r.X-(prev.X+prev.W) > wordGap(prev.Size) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(r.S)
	}
	return b.String()
}

func wordGap(size float64) float64 {
	if size <= 0 {
		return 1.0
	}
	g := size * 0.25
	if g < 1.0 {
		g = 1.0
	}
	return g
}

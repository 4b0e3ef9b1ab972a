// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"
	"strings"
)

// TableSettings control ruling-line table detection.
type TableSettings struct {
	// IntersectionTolerance merges ruling coordinates closer than this many
	// points into one grid boundary.
	IntersectionTolerance float64

	// TextTolerance lets a text run sit this far outside a cell's bounds
	// and still be assigned to it.
	TextTolerance float64

	// MinLineSpan is the minimum extent a rectangle must cover along an
	// axis for its edges to count as rulings on that axis.
	MinLineSpan float64
}

// DefaultTableSettings mirror the tolerances the vendor layout was tuned
// against.
func DefaultTableSettings() TableSettings {
	return TableSettings{
		IntersectionTolerance: 5,
		TextTolerance:         2,
		MinLineSpan:           8,
	}
}

// Table detects the ruled table on a page and returns its cell text, rows
// top to bottom and columns left to right. Detection is driven by the
// rectangles the page draws, not by whitespace: thin rectangles are rulings,
// larger ones (cell borders) contribute their four edges. Pages without at
// least a 1x1 ruled grid return nil.
func Table(p Page, s TableSettings) [][]string {
	xs := clusterCoords(verticalRulings(p.Rects, s), s.IntersectionTolerance)
	ys := clusterCoords(horizontalRulings(p.Rects, s), s.IntersectionTolerance)
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}
	sort.Float64s(xs)
	// Row boundaries run top to bottom.
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	rows := len(ys) - 1
	cols := len(xs) - 1
	cells := make([][][]Run, rows)
	for i := range cells {
		cells[i] = make([][]Run, cols)
	}

	for _, r := range p.Runs {
		cx := r.X + r.W/2
		cy := r.Y + r.Size*0.3 // approximate glyph center above the baseline
		col := columnIndex(xs, cx, s.TextTolerance)
		row := rowIndex(ys, cy, s.TextTolerance)
		if col < 0 || row < 0 {
			continue
		}
		cells[row][col] = append(cells[row][col], r)
	}

	out := make([][]string, rows)
	for i := range cells {
		out[i] = make([]string, cols)
		for j := range cells[i] {
			out[i][j] = cellText(cells[i][j])
		}
	}
	return out
}

// cellText renders a cell's runs as a single line; wrapped text inside a
// cell is joined with spaces.
func cellText(runs []Run) string {
	text := runsToText(runs)
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}

// verticalRulings collects candidate x coordinates of vertical grid lines.
func verticalRulings(rects []Box, s TableSettings) []float64 {
	var xs []float64
	for _, r := range rects {
		w, h := r.X1-r.X0, r.Y1-r.Y0
		if h < s.MinLineSpan {
			continue
		}
		if w <= s.IntersectionTolerance {
			xs = append(xs, (r.X0+r.X1)/2)
		} else {
			xs = append(xs, r.X0, r.X1)
		}
	}
	return xs
}

// horizontalRulings collects candidate y coordinates of horizontal grid lines.
func horizontalRulings(rects []Box, s TableSettings) []float64 {
	var ys []float64
	for _, r := range rects {
		w, h := r.X1-r.X0, r.Y1-r.Y0
		if w < s.MinLineSpan {
			continue
		}
		if h <= s.IntersectionTolerance {
			ys = append(ys, (r.Y0+r.Y1)/2)
		} else {
			ys = append(ys, r.Y0, r.Y1)
		}
	}
	return ys
}

// clusterCoords merges coordinates closer than tol, returning one value
// (the cluster mean) per grid boundary.
func clusterCoords(coords []float64, tol float64) []float64 {
	if len(coords) == 0 {
		return nil
	}
	sort.Float64s(coords)

	var out []float64
	start := 0
	for i := 1; i <= len(coords); i++ {
		if i == len(coords) || coords[i]-coords[i-1] > tol {
			sum := 0.0
			for _, c := range coords[start:i] {
				sum += c
			}
			out = append(out, sum/float64(i-start))
			start = i
		}
	}
	return out
}

// columnIndex locates cx within the ascending x boundaries, or -1.
func columnIndex(xs []float64, cx, tol float64) int {
	if cx < xs[0]-tol || cx > xs[len(xs)-1]+tol {
		return -1
	}
	for i := 0; i < len(xs)-1; i++ {
		if cx <= xs[i+1] {
			return i
		}
	}
	return len(xs) - 2
}

// rowIndex locates cy within the descending y boundaries, or -1.
func rowIndex(ys []float64, cy, tol float64) int {
	if cy > ys[0]+tol || cy < ys[len(ys)-1]-tol {
		return -1
	}
	for i := 0; i < len(ys)-1; i++ {
		if cy >= ys[i+1] {
			return i
		}
	}
	return len(ys) - 2
}

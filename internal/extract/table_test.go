// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridRects builds thin ruling rectangles for the given column x and row y
// boundaries, the way the vendor layout draws its item table.
func gridRects(xs, ys []float64) []Box {
	var rects []Box
	top, bottom := ys[0], ys[len(ys)-1]
	left, right := xs[0], xs[len(xs)-1]
	for _, x := range xs {
		rects = append(rects, Box{X0: x - 0.4, Y0: bottom, X1: x + 0.4, Y1: top})
	}
	for _, y := range ys {
		rects = append(rects, Box{X0: left, Y0: y - 0.4, X1: right, Y1: y + 0.4})
	}
	return rects
}

func TestTable(t *testing.T) {
	page := Page{
		Rects: gridRects([]float64{50, 100, 300, 400}, []float64{700, 680, 660, 640}),
		Runs: []Run{
			{S: "Quantity", X: 55, Y: 686, W: 34, Size: 8},
			{S: "Description", X: 105, Y: 686, W: 44, Size: 8},
			{S: "Price", X: 305, Y: 686, W: 20, Size: 8},

			{S: "1", X: 55, Y: 666, W: 4, Size: 8},
			{S: "Magic - FDN - Llanowar Elves", X: 105, Y: 666, W: 120, Size: 8},
			{S: "$0.25", X: 305, Y: 666, W: 22, Size: 8},

			{S: "Subtotal", X: 105, Y: 646, W: 34, Size: 8},
			{S: "$0.25", X: 305, Y: 646, W: 22, Size: 8},

			// Footer text outside the grid must not land in any cell.
			{S: "Page 1 of 1", X: 200, Y: 30, W: 40, Size: 6},
		},
	}

	rows := Table(page, DefaultTableSettings())
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Quantity", "Description", "Price"}, rows[0])
	assert.Equal(t, []string{"1", "Magic - FDN - Llanowar Elves", "$0.25"}, rows[1])
	assert.Equal(t, []string{"", "Subtotal", "$0.25"}, rows[2])
}

// Text wrapped onto a second baseline within one cell joins with a space.
func TestTableWrappedCell(t *testing.T) {
	page := Page{
		Rects: gridRects([]float64{100, 300}, []float64{700, 660}),
		Runs: []Run{
			{S: "Magic - FDN - Llanowar", X: 105, Y: 688, W: 100, Size: 8},
			{S: "Elves - 0123 - C - NM", X: 105, Y: 672, W: 90, Size: 8},
		},
	}

	rows := Table(page, DefaultTableSettings())
	require.Len(t, rows, 1)
	assert.Equal(t, "Magic - FDN - Llanowar Elves - 0123 - C - NM", rows[0][0])
}

// Cell borders drawn as filled rectangles contribute edge rulings that
// cluster with their neighbours into one grid boundary.
func TestTableFromCellBorders(t *testing.T) {
	page := Page{
		Rects: []Box{
			{X0: 50, Y0: 680, X1: 100, Y1: 700},
			{X0: 100, Y0: 680, X1: 300, Y1: 700},
			{X0: 50, Y0: 660, X1: 100, Y1: 680},
			{X0: 100, Y0: 660, X1: 300, Y1: 680},
		},
		Runs: []Run{
			{S: "Quantity", X: 55, Y: 686, W: 34, Size: 8},
			{S: "Description", X: 105, Y: 686, W: 44, Size: 8},
			{S: "2", X: 55, Y: 666, W: 4, Size: 8},
			{S: "Pikachu", X: 105, Y: 666, W: 30, Size: 8},
		},
	}

	rows := Table(page, DefaultTableSettings())
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Quantity", "Description"}, rows[0])
	assert.Equal(t, []string{"2", "Pikachu"}, rows[1])
}

func TestTableNoRulings(t *testing.T) {
	page := Page{
		Runs: []Run{{S: "plain text page", X: 50, Y: 700, W: 60, Size: 10}},
	}
	assert.Nil(t, Table(page, DefaultTableSettings()))
}

func TestClusterCoords(t *testing.T) {
	got := clusterCoords([]float64{50.2, 49.8, 100, 103, 300}, 5)
	require.Len(t, got, 3)
	assert.InDelta(t, 50.0, got[0], 0.3)
	assert.InDelta(t, 101.5, got[1], 0.01)
	assert.InDelta(t, 300.0, got[2], 0.01)
}

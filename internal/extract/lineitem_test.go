// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grademint/packslip/pkg/types"
)

var itemHeader = []string{"Quantity", "Description", "Price", "Total Price"}

func TestLineItems(t *testing.T) {
	rows := [][]string{
		itemHeader,
		{"1", "Magic - Foundations - Llanowar Elves - 0123 - C - Near Mint", "$0.25", "$0.25"},
		{"3", "Pokemon SV - Obsidian Flames - Charmander - 026/197 - C - NM", "$0.50", "$1.50"},
	}

	items := LineItems(rows, discardLogger())
	require.Len(t, items, 2)

	assert.Equal(t, types.LineItem{
		Quantity:    "1",
		Description: "Magic - Foundations - Llanowar Elves - 0123 - C - Near Mint",
		Price:       "$0.25",
		TotalPrice:  "$0.25",
		ProductLine: "Magic",
		SetName:     "Foundations",
		Name:        "Llanowar Elves",
		Number:      "0123",
		Rarity:      "C",
		Condition:   "Near Mint",
	}, items[0])
	assert.Equal(t, "Pokemon SV", items[1].ProductLine)
	assert.Equal(t, "026/197", items[1].Number)
}

// Rows with an empty Price are subtotal rows: excluded, no error, no log.
func TestLineItemsSkipsPricelessRows(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rows := [][]string{
		itemHeader,
		{"1", "Magic - FDN - Llanowar Elves - 0123 - C - NM", "$0.25", "$0.25"},
		{"", "Subtotal", "", "$0.25"},
	}

	items := LineItems(rows, logger)
	require.Len(t, items, 1)
	assert.Empty(t, buf.String())
}

// A description with fewer than six fields is a malformed row: dropped with
// a warning, the rest of the table still parses.
func TestLineItemsWarnsOnShortDescription(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rows := [][]string{
		itemHeader,
		{"1", "Booster Box", "$99.99", "$99.99"},
		{"1", "Magic - FDN - Llanowar Elves - 0123 - C - NM", "$0.25", "$0.25"},
	}

	items := LineItems(rows, logger)
	require.Len(t, items, 1)
	assert.Equal(t, "Llanowar Elves", items[0].Name)
	assert.Contains(t, buf.String(), "malformed item row")
}

func TestLineItemsWarnsOnBadQuantity(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rows := [][]string{
		itemHeader,
		{"two", "Magic - FDN - Llanowar Elves - 0123 - C - NM", "$0.25", "$0.50"},
	}

	assert.Empty(t, LineItems(rows, logger))
	assert.Contains(t, buf.String(), "malformed item row")
}

// A name containing a dash produces extra tokens; the first six are used.
func TestLineItemsDashInName(t *testing.T) {
	rows := [][]string{
		itemHeader,
		{"1", "Magic - FDN - Will - o' - the - Wisp - 0099 - R - NM", "$1.00", "$1.00"},
	}

	items := LineItems(rows, discardLogger())
	require.Len(t, items, 1)
	assert.Equal(t, "Will", items[0].Name)
	assert.Equal(t, "o'", items[0].Number)
}

func TestLineItemsHeaderOnly(t *testing.T) {
	assert.Nil(t, LineItems([][]string{itemHeader}, discardLogger()))
	assert.Nil(t, LineItems(nil, discardLogger()))
}

// A short row zips against the header as far as it goes.
func TestLineItemsShortRow(t *testing.T) {
	rows := [][]string{
		itemHeader,
		{"1", "Magic - FDN - Llanowar Elves - 0123 - C - NM", "$0.25"},
	}

	items := LineItems(rows, discardLogger())
	require.Len(t, items, 1)
	assert.Empty(t, items[0].TotalPrice)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/grademint/packslip/pkg/types"
)

// Column labels of the vendor's item table header row.
const (
	colQuantity    = "Quantity"
	colDescription = "Description"
	colPrice       = "Price"
	colTotalPrice  = "Total Price"
)

// descriptionTokens is the number of "-"-separated fields a card
// description carries: product line, set, name, number, rarity, condition.
const descriptionTokens = 6

// LineItems converts a detected table into line items. The first row is the
// header; data rows are zipped against its labels. Rows without a Price
// value are non-item rows (subtotals, continuations) and are dropped
// silently. Malformed rows — a description with fewer than six fields, or a
// quantity that is not an integer — are dropped with a warning; one policy
// for every caller.
func LineItems(rows [][]string, logger *slog.Logger) []types.LineItem {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]

	var items []types.LineItem
	for _, row := range rows[1:] {
		cells := zipRow(header, row)
		if cells[colPrice] == "" {
			continue
		}

		item, ok := rowToItem(cells)
		if !ok {
			logger.Warn("dropping malformed item row",
				"description", cells[colDescription],
				"quantity", cells[colQuantity])
			continue
		}
		items = append(items, item)
	}
	return items
}

// zipRow pairs header labels with row cells, stopping at the shorter.
func zipRow(header, row []string) map[string]string {
	cells := make(map[string]string, len(header))
	for i, label := range header {
		if i >= len(row) {
			break
		}
		cells[label] = row[i]
	}
	return cells
}

// rowToItem builds a LineItem from a zipped row. The description must split
// on "-" into at least six tokens; extras beyond the sixth belong to names
// that themselves contain dashes and are ignored positionally.
func rowToItem(cells map[string]string) (types.LineItem, bool) {
	if _, err := strconv.Atoi(strings.TrimSpace(cells[colQuantity])); err != nil {
		return types.LineItem{}, false
	}

	tokens := strings.Split(cells[colDescription], "-")
	if len(tokens) < descriptionTokens {
		return types.LineItem{}, false
	}
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	return types.LineItem{
		Quantity:    strings.TrimSpace(cells[colQuantity]),
		Description: cells[colDescription],
		Price:       cells[colPrice],
		TotalPrice:  cells[colTotalPrice],
		ProductLine: tokens[0],
		SetName:     tokens[1],
		Name:        tokens[2],
		Number:      tokens[3],
		Rarity:      tokens[4],
		Condition:   tokens[5],
	}, true
}

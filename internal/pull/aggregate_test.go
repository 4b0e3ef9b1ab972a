// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pull

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grademint/packslip/pkg/types"
)

func item(productLine, name, number, qty, price string) types.LineItem {
	return types.LineItem{
		Quantity:    qty,
		Description: productLine + " - Set - " + name + " - " + number + " - C - NM",
		Price:       price,
		ProductLine: productLine,
		SetName:     "Set",
		Name:        name,
		Number:      number,
		Rarity:      "C",
		Condition:   "NM",
	}
}

func order(number string, items ...types.LineItem) *types.Order {
	return &types.Order{Number: number, LineItems: items}
}

// Folding by identity must preserve total quantity, and a repeated card
// accumulates both quantity and contributing order numbers in first-seen
// order.
func TestAggregateFoldsDuplicates(t *testing.T) {
	orders := []*types.Order{
		order("o1", item("Magic", "Llanowar Elves", "0123", "2", "$0.25")),
		order("o2", item("Magic", "Llanowar Elves", "0123", "3", "$0.25")),
	}

	groups := Aggregate(orders)
	require.Len(t, groups.Magic, 1)

	card := groups.Magic[0]
	assert.Equal(t, 5, card.Quantity)
	assert.Equal(t, []string{"o1", "o2"}, card.Orders)
	assert.Equal(t, "o1, o2", card.OrderList())
	assert.Equal(t, 5, groups.TotalQuantity())
}

func TestAggregateQuantityConservation(t *testing.T) {
	orders := []*types.Order{
		order("o1",
			item("Magic", "Llanowar Elves", "0123", "2", "$0.25"),
			item("Magic", "Counterspell", "0055", "1", "$1.10"),
		),
		order("o2",
			item("Magic", "Llanowar Elves", "0123", "4", "$0.25"),
			item("Magic", "Counterspell", "0055", "3", "$1.10"),
			item("Magic", "Brainstorm", "0044", "1", "$0.80"),
		),
	}

	groups := Aggregate(orders)

	want := 0
	for _, o := range orders {
		for _, it := range o.LineItems {
			switch it.Quantity {
			case "1":
				want++
			case "2":
				want += 2
			case "3":
				want += 3
			case "4":
				want += 4
			}
		}
	}
	assert.Equal(t, want, groups.TotalQuantity())
	assert.Len(t, groups.Magic, 3)
}

func TestAggregateCategoryRouting(t *testing.T) {
	orders := []*types.Order{
		order("o1",
			item("Magic", "Llanowar Elves", "0123", "1", "$0.25"),
			item("Pokemon TCG", "Pikachu", "057/197", "1", "$0.40"),
			item("Pokemon SV", "Charmander", "026/197", "1", "$0.50"),
			item("Yu-Gi-Oh", "Dark Magician", "001", "1", "$2.00"),
			item("Lorcana", "Elsa", "042", "1", "$3.00"),
		),
	}

	groups := Aggregate(orders)

	assert.Len(t, groups.Magic, 1)
	assert.Len(t, groups.Pokemon, 2)
	require.Len(t, groups.Misc, 2)
	assert.Equal(t, "Dark Magician", groups.Misc[1].Name)
}

// Same name and number under different product lines are distinct cards.
func TestAggregateKeyIncludesProductLine(t *testing.T) {
	orders := []*types.Order{
		order("o1",
			item("Pokemon TCG", "Pikachu", "001", "1", "$0.40"),
			item("Pokemon SV", "Pikachu", "001", "1", "$0.40"),
		),
	}

	groups := Aggregate(orders)
	assert.Len(t, groups.Pokemon, 2)
}

func TestAggregateSortOrder(t *testing.T) {
	orders := []*types.Order{
		order("o1",
			item("Magic", "Llanowar Elves", "0123", "1", "$0.25"),
			item("Magic", "Brainstorm", "0044", "1", "$0.80"),
			item("Magic", "Brainstorm", "0021", "1", "$0.80"),
		),
		order("o2",
			item("Magic", "Brainstorm", "0044", "2", "$0.80"),
		),
	}

	groups := Aggregate(orders)
	require.Len(t, groups.Magic, 3)

	isSorted := sort.SliceIsSorted(groups.Magic, func(i, j int) bool {
		a, b := groups.Magic[i], groups.Magic[j]
		if a.ProductLine != b.ProductLine {
			return a.ProductLine < b.ProductLine
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.Rarity < b.Rarity
	})
	assert.True(t, isSorted, "group must be sorted by (product line, name, number, rarity)")
	assert.Equal(t, "0021", groups.Magic[0].Number)
	assert.Equal(t, 3, groups.Magic[1].Quantity)
}

func TestAggregateEmpty(t *testing.T) {
	groups := Aggregate(nil)
	assert.Empty(t, groups.Magic)
	assert.Empty(t, groups.Pokemon)
	assert.Empty(t, groups.Misc)
	assert.Zero(t, groups.TotalQuantity())
}

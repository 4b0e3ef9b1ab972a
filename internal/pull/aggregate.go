// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pull folds the line items of every parsed order into the pull
// sheet: one aggregated card per distinct (product line, name, number),
// partitioned into the product groups the sheet prints.
package pull

import (
	"sort"
	"strconv"
	"strings"

	"github.com/grademint/packslip/pkg/types"
)

// Groups holds the pull sheet's aggregated cards, partitioned by product
// line and sorted for retrieval order.
type Groups struct {
	Magic   []types.PullCard
	Pokemon []types.PullCard
	Misc    []types.PullCard
}

// TotalQuantity sums card quantities across all three groups.
func (g Groups) TotalQuantity() int {
	total := 0
	for _, cards := range [][]types.PullCard{g.Magic, g.Pokemon, g.Misc} {
		for _, c := range cards {
			total += c.Quantity
		}
	}
	return total
}

// cardKey identifies a distinct card across orders.
type cardKey struct {
	productLine string
	name        string
	number      string
}

// group accumulates cards for one section of the pull sheet, preserving
// first-seen order while folding repeats.
type group struct {
	cards []types.PullCard
	index map[cardKey]int
}

func newGroup() *group {
	return &group{index: make(map[cardKey]int)}
}

// add folds one line item from the given order into the group. A new key
// appends a card; a repeated key sums the quantity and appends the order
// number. Quantities were validated at extraction, so the parse cannot fail
// here; a malformed value contributes zero.
func (g *group) add(item types.LineItem, orderNumber string) {
	qty, _ := strconv.Atoi(strings.TrimSpace(item.Quantity))
	key := cardKey{productLine: item.ProductLine, name: item.Name, number: item.Number}

	if i, ok := g.index[key]; ok {
		g.cards[i].Quantity += qty
		g.cards[i].Orders = append(g.cards[i].Orders, orderNumber)
		return
	}

	g.index[key] = len(g.cards)
	g.cards = append(g.cards, types.PullCard{
		ProductLine: item.ProductLine,
		SetName:     item.SetName,
		Name:        item.Name,
		Number:      item.Number,
		Description: item.Description,
		Rarity:      item.Rarity,
		Condition:   item.Condition,
		Price:       item.Price,
		Quantity:    qty,
		Orders:      []string{orderNumber},
	})
}

// sorted returns the group's cards ordered by (product line, name, number,
// rarity), ascending and lexicographic on all four keys.
func (g *group) sorted() []types.PullCard {
	sort.SliceStable(g.cards, func(i, j int) bool {
		a, b := g.cards[i], g.cards[j]
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
	return g.cards
}

// Aggregate folds every order's line items into the three pull-sheet
// groups. Cards with product line exactly "Magic" form the Magic group,
// product lines starting with "Pokemon" the Pokemon group, and everything
// else lands in Misc.
func Aggregate(orders []*types.Order) Groups {
	magic, pokemon, misc := newGroup(), newGroup(), newGroup()

	for _, order := range orders {
		for _, item := range order.LineItems {
			switch {
			case item.ProductLine == "Magic":
				magic.add(item, order.Number)
			case strings.HasPrefix(item.ProductLine, "Pokemon"):
				pokemon.add(item, order.Number)
			default:
				misc.add(item, order.Number)
			}
		}
	}

	return Groups{
		Magic:   magic.sorted(),
		Pokemon: pokemon.sorted(),
		Misc:    misc.sorted(),
	}
}

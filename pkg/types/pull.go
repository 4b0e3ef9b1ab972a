// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// PullCard is one distinct card on the pull sheet, aggregated across every
// order that contains it. Cards are identified by (ProductLine, Name,
// Number); folding a repeated identity sums Quantity and appends the
// contributing order number.
type PullCard struct {
	ProductLine string `json:"product_line" yaml:"product_line"`
	SetName     string `json:"set_name" yaml:"set_name"`
	Name        string `json:"name" yaml:"name"`
	Number      string `json:"number" yaml:"number"`
	Description string `json:"description" yaml:"description"`
	Rarity      string `json:"rarity" yaml:"rarity"`
	Condition   string `json:"condition" yaml:"condition"`

	// Price is the unit price from the first contributing line item.
	Price string `json:"price" yaml:"price"`

	// Quantity is the total quantity over all contributing line items.
	Quantity int `json:"quantity" yaml:"quantity"`

	// Orders lists contributing order numbers in first-seen order.
	Orders []string `json:"orders" yaml:"orders"`
}

// OrderList returns the contributing order numbers as a comma-joined string
// for display on the pull sheet.
func (c PullCard) OrderList() string {
	return strings.Join(c.Orders, ", ")
}

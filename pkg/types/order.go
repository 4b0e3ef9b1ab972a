// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across the packslip pipeline:
// parsed orders, their line items, aggregated pull cards, and stage
// configuration.
package types

import "strings"

// Marketplace identifies the sales channel an order export came from.
type Marketplace string

const (
	MarketplaceEBay          Marketplace = "eBay"
	MarketplaceTCGplayer     Marketplace = "TCG Player"
	MarketplacePriceCharting Marketplace = "PriceCharting"
	MarketplaceMercari       Marketplace = "Mercari"
	MarketplaceOther         Marketplace = "Other"
)

// ParseMarketplace maps a user-supplied channel name to its Marketplace
// value, case-insensitively and ignoring spaces. Unrecognized names map
// to MarketplaceOther.
func ParseMarketplace(s string) Marketplace {
	normalized := ""
	for _, r := range s {
		if r != ' ' {
			normalized += string(r)
		}
	}
	switch {
	case strings.EqualFold(normalized, "ebay"):
		return MarketplaceEBay
	case strings.EqualFold(normalized, "tcgplayer"):
		return MarketplaceTCGplayer
	case strings.EqualFold(normalized, "pricecharting"):
		return MarketplacePriceCharting
	case strings.EqualFold(normalized, "mercari"):
		return MarketplaceMercari
	}
	return MarketplaceOther
}

// FileLabel returns the marketplace name in a form safe for file names
// (no spaces).
func (m Marketplace) FileLabel() string {
	switch m {
	case MarketplaceTCGplayer:
		return "TCGPlayer"
	case "":
		return string(MarketplaceOther)
	}
	out := make([]byte, 0, len(m))
	for i := 0; i < len(m); i++ {
		if m[i] != ' ' {
			out = append(out, m[i])
		}
	}
	return string(out)
}

// PageMarker identifies which logical order a physical PDF page belongs to
// and its position within that order's page sequence. It is recovered from
// the literal "OrderNumber:{id} Page{p}of{t}" marker printed on each page.
type PageMarker struct {
	// OrderNumber is the vendor-issued order identifier.
	OrderNumber string `json:"order_number" yaml:"order_number"`

	// Page is the 1-based position of this page within the order.
	Page int `json:"page" yaml:"page"`

	// TotalPages is the number of pages the order spans.
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// PDFPage is the 1-based index of the page in the source document.
	PDFPage int `json:"pdf_page" yaml:"pdf_page"`
}

// ShippingAddress is the ship-to block of an order's packing slip.
// A zero value means the address has not been extracted yet.
type ShippingAddress struct {
	Name         string `json:"name" yaml:"name"`
	AddressLine1 string `json:"address_line1" yaml:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	City         string `json:"city" yaml:"city"`
	State        string `json:"state" yaml:"state"`
	Zip          string `json:"zip" yaml:"zip"`

	// CityStateZip is the pre-formatted trailing line, "City, ST 12345".
	CityStateZip string `json:"city_state_zip" yaml:"city_state_zip"`
}

// IsZero reports whether no address has been extracted.
func (a ShippingAddress) IsZero() bool {
	return a == ShippingAddress{}
}

// SaleInfo is the sale-information block from an order's first page.
type SaleInfo struct {
	OrderDate      string `json:"order_date" yaml:"order_date"`
	ShippingMethod string `json:"shipping_method" yaml:"shipping_method"`
	BuyerName      string `json:"buyer_name" yaml:"buyer_name"`
	SellerName     string `json:"seller_name" yaml:"seller_name"`
}

// LineItem is one row of an order's itemized table. Quantity and the price
// fields carry the vendor's string encoding; the six card fields are derived
// by splitting Description on "-".
type LineItem struct {
	Quantity    string `json:"quantity" yaml:"quantity"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price,omitempty" yaml:"price,omitempty"`
	TotalPrice  string `json:"total_price" yaml:"total_price"`

	ProductLine string `json:"product_line" yaml:"product_line"`
	SetName     string `json:"set_name" yaml:"set_name"`
	Name        string `json:"name" yaml:"name"`
	Number      string `json:"number" yaml:"number"`
	Rarity      string `json:"rarity" yaml:"rarity"`
	Condition   string `json:"condition" yaml:"condition"`
}

// Order is one buyer's purchase, assembled from one or more PDF pages.
// Identity is Number; the ship-to block and sale info come from the first
// page only, while later pages contribute additional line items and page
// markers. An Order is mutable during document assembly and must not be
// modified after the parse completes.
type Order struct {
	Number          string          `json:"number" yaml:"number"`
	Marketplace     Marketplace     `json:"marketplace" yaml:"marketplace"`
	PageMarkers     []PageMarker    `json:"page_markers" yaml:"page_markers"`
	ShippingAddress ShippingAddress `json:"shipping_address" yaml:"shipping_address"`
	LineItems       []LineItem      `json:"line_items" yaml:"line_items"`
	SaleInfo        SaleInfo        `json:"sale_info" yaml:"sale_info"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/grademint/packslip/pkg/types"
)

// SaleInfoRegion is the fixed region of an order's first page holding the
// sale-information box, in PDF coordinates on the vendor's 612x792pt page.
var SaleInfoRegion = Box{X0: 280, Y0: 510, X1: 580, Y1: 598}

// ErrSaleInfoMissing reports that the sale-information block could not be
// found on an order's first page. The document cannot be parsed without it,
// so the caller must abort the whole parse.
var ErrSaleInfoMissing = errors.New("sale information block not found")

// saleInfoPattern matches the four line-anchored labels of the sale box,
// in fixed order.
var saleInfoPattern = regexp.MustCompile(`(?si)` +
	`Order Date:\s*(.+?)\s*\n` +
	`Shipping Method:\s*(.+?)\s*\n` +
	`Buyer Name:\s*(.+?)\s*\n` +
	`Seller Name:\s*(.+)`)

// SaleInfo parses the sale-information block from the text of the fixed
// page region. A failed match returns ErrSaleInfoMissing.
func SaleInfo(regionText string) (types.SaleInfo, error) {
	m := saleInfoPattern.FindStringSubmatch(regionText)
	if m == nil {
		return types.SaleInfo{}, ErrSaleInfoMissing
	}
	return types.SaleInfo{
		OrderDate:      strings.TrimSpace(m[1]),
		ShippingMethod: strings.TrimSpace(m[2]),
		BuyerName:      strings.TrimSpace(m[3]),
		SellerName:     strings.TrimSpace(m[4]),
	}, nil
}

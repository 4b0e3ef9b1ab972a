// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
)

// PriceValue parses a vendor currency string such as "$1,234.56" into a
// float. An empty string parses as zero.
func PriceValue(price string) (float64, error) {
	s := strings.TrimSpace(price)
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

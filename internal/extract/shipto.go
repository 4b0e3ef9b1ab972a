// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/grademint/packslip/pkg/types"
)

// shipToPattern captures the text between the literal "ShipTo:" marker and
// the "Order Number" label, across newlines, non-greedy.
var shipToPattern = regexp.MustCompile(`(?s)ShipTo:(.*?)Order Number`)

// ShipTo parses the ship-to block out of page text. The block must contain
// a recipient name line, one or two address lines, and a trailing
// "City, ST 12345" line. Any other shape returns a zero address: the caller
// treats that as "no shipping address yet" and retries on later pages of
// the same order. ShipTo never fails the page.
//
// Address lines beyond the second are dropped; the vendor layout never
// produces them, so a drop is logged to aid debugging of malformed exports.
func ShipTo(text string, logger *slog.Logger) types.ShippingAddress {
	m := shipToPattern.FindStringSubmatch(text)
	if m == nil {
		return types.ShippingAddress{}
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 3 {
		return types.ShippingAddress{}
	}

	name := lines[0]
	cityStateZip := lines[len(lines)-1]
	addressLines := lines[1 : len(lines)-1]
	if len(addressLines) > 2 {
		logger.Warn("ship-to block has extra address lines, keeping first two",
			"dropped", len(addressLines)-2)
	}

	parts := strings.Split(cityStateZip, ",")
	if len(parts) != 2 {
		return types.ShippingAddress{}
	}
	city := strings.TrimSpace(parts[0])

	stateZip := strings.Fields(parts[1])
	if len(stateZip) != 2 {
		return types.ShippingAddress{}
	}

	addr := types.ShippingAddress{
		Name:         name,
		AddressLine1: addressLines[0],
		City:         city,
		State:        stateZip[0],
		Zip:          stateZip[1],
		CityStateZip: fmt.Sprintf("%s, %s %s", city, stateZip[0], stateZip[1]),
	}
	if len(addressLines) > 1 {
		addr.AddressLine2 = addressLines[1]
	}
	return addr
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/grademint/packslip/internal/pull"
	"github.com/grademint/packslip/pkg/types"
)

// Pull-sheet table layout.
var (
	pullWidths = []float64{0.4, 2.8, 0.4}
	pullAligns = []string{"C", "L", "R"}
	pullLabels = []string{"Qty", "Description", "Price"}
)

const pullWrapCol = 1

// emphasisPrice is the unit price above which a card's price prints bold
// so the puller double-checks valuable cards.
const emphasisPrice = 0.49

// variantKeywords in a card's description trigger bold emphasis; variants
// are easy to mis-pull for their base printing.
var variantKeywords = []string{"Foil", "Holo", "Reverse", "Rare", "Promo", "Shiny", "Full Art"}

// Banded row fills.
var (
	fillShaded = [3]int{240, 240, 240}
	fillWhite  = [3]int{255, 255, 255}
)

// PullSheet renders the aggregated pull sheet to a timestamped PDF under
// cfg.OutputDir and returns its path. Each product group starts its own
// page with a distinct-card count heading and a per-group total.
func PullSheet(groups pull.Groups, cfg types.RenderConfig, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if groups.TotalQuantity() == 0 {
		logger.Warn("no cards to pull, skipping pull sheet")
		return "", nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	doc := NewDoc()
	printGroup(doc, "Magic", groups.Magic)
	printGroup(doc, "Pokemon", groups.Pokemon)
	printGroup(doc, "MISC.", groups.Misc)

	name := fmt.Sprintf("%s_PullList_%s.pdf", cfg.Marketplace.FileLabel(), timestamp())
	path := filepath.Join(cfg.OutputDir, name)
	if err := doc.Output(path); err != nil {
		return "", fmt.Errorf("writing pull sheet: %w", err)
	}
	return path, nil
}

// printGroup prints one section of the sheet on a fresh page: heading,
// table headers, banded card rows, and the group's card total.
func printGroup(doc *Doc, title string, cards []types.PullCard) {
	doc.pdf.AddPage()

	doc.SetFont("B", orderHeaderFontSize)
	doc.TextLine(fmt.Sprintf("%s (%d Distinct Cards)", title, len(cards)))
	doc.pdf.Ln(lineHeight)
	doc.HeaderRow(pullWidths, pullAligns, pullLabels)

	total := 0
	for i, card := range cards {
		fill := fillWhite
		if i%2 == 0 {
			fill = fillShaded
		}
		doc.pdf.SetFillColor(fill[0], fill[1], fill[2])

		doc.TableRow(pullWidths, pullAligns, []rowCell{
			{text: fmt.Sprintf("%d", card.Quantity), bold: card.Quantity > 1},
			{text: card.Description, bold: isVariant(card.Description)},
			{text: card.Price, bold: aboveEmphasisPrice(card.Price)},
		}, pullWrapCol, true)
		total += card.Quantity
	}

	doc.pdf.Ln(lineHeight)
	doc.SetFont("B", standardFontSize)
	doc.pdf.CellFormat(pullWidths[0]+pullWidths[1], lineHeight,
		fmt.Sprintf("Total Cards: %d", total), "", 1, "C", false, 0, "")
}

// aboveEmphasisPrice reports whether a price string exceeds the bold
// threshold. Unparsable prices are never emphasized.
func aboveEmphasisPrice(price string) bool {
	v, err := types.PriceValue(price)
	return err == nil && v > emphasisPrice
}

// isVariant reports whether a description names a variant printing.
func isVariant(description string) bool {
	for _, kw := range variantKeywords {
		if strings.Contains(description, kw) {
			return true
		}
	}
	return false
}

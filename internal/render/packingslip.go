// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/grademint/packslip/internal/progress"
	"github.com/grademint/packslip/pkg/types"
)

// Packing-slip item table layout.
var (
	slipWidths = []float64{0.4, 2.0, 0.5, 0.7}
	slipAligns = []string{"C", "L", "R", "R"}
	slipLabels = []string{"Qty", "Description", "Price", "Total Price"}
)

const slipWrapCol = 1

// PackingSlips renders one slip per order into a scoped temporary
// directory, merges them into a single PDF under cfg.OutputDir, and
// returns the merged file's path. The temporary directory is removed on
// every exit path. With ArchiveSlips set, each per-order slip is also
// copied into the output directory. tracker may be nil.
func PackingSlips(orders []*types.Order, cfg types.RenderConfig, tracker progress.Tracker, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(orders) == 0 {
		logger.Warn("no orders to render, skipping packing slips")
		return "", nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "packslip-")
	if err != nil {
		return "", fmt.Errorf("creating slip working directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if tracker != nil {
		tracker.SetTotal(len(orders))
	}

	for _, order := range orders {
		slipPath := filepath.Join(tmpDir, order.Number+".pdf")
		if err := renderOrderSlip(order, cfg.CompanyName, slipPath); err != nil {
			return "", fmt.Errorf("rendering slip for order %s: %w", order.Number, err)
		}
		if tracker != nil {
			tracker.Advance(1)
		}
	}

	slips, err := filepath.Glob(filepath.Join(tmpDir, "*.pdf"))
	if err != nil {
		return "", err
	}
	sort.Strings(slips)

	mergedName := fmt.Sprintf("%s_PackingSlips_%d_Orders_%s.pdf",
		cfg.Marketplace.FileLabel(), len(slips), timestamp())
	mergedPath := filepath.Join(cfg.OutputDir, mergedName)

	if err := mergePDFs(slips, mergedPath); err != nil {
		return "", fmt.Errorf("merging packing slips: %w", err)
	}

	if cfg.ArchiveSlips {
		for _, slip := range slips {
			dst := filepath.Join(cfg.OutputDir, filepath.Base(slip))
			if err := copyFile(slip, dst); err != nil {
				return "", fmt.Errorf("archiving slip %s: %w", filepath.Base(slip), err)
			}
		}
	}

	if tracker != nil {
		tracker.Describe(fmt.Sprintf("Merged %d packing slips into %s", len(slips), mergedPath))
	}
	return mergedPath, nil
}

// renderOrderSlip writes one order's packing slip to path. Every page of
// the slip carries an order/page footer; continuation pages created by
// automatic page breaks repeat the item table header.
func renderOrderSlip(order *types.Order, companyName, path string) error {
	doc := NewDoc()

	doc.pdf.SetFooterFunc(func() {
		doc.pdf.SetY(-0.3)
		doc.SetFont("I", standardFontSize)
		label := fmt.Sprintf("Order: %s - Page %d of {nb}", order.Number, doc.pdf.PageNo())
		doc.pdf.CellFormat(0, 0.2, label, "", 0, "C", false, 0, "")
	})

	inTable := false
	doc.pdf.SetHeaderFunc(func() {
		if inTable {
			doc.HeaderRow(slipWidths, slipAligns, slipLabels)
		}
	})

	doc.pdf.AddPage()

	addr := order.ShippingAddress
	doc.SetFont("B", shipToFontSize)
	doc.TextLine(addr.Name)
	doc.TextLine(addr.AddressLine1)
	if addr.AddressLine2 != "" {
		doc.TextLine(addr.AddressLine2)
	}
	doc.TextLine(addr.CityStateZip)

	doc.pdf.Ln(lineHeight)
	doc.DashedRule()
	doc.pdf.Ln(lineHeight)

	doc.SetFont("B", orderHeaderFontSize)
	doc.TextLine("Order: " + order.Number)
	doc.pdf.Ln(lineHeight / 2)

	doc.SetFont("", standardFontSize)
	doc.TextLine(fmt.Sprintf("Thank you for buying from %s on %s.", companyName, order.Marketplace))
	doc.pdf.Ln(lineHeight / 3)

	doc.HeaderRow(slipWidths, slipAligns, slipLabels)
	inTable = true
	for _, item := range order.LineItems {
		doc.TableRow(slipWidths, slipAligns, slipRow(item), slipWrapCol, false)
	}
	inTable = false

	printSlipTotals(doc, order.LineItems)

	return doc.Output(path)
}

// slipRow builds the four cells of one item row. The row total is
// recomputed from unit price and quantity rather than trusting the
// vendor's total column.
func slipRow(item types.LineItem) []rowCell {
	unit, _ := types.PriceValue(item.Price)
	qty, _ := types.PriceValue(item.Quantity)
	return []rowCell{
		{text: item.Quantity},
		{text: item.Description},
		{text: item.Price},
		{text: fmt.Sprintf("$%.2f", unit*qty)},
	}
}

// printSlipTotals prints the summary line under the item table.
func printSlipTotals(doc *Doc, items []types.LineItem) {
	totalQty := 0
	totalPrice := 0.0
	for _, item := range items {
		qty, _ := types.PriceValue(item.Quantity)
		unit, _ := types.PriceValue(item.Price)
		totalQty += int(qty)
		totalPrice += unit * qty
	}

	doc.pdf.Ln(lineHeight)
	doc.SetFont("B", standardFontSize)
	rowWidth := pageWidth - 2*horizontalMargin
	doc.pdf.CellFormat(rowWidth*2/3, lineHeight, fmt.Sprintf("Total Items: %d", totalQty), "", 0, "L", false, 0, "")
	doc.pdf.CellFormat(rowWidth*1/3, lineHeight, fmt.Sprintf("Total: $%.2f", totalPrice), "", 1, "L", false, 0, "")
}

// copyFile duplicates src at dst, preserving the slip for archiving after
// the temporary directory is removed.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the aggregated pull sheet as an XLSX workbook for
// sellers who reconcile pulls in a spreadsheet instead of on paper.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/grademint/packslip/internal/pull"
	"github.com/grademint/packslip/pkg/types"
)

var sheetHeaders = []string{
	"Quantity",
	"Product Line",
	"Set",
	"Card Name",
	"Number",
	"Rarity",
	"Condition",
	"Price",
	"Orders",
}

// PullSheetXLSX writes one workbook with a sheet per non-empty product
// group and returns the written path. An empty aggregation writes nothing.
func PullSheetXLSX(groups pull.Groups, outputDir string, marketplace types.Marketplace, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if groups.TotalQuantity() == 0 {
		logger.Warn("no cards to export, skipping workbook")
		return "", nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	start := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	sections := []struct {
		name  string
		cards []types.PullCard
	}{
		{"Magic", groups.Magic},
		{"Pokemon", groups.Pokemon},
		{"Misc", groups.Misc},
	}

	rows := 0
	for _, sec := range sections {
		if len(sec.cards) == 0 {
			continue
		}
		if err := writeSheet(f, sec.name, sec.cards); err != nil {
			return "", fmt.Errorf("writing sheet %s: %w", sec.name, err)
		}
		rows += len(sec.cards)
	}

	// excelize seeds every workbook with "Sheet1"; drop it once real
	// sheets exist.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && len(f.GetSheetList()) > 1 {
		_ = f.DeleteSheet("Sheet1")
	}
	f.SetActiveSheet(0)

	name := fmt.Sprintf("%s_PullList_%s.xlsx", marketplace.FileLabel(), now().Format("01022006-1504"))
	path := filepath.Join(outputDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"path", path,
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// now is replaced in tests to pin output file names.
var now = time.Now

// writeSheet fills one group's sheet with a header row and one row per
// aggregated card.
func writeSheet(f *excelize.File, sheet string, cards []types.PullCard) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range sheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, card := range cards {
		values := []any{
			card.Quantity,
			card.ProductLine,
			card.SetName,
			card.Name,
			card.Number,
			card.Rarity,
			card.Condition,
			card.Price,
			card.OrderList(),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "D", 32)
	_ = f.SetColWidth(sheet, "I", "I", 40)
	return nil
}

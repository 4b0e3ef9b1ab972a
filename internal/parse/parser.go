// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse assembles orders from the page sequence of a packing-slip
// PDF export. It walks the document once, page-index ascending, matching
// each page to its order via the printed page marker and merging multi-page
// orders into single records.
package parse

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/grademint/packslip/internal/extract"
	"github.com/grademint/packslip/internal/progress"
	"github.com/grademint/packslip/pkg/types"
)

// Source yields the pages of one document in order. The production
// implementation wraps a PDF reader; tests supply synthetic pages.
type Source interface {
	NumPages() int

	// Page returns the content of the 1-based page i.
	Page(i int) (extract.Page, error)
}

// Parser drives page iteration and order assembly for one document.
// The zero value is not usable; construct with New.
type Parser struct {
	marketplace types.Marketplace
	table       extract.TableSettings
	tracker     progress.Tracker // may be nil
	logger      *slog.Logger
}

// New returns a Parser for the given marketplace. tracker may be nil;
// a nil logger falls back to slog.Default().
func New(marketplace types.Marketplace, tracker progress.Tracker, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		marketplace: marketplace,
		table:       extract.DefaultTableSettings(),
		tracker:     tracker,
		logger:      logger,
	}
}

// ParseFile opens the PDF at path and assembles its orders.
func (p *Parser) ParseFile(path string) ([]*types.Order, error) {
	if err := ValidateInputPath(path); err != nil {
		return nil, err
	}
	src, closer, err := OpenPDF(path)
	if err != nil {
		return nil, err
	}
	defer closer()
	return p.Parse(src)
}

// Parse assembles orders from src in a single pass. Pages without a marker
// are skipped; the first page of each order must carry the sale-information
// block or the whole parse fails. Orders come back in first-seen page
// order. Parse holds no state between calls: parsing the same source twice
// yields identical results.
func (p *Parser) Parse(src Source) ([]*types.Order, error) {
	n := src.NumPages()
	if p.tracker != nil {
		p.tracker.SetTotal(n)
	}

	var orders []*types.Order
	byNumber := make(map[string]*types.Order)

	for i := 1; i <= n; i++ {
		page, err := src.Page(i)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, err)
		}

		order, err := p.processPage(page, i, byNumber)
		if err != nil {
			return nil, err
		}
		if order != nil {
			orders = append(orders, order)
			byNumber[order.Number] = order
		}

		if p.tracker != nil {
			p.tracker.Advance(1)
		}
	}

	if p.tracker != nil {
		p.tracker.Describe(fmt.Sprintf("Processed %d orders", len(orders)))
	}
	return orders, nil
}

// processPage handles one page: it either folds the page into an existing
// order and returns nil, or returns the new order the page opens. Pages
// without a marker return (nil, nil).
func (p *Parser) processPage(page extract.Page, pdfPage int, byNumber map[string]*types.Order) (*types.Order, error) {
	text := page.Text()

	marker, ok := extract.Marker(text, pdfPage)
	if !ok {
		p.logger.Debug("page carries no order marker, skipping", "page", pdfPage)
		return nil, nil
	}

	address := extract.ShipTo(text, p.logger)
	items := extract.LineItems(extract.Table(page, p.table), p.logger)

	if existing := byNumber[marker.OrderNumber]; existing != nil {
		existing.LineItems = append(existing.LineItems, items...)
		existing.PageMarkers = append(existing.PageMarkers, marker)
		if existing.ShippingAddress.IsZero() && !address.IsZero() {
			existing.ShippingAddress = address
		}
		return nil, nil
	}

	// First page of a new order: the sale-information block must be here.
	info, err := extract.SaleInfo(page.RegionText(extract.SaleInfoRegion))
	if err != nil {
		return nil, fmt.Errorf("page %d (order %s): %w", pdfPage, marker.OrderNumber, err)
	}

	return &types.Order{
		Number:          marker.OrderNumber,
		Marketplace:     p.marketplace,
		PageMarkers:     []types.PageMarker{marker},
		ShippingAddress: address,
		LineItems:       items,
		SaleInfo:        info,
	}, nil
}

// ValidateInputPath checks that path names a PDF file. Only the extension
// is checked; content sniffing is not attempted for the one vendor format
// this tool targets.
func ValidateInputPath(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return fmt.Errorf("input file must be a PDF: %s", path)
	}
	return nil
}

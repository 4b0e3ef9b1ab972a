// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/grademint/packslip/internal/extract"
)

// pdfSource adapts a ledongthuc/pdf reader to the Source interface.
type pdfSource struct {
	r *pdf.Reader
}

// OpenPDF opens the document at path and returns its page source along
// with a close function for the underlying file handle.
func OpenPDF(path string) (Source, func() error, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &pdfSource{r: r}, f.Close, nil
}

func (s *pdfSource) NumPages() int {
	return s.r.NumPage()
}

// Page decodes page i into positioned runs and rectangles. The underlying
// reader panics on malformed content streams; that is recovered into an
// error so one broken page fails the parse cleanly.
func (s *pdfSource) Page(i int) (page extract.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoding page %d: %v", i, r)
		}
	}()

	p := s.r.Page(i)
	if p.V.IsNull() {
		return extract.Page{}, nil
	}

	content := p.Content()
	page.Runs = make([]extract.Run, 0, len(content.Text))
	for _, t := range content.Text {
		page.Runs = append(page.Runs, extract.Run{
			S:    t.S,
			X:    t.X,
			Y:    t.Y,
			W:    t.W,
			Size: t.FontSize,
		})
	}
	page.Rects = make([]extract.Box, 0, len(content.Rect))
	for _, r := range content.Rect {
		page.Rects = append(page.Rects, extract.Box{
			X0: r.Min.X,
			Y0: r.Min.Y,
			X1: r.Max.X,
			Y1: r.Max.Y,
		})
	}
	return page, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress defines the side-channel the pipeline uses to report
// step completion. Trackers carry no control-flow significance: every
// consumer accepts a nil Tracker and produces identical results without
// one.
package progress

import (
	"fmt"
	"io"
)

// Tracker receives discrete progress events from a long-running step.
type Tracker interface {
	// SetTotal announces how many units the step will process.
	SetTotal(n int)

	// Advance records n completed units.
	Advance(n int)

	// Describe replaces the step's status text.
	Describe(msg string)
}

// Writer is a Tracker that prints status lines to an io.Writer.
type Writer struct {
	out   io.Writer
	label string
	done  int
	total int
}

// NewWriter returns a Writer tracker labelled label.
func NewWriter(out io.Writer, label string) *Writer {
	return &Writer{out: out, label: label}
}

func (w *Writer) SetTotal(n int) {
	w.total = n
}

func (w *Writer) Advance(n int) {
	w.done += n
	if w.total > 0 {
		fmt.Fprintf(w.out, "%s: %d/%d\n", w.label, w.done, w.total)
	} else {
		fmt.Fprintf(w.out, "%s: %d\n", w.label, w.done)
	}
}

func (w *Writer) Describe(msg string) {
	fmt.Fprintf(w.out, "%s\n", msg)
}

package extract

import (
	"strings"

	"github.com/jolanka/booking-cli/internal/grid"
)

// LabelExtractor recovers fields by fuzzy label search inside a bounded
// window below the form anchor. Search precedence, strictly: field
// declaration order, then label order within a field, then row order, then
// column order, then value-offset order. The first value found for a field
// ends that field's search.
type LabelExtractor struct {
	Patterns []FieldPattern
	Opts     Options
}

// Extract searches the anchor's window for every declared field. Fields not
// found anywhere in the window are simply absent from the record.
func (e *LabelExtractor) Extract(g *grid.Grid, anchor Anchor, limitRow int) (FieldRecord, []Lot) {
	rowEnd := anchor.Row + e.Opts.LookaheadRows
	if rowEnd > g.Rows() {
		rowEnd = g.Rows()
	}
	// Clip at the next form's anchor so a dense sheet cannot leak one
	// form's search into the next form's data.
	if limitRow > anchor.Row && limitRow < rowEnd {
		rowEnd = limitRow
	}

	colStart := anchor.Col - e.Opts.ColsBefore
	if colStart < 0 {
		colStart = 0
	}
	colEnd := anchor.Col + e.Opts.ColsAfter
	if colEnd > g.Cols() {
		colEnd = g.Cols()
	}

	rec := make(FieldRecord)
	for _, p := range e.Patterns {
		if value, ok := e.findField(g, p, anchor.Row, rowEnd, colStart, colEnd); ok {
			rec[p.Field] = value
		}
	}
	return rec, nil
}

// findField runs the label list for one field over the window and probes
// for its value. Returns ok=false when no label matched or every probed
// cell was unusable.
func (e *LabelExtractor) findField(g *grid.Grid, p FieldPattern, rowStart, rowEnd, colStart, colEnd int) (string, bool) {
	for _, label := range p.Labels {
		for r := rowStart; r < rowEnd; r++ {
			for c := colStart; c < colEnd; c++ {
				if !strings.Contains(g.Cell(r, c).TrimmedLower(), label) {
					continue
				}
				if value, ok := e.probeValue(g, r, c); ok {
					return value, true
				}
			}
		}
	}
	return "", false
}

// probeValue inspects the configured offsets to the right of a matched
// label cell and returns the first usable value. "#N/A" marks a cell the
// sheet's own lookups failed to fill; it is skipped like an empty cell.
func (e *LabelExtractor) probeValue(g *grid.Grid, row, labelCol int) (string, bool) {
	for _, off := range e.Opts.ValueOffsets {
		col := labelCol + off
		if col >= g.Cols() {
			break
		}
		cell := g.Cell(row, col)
		if cell.IsEmpty() {
			continue
		}
		value := strings.TrimSpace(cell.String())
		if value == "" || value == "#N/A" {
			continue
		}
		return value, true
	}
	return "", false
}

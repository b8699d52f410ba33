// Package grid provides the immutable 2-D cell model that the extraction
// engine operates on. A Grid is built once by the ingest layer and never
// mutated afterwards.
package grid

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the value type held by a Cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindTime
)

// Cell is a single grid cell. The zero value is an empty cell.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f}
}

// Time returns a date/time cell.
func Time(t time.Time) Cell {
	return Cell{Kind: KindTime, Time: t}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String renders the cell as text. Numbers with integral magnitude render
// without a decimal point ("42", not "42.0"); date/time values render as
// "2006-01-02 15:04:05", matching the textual shape the date normalizer
// recognizes.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		if c.Number == math.Trunc(c.Number) && !math.IsInf(c.Number, 0) {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindTime:
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// TrimmedLower returns the cell text trimmed and lowercased, the form label
// matchers compare against this.
func (c Cell) TrimmedLower() string {
	return strings.ToLower(strings.TrimSpace(c.String()))
}

// Grid is a rectangular, read-only matrix of cells.
type Grid struct {
	cells [][]Cell
	cols  int
}

// New builds a Grid from row data. Ragged input is rectangularized to the
// widest row; short rows are padded with empty cells.
func New(rows [][]Cell) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	cells := make([][]Cell, len(rows))
	for i, r := range rows {
		row := make([]Cell, cols)
		copy(row, r)
		cells[i] = row
	}
	return &Grid{cells: cells, cols: cols}
}

// Rows returns the row count.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the column count.
func (g *Grid) Cols() int {
	return g.cols
}

// Cell returns the cell at (row, col). Out-of-bounds positions return an
// empty cell rather than panicking; the extraction windows are clipped by
// the callers but probe offsets may still run past the grid edge.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return Cell{}
	}
	return g.cells[row][col]
}

// Package ingest decodes spreadsheet files into the grid abstraction the
// extraction engine consumes. The engine itself never touches files.
package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/jolanka/booking-cli/internal/grid"
)

// Options configures workbook decoding.
type Options struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadWorkbook decodes one sheet of an XLSX workbook into a Grid. Decoding
// failures are structural: they propagate as a single error and no grid is
// produced.
func ReadWorkbook(path string, opts Options) (*grid.Grid, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open workbook")
	}

	sheet, err := pickSheet(f, opts)
	if err != nil {
		return nil, err
	}

	rows := make([][]grid.Cell, len(sheet.Rows))
	for i, row := range sheet.Rows {
		cells := make([]grid.Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = convertCell(cell)
		}
		rows[i] = cells
	}
	return grid.New(rows), nil
}

func pickSheet(f *xlsx.File, opts Options) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("ingest: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("ingest: sheet index %d out of range (workbook has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

// convertCell maps an xlsx cell onto the grid value model. Date-formatted
// numeric cells become native time values; other numerics keep their float
// value so integral counts render without a decimal point.
func convertCell(c *xlsx.Cell) grid.Cell {
	switch c.Type() {
	case xlsx.CellTypeNumeric:
		if c.IsTime() {
			if t, err := c.GetTime(false); err == nil {
				return grid.Time(t)
			}
		}
		if f, err := c.Float(); err == nil {
			return grid.Number(f)
		}
		return grid.Text(c.String())
	default:
		s := c.String()
		if s == "" {
			return grid.Cell{}
		}
		return grid.Text(s)
	}
}

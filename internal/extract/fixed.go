package extract

import (
	"strings"

	"github.com/jolanka/booking-cli/internal/grid"
)

// FixedField binds a field to an absolute sheet position.
type FixedField struct {
	Field FieldKey
	Row   int
	Col   int
}

// Layout describes a rigid form layout: absolute base-field coordinates
// plus the row bands and column range used to discover shipment lots.
type Layout struct {
	// Base holds the scalar fields shared by every lot, read from fixed
	// sheet coordinates.
	Base []FixedField

	// LabelCol is the column searched for the units/ship/warehouse row
	// labels.
	LabelCol int

	// UnitsRowStart/End bound (inclusive) the search band for the units
	// label row.
	UnitsRowStart int
	UnitsRowEnd   int

	// DateRowStart/End bound (inclusive) the search band for the ship and
	// warehouse date label rows.
	DateRowStart int
	DateRowEnd   int

	// LotColStart/End bound (inclusive) the data columns checked for lots.
	LotColStart int
	LotColEnd   int

	// Row label substrings.
	UnitsLabel     string
	ShipLabel      string
	WarehouseLabel string
}

// DefaultLayout returns the production booking form layout.
func DefaultLayout() Layout {
	return Layout{
		Base: []FixedField{
			{Field: FieldFactory, Row: 14, Col: 3},
			{Field: FieldDescription, Row: 20, Col: 3},
			{Field: FieldReference, Row: 22, Col: 3},
			{Field: FieldOriginalReference, Row: 23, Col: 3},
			{Field: FieldSupplierReference, Row: 25, Col: 3},
			{Field: FieldColor, Row: 26, Col: 3},
			{Field: FieldTotalUnits, Row: 27, Col: 3},
			{Field: FieldVCP, Row: 28, Col: 3},
		},
		LabelCol:       7,
		UnitsRowStart:  18,
		UnitsRowEnd:    24,
		DateRowStart:   15,
		DateRowEnd:     24,
		LotColStart:    9,
		LotColEnd:      16,
		UnitsLabel:     "units",
		ShipLabel:      "ship",
		WarehouseLabel: "whs",
	}
}

// FixedExtractor reads fields from absolute sheet coordinates with no label
// search, and discovers shipment lots column by column. Used for layouts
// known to be rigid; the anchor and row limit are ignored because the
// coordinates address the sheet, not the form.
type FixedExtractor struct {
	Layout Layout
	Opts   Options
}

// Extract reads the base fields and every populated lot column.
func (e *FixedExtractor) Extract(g *grid.Grid, _ Anchor, _ int) (FieldRecord, []Lot) {
	rec := make(FieldRecord)
	for _, f := range e.Layout.Base {
		cell := g.Cell(f.Row, f.Col)
		if cell.IsEmpty() {
			continue
		}
		if value := strings.TrimSpace(cell.String()); value != "" {
			rec[f.Field] = value
		}
	}
	return rec, e.extractLots(g)
}

// extractLots emits one Lot per data column whose units cell holds a
// non-zero number. Ship and warehouse dates are read from the same column
// on their label rows; a lot with a parseable ship date also gets a derived
// ex-factory date, ship minus the configured lead time.
func (e *FixedExtractor) extractLots(g *grid.Grid) []Lot {
	unitsRow, ok := e.findLabelRow(g, e.Layout.UnitsRowStart, e.Layout.UnitsRowEnd, e.Layout.UnitsLabel)
	if !ok {
		return nil
	}
	shipRow, hasShip := e.findLabelRow(g, e.Layout.DateRowStart, e.Layout.DateRowEnd, e.Layout.ShipLabel)
	whsRow, hasWhs := e.findLabelRow(g, e.Layout.DateRowStart, e.Layout.DateRowEnd, e.Layout.WarehouseLabel)

	var lots []Lot
	for col := e.Layout.LotColStart; col <= e.Layout.LotColEnd && col < g.Cols(); col++ {
		units := g.Cell(unitsRow, col)
		if units.IsEmpty() || (units.Kind == grid.KindNumber && units.Number == 0) {
			continue
		}

		lot := Lot{
			Number: len(lots) + 1,
			Units:  strings.TrimSpace(units.String()),
		}

		if hasShip {
			if ship := g.Cell(shipRow, col); !ship.IsEmpty() {
				lot.ShipDate = ship.String()
				lot.ShipDateFormatted = FormatCellDate(ship)
				if d, ok := ParseCellDate(ship); ok {
					lot.ExFactory = d.AddDays(-e.Opts.LeadTimeDays).Short()
				}
			}
		}
		if hasWhs {
			if whs := g.Cell(whsRow, col); !whs.IsEmpty() {
				lot.WarehouseDate = whs.String()
				lot.WarehouseFormatted = FormatCellDate(whs)
			}
		}

		lots = append(lots, lot)
	}
	return lots
}

// findLabelRow scans a row band for a label substring in the label column.
func (e *FixedExtractor) findLabelRow(g *grid.Grid, start, end int, label string) (int, bool) {
	for r := start; r <= end && r < g.Rows(); r++ {
		if strings.Contains(g.Cell(r, e.Layout.LabelCol).TrimmedLower(), label) {
			return r, true
		}
	}
	return 0, false
}

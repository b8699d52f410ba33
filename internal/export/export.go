// Package export serializes order-details rows to spreadsheet and CSV
// files with the fixed 14-column schema.
package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/jolanka/booking-cli/internal/extract"
)

// orderSheetName is the sheet the output rows are written to.
const orderSheetName = "Order Details"

// WriteOrderXLSX writes the rows to an XLSX workbook: a bold header row,
// one row per output record, columns sized to their header.
func WriteOrderXLSX(rows []extract.OutputRow, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(orderSheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	headerStyle := xlsx.NewStyle()
	headerStyle.Font.Bold = true
	headerStyle.ApplyFont = true

	header := sheet.AddRow()
	for i, col := range extract.OrderColumns {
		cell := header.AddCell()
		cell.SetString(col)
		cell.SetStyle(headerStyle)

		width := float64(len(col) + 2)
		if width < 12 {
			width = 12
		}
		sheet.SetColWidth(i, i, width)
	}

	for _, row := range rows {
		out := sheet.AddRow()
		for _, v := range row.Values() {
			out.AddCell().SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}
	return nil
}

// WriteOrderCSV writes the rows as a CSV file with the same columns.
func WriteOrderCSV(rows []extract.OutputRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(extract.OrderColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, row := range rows {
		if err := w.Write(row.Values()); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "export: flush csv")
}

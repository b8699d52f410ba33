//go:build !integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/jolanka/booking-cli/internal/config"
	"github.com/jolanka/booking-cli/internal/extract"
	"github.com/jolanka/booking-cli/internal/ingest"
	"github.com/jolanka/booking-cli/internal/store"
)

// writeWorkbook writes rows of string cells to a single-sheet workbook.
func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}
	require.NoError(t, f.Save(path))
}

// bookingRows is a minimal label-mode form: a marker row followed by
// label/value pairs inside the search window.
func bookingRows() [][]string {
	return [][]string{
		{"Booking Form"},
		{},
		{"", "Description", "", "CREW NECK TEE"},
		{"", "Booking Ref", "", "bk-1001"},
		{"", "Colour", "", "NAVY [N45]"},
		{"", "Units", "", "1200"},
		{"", "Ship Date", "", "19 Jul '25"},
	}
}

func TestProcessWorkbook_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bookings.xlsx")
	writeWorkbook(t, src, bookingRows())

	st, err := store.NewSQLite(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Migrate(context.Background()))

	result, err := processWorkbook(context.Background(), src, extract.ModeLabel, extract.DefaultOptions(), ingest.Options{}, st)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Forms)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "1", row.FormNo)
	assert.Equal(t, "CREW NECK TEE", row.Description)
	assert.Equal(t, "BK-1001", row.SupplierReference)
	assert.Equal(t, "NAVY", row.Colour)
	assert.Equal(t, "1200", row.Units)
	assert.Equal(t, "19-Jul", row.BookingDelivery)

	runs, err := st.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, store.RunStatusCompleted, runs[0].Status)
	assert.Equal(t, 1, runs[0].Forms)
	assert.Equal(t, 1, runs[0].Rows)
}

func TestProcessWorkbook_MissingFileFailsRun(t *testing.T) {
	dir := t.TempDir()

	st, err := store.NewSQLite(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Migrate(context.Background()))

	_, err = processWorkbook(context.Background(), filepath.Join(dir, "absent.xlsx"), extract.ModeLabel, extract.DefaultOptions(), ingest.Options{}, st)
	require.Error(t, err)

	runs, err := st.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, store.RunStatusFailed, runs[0].Status)
	assert.NotEmpty(t, runs[0].Error)
}

func TestProcessWorkbook_NilStore(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bookings.xlsx")
	writeWorkbook(t, src, bookingRows())

	result, err := processWorkbook(context.Background(), src, extract.ModeLabel, extract.DefaultOptions(), ingest.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Forms)
}

func TestWriteOutputs_Both(t *testing.T) {
	dir := t.TempDir()
	rows := []extract.OutputRow{{FormNo: "1", Units: "400"}}

	written, err := writeOutputs(rows, "/tmp/my bookings.xlsx", dir, "both")
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, filepath.Join(dir, "order_processing_my bookings.xlsx"), written[0])
	assert.Equal(t, filepath.Join(dir, "order_processing_my bookings.csv"), written[1])
	for _, f := range written {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}
}

func TestWriteOutputs_XLSXOnly(t *testing.T) {
	dir := t.TempDir()

	written, err := writeOutputs(nil, "src.xlsx", dir, "xlsx")
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, ".xlsx", filepath.Ext(written[0]))
}

func TestExtractOptions_Mapping(t *testing.T) {
	c := &config.Config{}
	c.Extract.Marker = "order form"
	c.Extract.LookaheadRows = 30
	c.Extract.ColsBefore = 1
	c.Extract.ColsAfter = 5
	c.Extract.ValueOffsets = []int{1, 2}
	c.Extract.LeadTimeDays = 10

	opts := extractOptions(c)
	assert.Equal(t, "order form", opts.Marker)
	assert.Equal(t, 30, opts.LookaheadRows)
	assert.Equal(t, 1, opts.ColsBefore)
	assert.Equal(t, 5, opts.ColsAfter)
	assert.Equal(t, []int{1, 2}, opts.ValueOffsets)
	assert.Equal(t, 10, opts.LeadTimeDays)
}

func TestExtractOptions_Defaults(t *testing.T) {
	opts := extractOptions(&config.Config{})
	assert.Equal(t, extract.DefaultOptions(), opts)
}

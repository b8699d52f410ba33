package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jolanka/booking-cli/internal/grid"
)

// rigidForm builds a grid shaped like the rigid booking form layout and
// applies per-cell overrides on top of the base fields.
func rigidForm(t *testing.T, set map[[2]int]grid.Cell) *grid.Grid {
	t.Helper()
	rows := make([][]grid.Cell, 32)
	for i := range rows {
		rows[i] = make([]grid.Cell, 18)
	}
	base := map[[2]int]grid.Cell{
		{14, 3}: grid.Text("ACME FACTORY [F123]"),
		{20, 3}: grid.Text("CREW NECK TEE"),
		{22, 3}: grid.Text("bk-1001"),
		{23, 3}: grid.Text("BK-900"),
		{25, 3}: grid.Text("SUP-77"),
		{26, 3}: grid.Text("NAVY [N45]"),
		{27, 3}: grid.Number(1200),
		{28, 3}: grid.Text("4.50"),
		{19, 7}: grid.Text("Ship Date"),
		{20, 7}: grid.Text("Whs Date"),
		{21, 7}: grid.Text("Units"),
	}
	for pos, c := range base {
		rows[pos[0]][pos[1]] = c
	}
	for pos, c := range set {
		rows[pos[0]][pos[1]] = c
	}
	return grid.New(rows)
}

func fixedExtractor() *FixedExtractor {
	return &FixedExtractor{Layout: DefaultLayout(), Opts: DefaultOptions()}
}

func TestFixedExtract_BaseFields(t *testing.T) {
	g := rigidForm(t, nil)

	rec, lots := fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	assert.Empty(t, lots, "no populated unit columns means no lots")
	assert.Equal(t, "ACME FACTORY [F123]", rec.Get(FieldFactory))
	assert.Equal(t, "CREW NECK TEE", rec.Get(FieldDescription))
	assert.Equal(t, "bk-1001", rec.Get(FieldReference))
	assert.Equal(t, "BK-900", rec.Get(FieldOriginalReference))
	assert.Equal(t, "SUP-77", rec.Get(FieldSupplierReference))
	assert.Equal(t, "NAVY [N45]", rec.Get(FieldColor))
	assert.Equal(t, "1200", rec.Get(FieldTotalUnits), "integral count renders without decimal point")
	assert.Equal(t, "4.50", rec.Get(FieldVCP))
}

func TestFixedExtract_MultiLot(t *testing.T) {
	g := rigidForm(t, map[[2]int]grid.Cell{
		{21, 9}:  grid.Number(400),
		{21, 11}: grid.Number(0), // zero units: not a lot
		{21, 12}: grid.Number(800),
		{19, 9}:  grid.Text("19 Jul '25"),
		{19, 12}: grid.Text("2025-08-05 00:00:00"),
		{20, 9}:  grid.Text("2025-08-02 00:00:00"),
	})

	_, lots := fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	require.Len(t, lots, 2)

	assert.Equal(t, 1, lots[0].Number)
	assert.Equal(t, "400", lots[0].Units)
	assert.Equal(t, "19 Jul '25", lots[0].ShipDate)
	assert.Equal(t, "19-Jul", lots[0].ShipDateFormatted)
	assert.Equal(t, "7-Jul", lots[0].ExFactory, "ex-factory is ship minus twelve days")
	assert.Equal(t, "2025-08-02 00:00:00", lots[0].WarehouseDate)
	assert.Equal(t, "2-Aug", lots[0].WarehouseFormatted)

	assert.Equal(t, 2, lots[1].Number, "lot numbers follow column discovery order")
	assert.Equal(t, "800", lots[1].Units)
	assert.Equal(t, "5-Aug", lots[1].ShipDateFormatted)
	assert.Equal(t, "24-Jul", lots[1].ExFactory)
	assert.Empty(t, lots[1].WarehouseDate)
}

func TestFixedExtract_UnparseableShipDateOmitsExFactory(t *testing.T) {
	g := rigidForm(t, map[[2]int]grid.Cell{
		{21, 9}: grid.Number(100),
		{19, 9}: grid.Text("mid July"),
	})

	_, lots := fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	require.Len(t, lots, 1)
	assert.Equal(t, "mid July", lots[0].ShipDate, "raw value survives")
	assert.Empty(t, lots[0].ShipDateFormatted)
	assert.Empty(t, lots[0].ExFactory, "derived date is omitted, not an error")
}

func TestFixedExtract_NoUnitsRowMeansNoLots(t *testing.T) {
	g := rigidForm(t, map[[2]int]grid.Cell{
		{21, 7}: {}, // blank out the units label
		{21, 9}: grid.Number(500),
	})

	_, lots := fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	assert.Empty(t, lots)
}

func TestFixedExtract_LabelBandsStopBeforeRow25(t *testing.T) {
	// The search bands end at row 24; labels sitting on row 25 are invisible.
	g := rigidForm(t, map[[2]int]grid.Cell{
		{21, 7}: {},
		{25, 7}: grid.Text("Units"),
		{25, 9}: grid.Number(500),
	})

	_, lots := fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	assert.Empty(t, lots, "units label below the band must not be found")

	g = rigidForm(t, map[[2]int]grid.Cell{
		{19, 7}: {},
		{25, 7}: grid.Text("Ship Date"),
		{21, 9}: grid.Number(400),
		{25, 9}: grid.Text("19 Jul '25"),
	})

	_, lots = fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	require.Len(t, lots, 1)
	assert.Empty(t, lots[0].ShipDate, "date label below the band must not be found")
	assert.Empty(t, lots[0].ExFactory)
}

func TestFixedExtract_TextUnitsCountAsLot(t *testing.T) {
	g := rigidForm(t, map[[2]int]grid.Cell{
		{21, 10}: grid.Text("350 pcs"),
	})

	_, lots := fixedExtractor().Extract(g, Anchor{Seq: 1}, g.Rows())
	require.Len(t, lots, 1)
	assert.Equal(t, "350 pcs", lots[0].Units)
}

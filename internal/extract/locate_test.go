package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jolanka/booking-cli/internal/grid"
)

// textGrid builds a grid from string rows; "" cells stay empty.
func textGrid(t *testing.T, rows [][]string) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]grid.Cell, len(row))
		for j, s := range row {
			if s != "" {
				cells[i][j] = grid.Text(s)
			}
		}
	}
	return grid.New(cells)
}

func TestLocateForms_RowMajorOrder(t *testing.T) {
	g := textGrid(t, [][]string{
		{"", "", ""},
		{"", "BOOKING FORM - SUMMER", ""},
		{"", "", ""},
		{"Booking Form (revised)", "", ""},
	})

	anchors := LocateForms(g, "booking form")
	require.Len(t, anchors, 2)
	assert.Equal(t, Anchor{Row: 1, Col: 1, Seq: 1}, anchors[0])
	assert.Equal(t, Anchor{Row: 3, Col: 0, Seq: 2}, anchors[1])
}

func TestLocateForms_CaseInsensitiveAndTrimmed(t *testing.T) {
	g := textGrid(t, [][]string{
		{"  bOoKiNg FoRm  "},
	})

	anchors := LocateForms(g, "booking form")
	require.Len(t, anchors, 1)
	assert.Equal(t, 1, anchors[0].Seq)
}

func TestLocateForms_FallbackSingleAnchor(t *testing.T) {
	g := textGrid(t, [][]string{
		{"Description", "CREW NECK TEE"},
	})

	anchors := LocateForms(g, "booking form")
	require.Len(t, anchors, 1)
	assert.Equal(t, Anchor{Row: 0, Col: 0, Seq: 1}, anchors[0])
}

func TestLocateForms_SameRowLeftToRight(t *testing.T) {
	g := textGrid(t, [][]string{
		{"", "booking form B", "", "booking form A"},
	})

	anchors := LocateForms(g, "booking form")
	require.Len(t, anchors, 2)
	assert.Equal(t, 1, anchors[0].Col)
	assert.Equal(t, 3, anchors[1].Col)
}

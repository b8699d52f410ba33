package extract

import (
	"strings"

	"github.com/jolanka/booking-cli/internal/grid"
)

// Anchor marks the starting locus of one form: its grid position plus a
// 1-based sequence number assigned in row-major discovery order.
type Anchor struct {
	Row int
	Col int
	Seq int
}

// LocateForms scans the grid row-major for cells whose text contains the
// boundary marker (case-insensitive, trimmed). When no marker is present
// the whole sheet is treated as a single form anchored at the origin.
// Anchors are never discarded here; forms with no usable data are filtered
// during aggregation.
func LocateForms(g *grid.Grid, marker string) []Anchor {
	marker = strings.ToLower(strings.TrimSpace(marker))

	var anchors []Anchor
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if strings.Contains(g.Cell(r, c).TrimmedLower(), marker) {
				anchors = append(anchors, Anchor{Row: r, Col: c, Seq: len(anchors) + 1})
			}
		}
	}

	if len(anchors) == 0 {
		anchors = append(anchors, Anchor{Row: 0, Col: 0, Seq: 1})
	}
	return anchors
}

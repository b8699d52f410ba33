package extract

import "github.com/jolanka/booking-cli/internal/grid"

// Extractor recovers one form's fields (and optional lots) from the grid.
// Two strategies implement it: windowed label search for free-form layouts
// and fixed addressing for rigid ones. The strategy is chosen once per
// invocation, never mixed within a form.
type Extractor interface {
	// Extract reads the form at anchor. limitRow is the exclusive row bound
	// of the form's region (the next form's anchor row, or the grid extent
	// for the last form).
	Extract(g *grid.Grid, anchor Anchor, limitRow int) (FieldRecord, []Lot)
}

// Mode names an extraction strategy.
type Mode string

const (
	ModeLabel Mode = "label"
	ModeFixed Mode = "fixed"
)

// NewExtractor returns the extractor for a mode.
func NewExtractor(mode Mode, opts Options) Extractor {
	switch mode {
	case ModeFixed:
		return &FixedExtractor{Layout: DefaultLayout(), Opts: opts}
	default:
		return &LabelExtractor{Patterns: DefaultPatterns(), Opts: opts}
	}
}

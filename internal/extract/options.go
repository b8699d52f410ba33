package extract

// Options carries the tunable extraction parameters. The defaults encode
// the layouts seen in production booking forms; sheets with denser or wider
// layouts can override them through configuration without touching the
// search logic.
type Options struct {
	// Marker is the case-insensitive substring that identifies a form
	// boundary cell.
	Marker string

	// LookaheadRows bounds a form's search window below its anchor.
	LookaheadRows int

	// ColsBefore and ColsAfter bound the window around the anchor column.
	ColsBefore int
	ColsAfter  int

	// ValueOffsets are the column offsets probed to the right of a matched
	// label cell, in order.
	ValueOffsets []int

	// LeadTimeDays is subtracted from a lot's ship date to derive its
	// ex-factory date.
	LeadTimeDays int
}

// DefaultOptions returns the production form layout parameters.
func DefaultOptions() Options {
	return Options{
		Marker:        "booking form",
		LookaheadRows: 50,
		ColsBefore:    2,
		ColsAfter:     8,
		ValueOffsets:  []int{1, 2, 3},
		LeadTimeDays:  12,
	}
}

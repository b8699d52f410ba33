package extract

import (
	"go.uber.org/zap"

	"github.com/jolanka/booking-cli/internal/grid"
)

// Aggregate runs the full extraction over a grid: locate every form anchor,
// extract each form with the given strategy, normalize bracket codes and
// dates, and keep only forms with usable data. Form numbers follow anchor
// discovery order and are stable for a given grid.
func Aggregate(g *grid.Grid, ext Extractor, opts Options) []Form {
	anchors := LocateForms(g, opts.Marker)

	var forms []Form
	for i, anchor := range anchors {
		limitRow := g.Rows()
		if i+1 < len(anchors) {
			limitRow = anchors[i+1].Row
		}

		rec, lots := ext.Extract(g, anchor, limitRow)
		normalize(rec)

		if !rec.Usable() {
			zap.L().Debug("extract: dropping form with no usable fields",
				zap.Int("form", anchor.Seq),
				zap.Int("row", anchor.Row),
			)
			continue
		}

		forms = append(forms, Form{
			Number: anchor.Seq,
			Fields: rec,
			Lots:   lots,
		})
	}
	return forms
}

// normalize splits bracket codes out of the factory and color fields and
// appends a formatted companion for every captured date field. Every step
// degrades silently; a value that fails to normalize keeps its raw form.
func normalize(rec FieldRecord) {
	if v, ok := rec[FieldFactory]; ok {
		if base, code := SplitBracket(v); code != "" {
			rec[FieldFactory] = base
			rec[FieldFactoryID] = code
		}
	}
	if v, ok := rec[FieldColor]; ok {
		if base, code := SplitBracket(v); code != "" {
			rec[FieldColor] = base
			rec[FieldColorCode] = code
		}
	}

	for field, formatted := range dateFields {
		raw, ok := rec[field]
		if !ok {
			continue
		}
		if text := FormatDateText(raw); text != "" {
			rec[formatted] = text
		}
	}
}

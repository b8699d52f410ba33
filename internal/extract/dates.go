package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jolanka/booking-cli/internal/grid"
)

// Date is a fully resolved calendar date recovered from one of the known
// booking form date shapes.
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// canonicalRe matches already-formatted "D-Mon" text, e.g. "19-Jul".
var canonicalRe = regexp.MustCompile(`^\d{1,2}-[A-Za-z]{3}$`)

// ParseDate parses one of the two textual date shapes the forms use:
//
//	"19 Jul '25"            day, 3-letter month, apostrophe 2-digit year
//	"2025-07-19 00:00:00"   ISO date with a time suffix
//
// Unrecognized shapes return ok=false; callers decide whether absence is
// acceptable.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}

	if strings.Contains(s, "'") {
		parts := strings.Fields(s)
		if len(parts) < 3 {
			return Date{}, false
		}
		day, err := strconv.Atoi(parts[0])
		if err != nil || day < 1 || day > 31 {
			return Date{}, false
		}
		month, ok := monthAbbrevs[strings.ToLower(parts[1])]
		if !ok {
			return Date{}, false
		}
		yearText := strings.TrimPrefix(parts[2], "'")
		if len(yearText) != 2 {
			return Date{}, false
		}
		year, err := strconv.Atoi(yearText)
		if err != nil {
			return Date{}, false
		}
		return Date{Day: day, Month: month, Year: 2000 + year}, true
	}

	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return Date{Day: t.Day(), Month: t.Month(), Year: t.Year()}, true
	}

	return Date{}, false
}

// ParseCellDate parses a date from a cell: native date/time values are read
// directly, text values go through ParseDate.
func ParseCellDate(c grid.Cell) (Date, bool) {
	if c.Kind == grid.KindTime {
		t := c.Time
		return Date{Day: t.Day(), Month: t.Month(), Year: t.Year()}, true
	}
	return ParseDate(c.String())
}

// Short renders the date in canonical "D-Mon" form with no leading zero.
func (d Date) Short() string {
	return fmt.Sprintf("%d-%s", d.Day, d.Month.String()[:3])
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{Day: t.Day(), Month: t.Month(), Year: t.Year()}
}

// FormatDateText renders raw date text in canonical "D-Mon" form. Text that
// is already canonical passes through unchanged, so formatting is a no-op on
// its own output. Unparseable text yields "" — a deliberate degradation, the
// raw value remains available to the fallback chains.
func FormatDateText(s string) string {
	s = strings.TrimSpace(s)
	if canonicalRe.MatchString(s) {
		return s
	}
	d, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return d.Short()
}

// FormatCellDate renders a cell's date value in canonical "D-Mon" form, or
// "" when the cell holds no recognizable date.
func FormatCellDate(c grid.Cell) string {
	if c.Kind == grid.KindTime {
		d, _ := ParseCellDate(c)
		return d.Short()
	}
	return FormatDateText(c.String())
}

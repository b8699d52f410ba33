package extract

import "strings"

// missingSentinels are values treated as equivalent to absent. The
// comparison is case-sensitive: these are the literal tokens Excel and the
// form authors emit, not a general NA vocabulary.
var missingSentinels = map[string]bool{
	"#N/A": true,
	"N/A":  true,
}

// IsMissing reports whether a value is empty, whitespace-only, or one of
// the missing-sentinel tokens.
func IsMissing(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed == "" || missingSentinels[trimmed]
}

// SplitBracket splits "NAME [CODE]" into its base value and bracket code.
// The base is the trimmed text before the first "["; the code is the
// interior of the first "[...]" group. Text without brackets returns
// (text, "") unchanged.
func SplitBracket(s string) (base, code string) {
	open := strings.Index(s, "[")
	if open < 0 {
		return s, ""
	}
	base = strings.TrimSpace(s[:open])
	rest := s[open+1:]
	if close := strings.Index(rest, "]"); close >= 0 {
		code = strings.TrimSpace(rest[:close])
	} else {
		code = strings.TrimSpace(rest)
	}
	return base, code
}

package httpdate

import (
	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

// ParseLenient performs best-effort parsing of an HTTP-date.
// It never returns an error for malformed input; instead it recovers
// whatever it can and reports each deviation as a Warning.
//
// Well-formed input yields OK and no warnings. Beyond that, the lenient
// parser additionally accepts:
//   - Names in any letter case, and full month names.
//   - Any amount of whitespace between fields, in any order.
//   - "UTC", "UT" or "Z" in place of "GMT", or no zone at all.
//   - A missing or wrong weekday, which is recomputed from the date.
//   - A missing time of day or missing seconds, taken as zero.
//
// OK is false when no valid date can be assembled, e.g. when the day,
// month or year is missing or the date does not exist.
func ParseLenient(input string) *ParseResult {
	return UnmarshalLenient([]byte(input))
}

// UnmarshalLenient is ParseLenient for a byte slice.
func UnmarshalLenient(data []byte) *ParseResult {
	lp := fastparser.NewLenientParser(data)
	internal := lp.Parse()

	result := &ParseResult{
		Warnings: internal.Warnings,
		OK:       internal.OK,
	}
	if internal.OK {
		result.Date = fromInternal(internal.Date)
	}
	return result
}

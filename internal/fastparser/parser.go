package fastparser

import (
	"fmt"
)

// CenturyPivot splits two-digit RFC 850 years: years below it are in the
// 2000s, the rest in the 1900s.
const CenturyPivot = 70

// Fixed lengths of the layouts.
const (
	IMFFixdateLen   = len("Sun, 06 Nov 1994 08:49:37 GMT")
	AsctimeLen      = len("Sun Nov  6 08:49:37 1994")
	rfc850SuffixLen = len("06-Nov-94 08:49:37 GMT")
	rfc850MinLen    = len("Friday, ") + rfc850SuffixLen
)

// ParseError describes why a byte slice is not a date in the attempted
// layout. Position is the offset of the offending byte, or -1 when the
// layout as a whole did not fit.
type ParseError struct {
	Format   Format
	Message  string
	Position int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("httpdate: %s: %s at position %d", e.Format, e.Message, e.Position)
	}
	return fmt.Sprintf("httpdate: %s: %s", e.Format, e.Message)
}

// Failures are preallocated so that rejecting input does not allocate either.
var (
	errIMFLayout     = &ParseError{Format: FormatIMFFixdate, Message: "layout mismatch", Position: -1}
	errIMFWeekday    = &ParseError{Format: FormatIMFFixdate, Message: "unknown weekday", Position: 0}
	errIMFDay        = &ParseError{Format: FormatIMFFixdate, Message: "invalid day", Position: 5}
	errIMFMonth      = &ParseError{Format: FormatIMFFixdate, Message: "unknown month", Position: 8}
	errIMFYear       = &ParseError{Format: FormatIMFFixdate, Message: "invalid year", Position: 12}
	errIMFHour       = &ParseError{Format: FormatIMFFixdate, Message: "invalid hour", Position: 17}
	errIMFMin        = &ParseError{Format: FormatIMFFixdate, Message: "invalid minute", Position: 20}
	errIMFSec        = &ParseError{Format: FormatIMFFixdate, Message: "invalid second", Position: 23}
	errRFC850Weekday = &ParseError{Format: FormatRFC850, Message: "unknown weekday", Position: 0}
	errRFC850Layout  = &ParseError{Format: FormatRFC850, Message: "layout mismatch", Position: -1}
	errRFC850Day     = &ParseError{Format: FormatRFC850, Message: "invalid day", Position: -1}
	errRFC850Month   = &ParseError{Format: FormatRFC850, Message: "unknown month", Position: -1}
	errRFC850Year    = &ParseError{Format: FormatRFC850, Message: "invalid year", Position: -1}
	errRFC850Time    = &ParseError{Format: FormatRFC850, Message: "invalid time of day", Position: -1}
	errAscLayout     = &ParseError{Format: FormatAsctime, Message: "layout mismatch", Position: -1}
	errAscWeekday    = &ParseError{Format: FormatAsctime, Message: "unknown weekday", Position: 0}
	errAscMonth      = &ParseError{Format: FormatAsctime, Message: "unknown month", Position: 4}
	errAscDay        = &ParseError{Format: FormatAsctime, Message: "invalid day", Position: 8}
	errAscHour       = &ParseError{Format: FormatAsctime, Message: "invalid hour", Position: 11}
	errAscMin        = &ParseError{Format: FormatAsctime, Message: "invalid minute", Position: 14}
	errAscSec        = &ParseError{Format: FormatAsctime, Message: "invalid second", Position: 17}
	errAscYear       = &ParseError{Format: FormatAsctime, Message: "invalid year", Position: 20}
	errNoFormat      = &ParseError{Format: FormatUnknown, Message: "no supported date format matched", Position: -1}
)

// Parse tries the IMF-fixdate, RFC 850 and asctime layouts in that order
// and returns the first structural match. It does not check that the result
// is a real calendar date; see Valid.
func Parse(data []byte) (Date, error) {
	if d, err := ParseIMFFixdate(data); err == nil {
		return d, nil
	}
	if d, err := ParseRFC850(data); err == nil {
		return d, nil
	}
	if d, err := ParseAsctime(data); err == nil {
		return d, nil
	}
	return Date{}, errNoFormat
}

// ParseIMFFixdate parses "Sun, 06 Nov 1994 08:49:37 GMT".
func ParseIMFFixdate(s []byte) (Date, error) {
	if len(s) != IMFFixdateLen ||
		s[3] != ',' || s[4] != ' ' || s[7] != ' ' || s[11] != ' ' ||
		s[16] != ' ' || s[19] != ':' || s[22] != ':' ||
		string(s[25:]) != " GMT" {
		return Date{}, errIMFLayout
	}

	var d Date
	var ok bool
	if d.Wday, ok = lookupShortDay(s[0:3]); !ok {
		return Date{}, errIMFWeekday
	}
	if d.Day, ok = toInt2(s[5:7]); !ok {
		return Date{}, errIMFDay
	}
	if d.Mon, ok = lookupMonth(s[8:11]); !ok {
		return Date{}, errIMFMonth
	}
	if d.Year, ok = toInt4(s[12:16]); !ok {
		return Date{}, errIMFYear
	}
	if d.Hour, ok = toInt2(s[17:19]); !ok {
		return Date{}, errIMFHour
	}
	if d.Min, ok = toInt2(s[20:22]); !ok {
		return Date{}, errIMFMin
	}
	if d.Sec, ok = toInt2(s[23:25]); !ok {
		return Date{}, errIMFSec
	}
	d.Format = FormatIMFFixdate
	return d, nil
}

// ParseRFC850 parses "Sunday, 06-Nov-94 08:49:37 GMT". The weekday is
// spelled out, so only the 22-byte tail after "<weekday>, " has a fixed
// layout.
func ParseRFC850(s []byte) (Date, error) {
	if len(s) < rfc850MinLen {
		return Date{}, errRFC850Layout
	}

	var d Date
	for i, name := range longDayNames {
		n := len(name)
		if len(s) > n+1 && string(s[:n]) == name && s[n] == ',' && s[n+1] == ' ' {
			d.Wday = uint8(i + 1)
			s = s[n+2:]
			break
		}
	}
	if d.Wday == 0 {
		return Date{}, errRFC850Weekday
	}

	// 06-Nov-94 08:49:37 GMT
	if len(s) != rfc850SuffixLen ||
		s[2] != '-' || s[6] != '-' || s[9] != ' ' ||
		s[12] != ':' || s[15] != ':' ||
		string(s[18:]) != " GMT" {
		return Date{}, errRFC850Layout
	}

	var ok bool
	if d.Day, ok = toInt2(s[0:2]); !ok {
		return Date{}, errRFC850Day
	}
	if d.Mon, ok = lookupMonth(s[3:6]); !ok {
		return Date{}, errRFC850Month
	}
	yy, ok := toInt2(s[7:9])
	if !ok {
		return Date{}, errRFC850Year
	}
	d.Year = expandYear(yy)
	if d.Hour, ok = toInt2(s[10:12]); !ok {
		return Date{}, errRFC850Time
	}
	if d.Min, ok = toInt2(s[13:15]); !ok {
		return Date{}, errRFC850Time
	}
	if d.Sec, ok = toInt2(s[16:18]); !ok {
		return Date{}, errRFC850Time
	}
	d.Format = FormatRFC850
	return d, nil
}

// ParseAsctime parses "Sun Nov  6 08:49:37 1994". A single-digit day is
// padded with a space.
func ParseAsctime(s []byte) (Date, error) {
	if len(s) != AsctimeLen ||
		s[3] != ' ' || s[7] != ' ' || s[10] != ' ' ||
		s[13] != ':' || s[16] != ':' || s[19] != ' ' {
		return Date{}, errAscLayout
	}

	var d Date
	var ok bool
	if d.Wday, ok = lookupShortDay(s[0:3]); !ok {
		return Date{}, errAscWeekday
	}
	if d.Mon, ok = lookupMonth(s[4:7]); !ok {
		return Date{}, errAscMonth
	}
	if s[8] == ' ' {
		d.Day, ok = toInt1(s[9])
	} else {
		d.Day, ok = toInt2(s[8:10])
	}
	if !ok {
		return Date{}, errAscDay
	}
	if d.Hour, ok = toInt2(s[11:13]); !ok {
		return Date{}, errAscHour
	}
	if d.Min, ok = toInt2(s[14:16]); !ok {
		return Date{}, errAscMin
	}
	if d.Sec, ok = toInt2(s[17:19]); !ok {
		return Date{}, errAscSec
	}
	if d.Year, ok = toInt4(s[20:24]); !ok {
		return Date{}, errAscYear
	}
	d.Format = FormatAsctime
	return d, nil
}

// expandYear maps a two-digit RFC 850 year onto 1970-2069.
func expandYear(yy uint8) uint16 {
	if yy < CenturyPivot {
		return 2000 + uint16(yy)
	}
	return 1900 + uint16(yy)
}

// toInt1 converts a single ASCII digit.
func toInt1(c byte) (uint8, bool) {
	n := c - '0'
	return n, n < 10
}

// toInt2 converts exactly two ASCII digits.
func toInt2(s []byte) (uint8, bool) {
	hi := s[0] - '0'
	lo := s[1] - '0'
	if hi >= 10 || lo >= 10 {
		return 0, false
	}
	return hi*10 + lo, true
}

// toInt4 converts exactly four ASCII digits.
func toInt4(s []byte) (uint16, bool) {
	a := uint16(s[0] - '0')
	b := uint16(s[1] - '0')
	c := uint16(s[2] - '0')
	d := uint16(s[3] - '0')
	if a >= 10 || b >= 10 || c >= 10 || d >= 10 {
		return 0, false
	}
	return a*1000 + b*100 + c*10 + d, true
}

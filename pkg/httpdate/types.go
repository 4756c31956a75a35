// Package httpdate parses and formats the date formats used in HTTP headers
// per RFC 9110 section 5.6.7.
//
// Three formats are accepted on input:
//
//	Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
//	Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
//	Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format
//
// Only IMF-fixdate is ever produced. Dates are limited to the years
// 1970 through 9999 and are always in GMT.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. HttpDate is an immutable value. A Clock may be shared; a
// Decoder or Encoder may not.
//
// # Parsing APIs
//
//   - Parse/ParseUnix/ParseDate - Fast strict parsing
//   - ParseAST - AST-based parsing via shape-core
//   - ParseLenient - Best-effort parsing with warnings
//   - NewDecoder - Streaming io.Reader-based parsing, one date per line
package httpdate

import (
	"time"

	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

// HttpDate is a broken-down HTTP-date. The zero value is not a valid date;
// obtain one from a parser or from an instant.
//
// Two HttpDates compare equal with == exactly when they denote the same
// instant.
type HttpDate struct {
	sec  uint8
	min  uint8
	hour uint8
	day  uint8
	mon  uint8
	year uint16
	wday uint8 // 1 is Monday
}

// Year returns the year, 1970 through 9999.
func (d HttpDate) Year() int { return int(d.year) }

// Month returns the month of the year.
func (d HttpDate) Month() time.Month { return time.Month(d.mon) }

// Day returns the day of the month.
func (d HttpDate) Day() int { return int(d.day) }

// Hour returns the hour, 0 through 23.
func (d HttpDate) Hour() int { return int(d.hour) }

// Minute returns the minute, 0 through 59.
func (d HttpDate) Minute() int { return int(d.min) }

// Second returns the second, 0 through 59.
func (d HttpDate) Second() int { return int(d.sec) }

// Weekday returns the day of the week.
func (d HttpDate) Weekday() time.Weekday { return time.Weekday(d.wday % 7) }

func fromInternal(d fastparser.Date) HttpDate {
	return HttpDate{
		sec:  d.Sec,
		min:  d.Min,
		hour: d.Hour,
		day:  d.Day,
		mon:  d.Mon,
		year: d.Year,
		wday: d.Wday,
	}
}

func (d HttpDate) internal() fastparser.Date {
	return fastparser.Date{
		Sec:    d.sec,
		Min:    d.min,
		Hour:   d.hour,
		Day:    d.day,
		Mon:    d.mon,
		Year:   d.year,
		Wday:   d.wday,
		Format: fastparser.FormatIMFFixdate,
	}
}

// Marshaler is the interface implemented by types that can marshal
// themselves into an HTTP-date.
type Marshaler interface {
	MarshalHTTPDate() (HttpDate, error)
}

// ParseResult holds the result of lenient parsing.
type ParseResult struct {
	Date     HttpDate // valid only if OK
	Warnings []string // non-fatal issues
	OK       bool     // true if a complete, valid date was recovered
}

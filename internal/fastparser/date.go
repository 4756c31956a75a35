// Package fastparser implements the strict, allocation-free HTTP-date
// parsers. Each parser checks a fixed layout at fixed byte offsets before it
// converts any digits, and scans bytes directly into a Date.
package fastparser

import "github.com/shapestone/shape-httpdate/internal/calendar"

// Format identifies the wire format a Date was read from:
//
//	FormatIMFFixdate  Sun, 06 Nov 1994 08:49:37 GMT
//	FormatRFC850      Sunday, 06-Nov-94 08:49:37 GMT
//	FormatAsctime     Sun Nov  6 08:49:37 1994
type Format uint8

const (
	FormatUnknown Format = iota
	FormatIMFFixdate
	FormatRFC850
	FormatAsctime
)

// String returns the name used for f in ASTs and CLI output.
func (f Format) String() string {
	switch f {
	case FormatIMFFixdate:
		return "imf-fixdate"
	case FormatRFC850:
		return "rfc850"
	case FormatAsctime:
		return "asctime"
	}
	return "unknown"
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) Format {
	switch s {
	case "imf-fixdate":
		return FormatIMFFixdate
	case "rfc850":
		return FormatRFC850
	case "asctime":
		return FormatAsctime
	}
	return FormatUnknown
}

// Date is a raw broken-down HTTP-date. A parser fills in every field from
// the input text; nothing guarantees the fields describe a real date until
// Valid has been checked.
type Date struct {
	Sec  uint8  // 0...59
	Min  uint8  // 0...59
	Hour uint8  // 0...23
	Day  uint8  // 1...31
	Mon  uint8  // 1...12
	Year uint16 // 1970...9999
	Wday uint8  // 1...7, Monday is 1

	Format Format
}

// Unix returns the seconds since the epoch described by the date and time
// fields of d. Wday is ignored. d must be valid.
func (d Date) Unix() int64 {
	return calendar.ToUnix(int(d.Year), int(d.Mon), int(d.Day), int(d.Hour), int(d.Min), int(d.Sec))
}

// FromUnix breaks secs down into a Date. secs must be in
// [0, calendar.MaxUnix); the result is always valid.
func FromUnix(secs int64) Date {
	year, mon, day, hour, min, sec := calendar.FromUnix(secs)
	return Date{
		Sec:  uint8(sec),
		Min:  uint8(min),
		Hour: uint8(hour),
		Day:  uint8(day),
		Mon:  uint8(mon),
		Year: uint16(year),
		Wday: uint8(calendar.WeekdayOfUnix(secs)),
	}
}

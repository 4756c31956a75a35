package fastparser

import "github.com/shapestone/shape-httpdate/internal/calendar"

// Valid reports whether every field of d is in range, the day exists in its
// month, and the weekday agrees with the calendar.
func Valid(d Date) bool {
	return d.Sec < 60 &&
		d.Min < 60 &&
		d.Hour < 24 &&
		d.Day > 0 &&
		d.Mon > 0 && d.Mon <= 12 &&
		d.Year >= 1970 && d.Year <= 9999 &&
		int(d.Day) <= calendar.DaysInMonth(int(d.Year), int(d.Mon)) &&
		int(d.Wday) == calendar.Weekday(int(d.Year), int(d.Mon), int(d.Day))
}

// IsASCII reports whether data contains only 7-bit bytes.
func IsASCII(data []byte) bool {
	for _, c := range data {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// TrimSpace trims leading and trailing ASCII whitespace: SP, HTAB, LF, VT,
// FF and CR.
func TrimSpace(s []byte) []byte {
	for len(s) > 0 && isSpace(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && isSpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func isSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

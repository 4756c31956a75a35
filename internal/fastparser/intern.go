package fastparser

// Name tables for weekdays and months.
//
// The Go compiler optimizes map lookups with string([]byte) keys
// to avoid allocating the temporary string (the mapaccess optimization).
// This means lookupMonth(someBytes) is zero-alloc.

// dayNames and monthNames hold the three-letter names back to back, so the
// name of weekday w (1-7) is dayNames[3*(w-1):3*w].
const (
	dayNames   = "MonTueWedThuFriSatSun"
	monthNames = "JanFebMarAprMayJunJulAugSepOctNovDec"
)

// longDayNames is indexed by weekday - 1.
var longDayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var shortDays = map[string]uint8{
	"Mon": 1, "Tue": 2, "Wed": 3, "Thu": 4,
	"Fri": 5, "Sat": 6, "Sun": 7,
}

var months = map[string]uint8{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4,
	"May": 5, "Jun": 6, "Jul": 7, "Aug": 8,
	"Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// lookupShortDay returns the weekday for an exact three-letter name.
func lookupShortDay(b []byte) (uint8, bool) {
	w, ok := shortDays[string(b)]
	return w, ok
}

// lookupMonth returns the month for an exact three-letter name.
func lookupMonth(b []byte) (uint8, bool) {
	m, ok := months[string(b)]
	return m, ok
}

// unknownName stands in for a weekday or month out of range.
const unknownName = "???"

// ShortDayName returns the three-letter name of weekday w (1-7).
func ShortDayName(w uint8) string {
	if w < 1 || w > 7 {
		return unknownName
	}
	return dayNames[3*(w-1) : 3*w]
}

// LongDayName returns the full name of weekday w (1-7).
func LongDayName(w uint8) string {
	if w < 1 || w > 7 {
		return unknownName
	}
	return longDayNames[w-1]
}

// MonthName returns the three-letter name of month m (1-12).
func MonthName(m uint8) string {
	if m < 1 || m > 12 {
		return unknownName
	}
	return monthNames[3*(m-1) : 3*m]
}

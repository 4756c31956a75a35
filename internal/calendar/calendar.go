// Package calendar implements proleptic Gregorian calendar arithmetic over
// the range of dates an HTTP-date can carry (1970-01-01 through 9999-12-31).
//
// All functions are pure and total over range-checked input. None of them
// validate their arguments; callers check ranges before use.
package calendar

const (
	// SecondsPerDay is the length of a day. HTTP-dates carry no leap seconds.
	SecondsPerDay = 86400

	// MaxUnix is the first Unix second of the year 10000.
	MaxUnix = 253402300800

	// Days in a given period of years.
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// Days between 0001-01-01 and 1970-01-01.
	unixToInternal = 719162
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// DaysFromCivil returns the number of days between 1970-01-01 and the given
// date. The result is negative for dates before the epoch.
func DaysFromCivil(year, month, day int) int64 {
	y := int64(year - 1)
	days := y*365 + y/4 - y/100 + y/400
	days += int64(daysBefore[month-1] + day - 1)
	if month > 2 && IsLeap(year) {
		days++
	}
	return days - unixToInternal
}

// Weekday returns the day of the week of the given date, 1 for Monday
// through 7 for Sunday.
func Weekday(year, month, day int) int {
	return weekdayOfDays(DaysFromCivil(year, month, day))
}

// weekdayOfDays maps days since the epoch to 1..7. 1970-01-01 was a Thursday.
func weekdayOfDays(days int64) int {
	w := (days + 3) % 7
	if w < 0 {
		w += 7
	}
	return int(w) + 1
}

// ToUnix returns the number of seconds between 1970-01-01T00:00:00Z and the
// given civil date and time of day, interpreted as GMT.
func ToUnix(year, month, day, hour, min, sec int) int64 {
	days := DaysFromCivil(year, month, day)
	return days*SecondsPerDay + int64(hour*3600+min*60+sec)
}

// FromUnix splits seconds since the epoch into a civil date and a time of
// day. secs must be in [0, MaxUnix).
func FromUnix(secs int64) (year, month, day, hour, min, sec int) {
	days := secs / SecondsPerDay
	rem := int(secs % SecondsPerDay)

	year, month, day = civilFromDays(uint64(days + unixToInternal))
	hour = rem / 3600
	min = rem % 3600 / 60
	sec = rem % 60
	return
}

// WeekdayOfUnix returns the day of the week (1 = Monday) of the day
// containing secs.
func WeekdayOfUnix(secs int64) int {
	return weekdayOfDays(secs / SecondsPerDay)
}

// civilFromDays converts days since 0001-01-01 into a civil date by peeling
// off 400-, 100-, 4- and 1-year cycles.
func civilFromDays(d uint64) (year, month, day int) {
	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(y) + 1
	yday := int(d)

	if IsLeap(year) {
		switch {
		case yday > 31+29-1:
			// After leap day; pretend it wasn't there.
			yday--
		case yday == 31+29-1:
			return year, 2, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	m := yday / 31
	if yday >= daysBefore[m+1] {
		m++
	}
	return year, m + 1, yday - daysBefore[m] + 1
}

package httpdate

import (
	"time"

	"github.com/shapestone/shape-httpdate/internal/calendar"
	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

// MaxUnix is the first second that cannot be represented, 10000-01-01
// 00:00:00 GMT.
const MaxUnix = calendar.MaxUnix

// FromUnix returns the date of sec seconds after the epoch.
// It panics if sec is negative or not below MaxUnix.
func FromUnix(sec int64) HttpDate {
	d, err := TryFromUnix(sec)
	if err != nil {
		panic(err)
	}
	return d
}

// TryFromUnix is FromUnix returning ErrOutOfRange instead of panicking.
func TryFromUnix(sec int64) (HttpDate, error) {
	if sec < 0 || sec >= MaxUnix {
		return HttpDate{}, ErrOutOfRange
	}
	return fromInternal(fastparser.FromUnix(sec)), nil
}

// FromTime returns the date of t, truncated to the second.
// It panics if t is before 1970 or after 9999.
func FromTime(t time.Time) HttpDate {
	return FromUnix(t.Unix())
}

// TryFromTime is FromTime returning ErrOutOfRange instead of panicking.
func TryFromTime(t time.Time) (HttpDate, error) {
	return TryFromUnix(t.Unix())
}

// Unix returns d as seconds since the epoch.
func (d HttpDate) Unix() int64 {
	return d.internal().Unix()
}

// Time returns d as a UTC time.Time.
func (d HttpDate) Time() time.Time {
	return time.Unix(d.Unix(), 0).UTC()
}

// Compare returns -1 if d is before o, +1 if d is after o and 0 if both
// denote the same instant.
func (d HttpDate) Compare(o HttpDate) int {
	a, b := d.Unix(), o.Unix()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d is before o.
func (d HttpDate) Before(o HttpDate) bool { return d.Unix() < o.Unix() }

// After reports whether d is after o.
func (d HttpDate) After(o HttpDate) bool { return d.Unix() > o.Unix() }

// Equal reports whether d and o denote the same instant.
func (d HttpDate) Equal(o HttpDate) bool { return d.Unix() == o.Unix() }

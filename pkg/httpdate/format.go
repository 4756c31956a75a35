package httpdate

import (
	"time"

	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

// FormatLen is the length of every formatted date.
const FormatLen = fastparser.IMFFixdateLen

// String returns d in IMF-fixdate form, e.g. "Sun, 06 Nov 1994 08:49:37 GMT".
// The zero HttpDate prints as "???, 00 ??? 0000 00:00:00 GMT".
func (d HttpDate) String() string {
	var buf [FormatLen]byte
	return string(d.AppendFormat(buf[:0]))
}

// AppendFormat appends the IMF-fixdate form of d to buf.
func (d HttpDate) AppendFormat(buf []byte) []byte {
	return fastparser.AppendIMFFixdate(buf, d.internal())
}

// Format returns t as an IMF-fixdate. It panics if t is before 1970 or
// after 9999.
func Format(t time.Time) string {
	return FromTime(t).String()
}

// FormatUnix returns sec seconds after the epoch as an IMF-fixdate. It
// panics if sec is negative or not below MaxUnix.
func FormatUnix(sec int64) string {
	return FromUnix(sec).String()
}

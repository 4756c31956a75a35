package fastparser

// imfTemplate holds the fixed bytes of an IMF-fixdate; the blanks and zeros
// are overwritten field by field.
const imfTemplate = "   , 00     0000 00:00:00 GMT"

// AppendIMFFixdate appends the IMF-fixdate form of d to buf, for example
// "Sun, 06 Nov 1994 08:49:37 GMT". It always appends IMFFixdateLen bytes.
// An invalid d is not rejected: out-of-range names print as "???".
func AppendIMFFixdate(buf []byte, d Date) []byte {
	var p [IMFFixdateLen]byte
	copy(p[:], imfTemplate)

	s := ShortDayName(d.Wday)
	p[0] = s[0]
	p[1] = s[1]
	p[2] = s[2]
	p[5] = '0' + d.Day/10
	p[6] = '0' + d.Day%10
	s = MonthName(d.Mon)
	p[8] = s[0]
	p[9] = s[1]
	p[10] = s[2]
	p[12] = '0' + byte(d.Year/1000)
	p[13] = '0' + byte(d.Year/100%10)
	p[14] = '0' + byte(d.Year/10%10)
	p[15] = '0' + byte(d.Year%10)
	p[17] = '0' + d.Hour/10
	p[18] = '0' + d.Hour%10
	p[20] = '0' + d.Min/10
	p[21] = '0' + d.Min%10
	p[23] = '0' + d.Sec/10
	p[24] = '0' + d.Sec%10

	return append(buf, p[:]...)
}

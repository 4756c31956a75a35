package httpdate

import (
	"testing"
)

// FuzzParseDate fuzzes the public parser. The invariant: never panic, and
// every accepted date formats to an IMF-fixdate that parses to the same
// instant.
func FuzzParseDate(f *testing.F) {
	f.Add([]byte("Sun, 06 Nov 1994 08:49:37 GMT"))
	f.Add([]byte("Sunday, 06-Nov-94 08:49:37 GMT"))
	f.Add([]byte("Sun Nov  6 08:49:37 1994"))
	f.Add([]byte(" Tue, 29 Feb 2000 00:00:00 GMT\r\n"))
	f.Add([]byte("Sun Nov 10 08*00:00 2000"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseDate panicked on input %q: %v", data, r)
			}
		}()

		d, err := ParseDate(data)
		if err != nil {
			return
		}
		back, err := ParseString(d.String())
		if err != nil {
			t.Fatalf("ParseString(%q) error = %v", d.String(), err)
		}
		if back != d {
			t.Errorf("round trip of %q: got %v, want %v", data, back, d)
		}
	})
}

// FuzzFormatUnix checks that every representable instant survives a format
// and parse round trip.
func FuzzFormatUnix(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(rfcExampleUnix))
	f.Add(int64(951782400))
	f.Add(int64(MaxUnix - 1))

	f.Fuzz(func(t *testing.T, sec int64) {
		if sec < 0 {
			sec = -(sec + 1)
		}
		sec %= MaxUnix
		got, err := ParseUnix(FormatUnix(sec))
		if err != nil {
			t.Fatalf("ParseUnix(FormatUnix(%d)) error = %v", sec, err)
		}
		if got != sec {
			t.Errorf("ParseUnix(FormatUnix(%d)) = %d", sec, got)
		}
	})
}

// FuzzParseLenient checks that lenient parsing never panics and that an OK
// result is a valid date.
func FuzzParseLenient(f *testing.F) {
	f.Add("sun, 06 nov 1994 08:49:37 utc")
	f.Add("Feb 29 2000")
	f.Add("12:34")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		r := ParseLenient(input)
		if !r.OK {
			return
		}
		if err := Validate(r.Date.String()); err != nil {
			t.Errorf("lenient result %v for %q does not validate", r.Date, input)
		}
	})
}

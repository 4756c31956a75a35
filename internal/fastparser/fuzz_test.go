package fastparser

import (
	"testing"
)

// FuzzParse fuzzes the strict parsers with arbitrary input.
// The invariant: never panic, and a valid result formats back into an
// IMF-fixdate that parses to the same fields.
func FuzzParse(f *testing.F) {
	f.Add([]byte("Sun, 06 Nov 1994 08:49:37 GMT"))
	f.Add([]byte("Sunday, 06-Nov-94 08:49:37 GMT"))
	f.Add([]byte("Sun Nov  6 08:49:37 1994"))
	f.Add([]byte("Sun Nov 10 08*00:00 2000"))
	f.Add([]byte("Mon, 30 Feb 2004 08:49:37 GMT"))
	f.Add([]byte("Wednesday, 09-Nov-99 23:59:59 GMT"))
	f.Add([]byte(""))
	f.Add([]byte("Sun,"))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parse panicked on input %q: %v", data, r)
			}
		}()

		d, err := Parse(data)
		if err != nil || !Valid(d) {
			return
		}
		out := AppendIMFFixdate(nil, d)
		back, err := ParseIMFFixdate(out)
		if err != nil {
			t.Fatalf("ParseIMFFixdate(%q) error = %v", out, err)
		}
		if !sameFields(back, d) {
			t.Errorf("round trip of %q: got %+v, want %+v", data, back, d)
		}
	})
}

// FuzzLenient fuzzes the lenient parser. It must never panic, and a result
// marked OK must hold a valid date.
func FuzzLenient(f *testing.F) {
	f.Add([]byte("Sun, 06 Nov 1994 08:49:37 GMT"))
	f.Add([]byte("sun, 06 nov 1994 08:49:37 utc"))
	f.Add([]byte("6-Nov-94 8:49"))
	f.Add([]byte("Feb 30 2004"))
	f.Add([]byte("99999999999999999999:1:2"))
	f.Add([]byte("\xff\xfe"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("LenientParser panicked on input %q: %v", data, r)
			}
		}()

		r := NewLenientParser(data).Parse()
		if r.OK && !Valid(r.Date) {
			t.Errorf("lenient result for %q is OK but invalid: %+v", data, r.Date)
		}
	})
}

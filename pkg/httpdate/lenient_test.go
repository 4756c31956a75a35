package httpdate

import (
	"strings"
	"testing"
)

func TestParseLenient_WellFormed(t *testing.T) {
	r := ParseLenient("Sun, 06 Nov 1994 08:49:37 GMT")
	if !r.OK {
		t.Fatalf("OK = false, warnings %v", r.Warnings)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
	if r.Date.Unix() != rfcExampleUnix {
		t.Errorf("Date = %v", r.Date)
	}
}

func TestParseLenient_Recovers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		warning string
	}{
		{"lower case", "sun, 06 nov 1994 08:49:37 gmt", "Sun, 06 Nov 1994 08:49:37 GMT", "time zone"},
		{"wrong weekday", "Sun, 07 Nov 1994 08:48:37 GMT", "Mon, 07 Nov 1994 08:48:37 GMT", "does not match"},
		{"utc", "Sun, 06 Nov 1994 08:49:37 UTC", "Sun, 06 Nov 1994 08:49:37 GMT", `"UTC"`},
		{"no weekday", "6 November 1994 08:49:37", "Sun, 06 Nov 1994 08:49:37 GMT", "missing weekday"},
		{"no time", "Sun, 06 Nov 1994", "Sun, 06 Nov 1994 00:00:00 GMT", "missing time"},
		{"extra spaces", "Sun,  06   Nov 1994   08:49:37  GMT", "Sun, 06 Nov 1994 08:49:37 GMT", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseLenient(tt.input)
			if !r.OK {
				t.Fatalf("OK = false, warnings %v", r.Warnings)
			}
			if got := r.Date.String(); got != tt.want {
				t.Errorf("Date = %q, want %q", got, tt.want)
			}
			if tt.warning == "" {
				return
			}
			found := false
			for _, w := range r.Warnings {
				if strings.Contains(w, tt.warning) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected warning containing %q, got %v", tt.warning, r.Warnings)
			}
		})
	}
}

func TestParseLenient_Fails(t *testing.T) {
	for _, input := range []string{"", "not a date", "Feb 30 2004", "Thu, 01 Jan 1969 00:00:00 GMT"} {
		r := ParseLenient(input)
		if r.OK {
			t.Errorf("ParseLenient(%q).OK = true, Date %v", input, r.Date)
		}
		if len(r.Warnings) == 0 {
			t.Errorf("ParseLenient(%q) produced no warnings", input)
		}
		if r.Date != (HttpDate{}) {
			t.Errorf("ParseLenient(%q).Date = %+v, want zero", input, r.Date)
		}
	}
}

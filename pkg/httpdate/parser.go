package httpdate

import (
	"io"
	"time"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpdate/internal/fastparser"
	"github.com/shapestone/shape-httpdate/internal/parser"
)

// ParseDate parses an HTTP-date in any of the three accepted formats.
//
// Surrounding spaces, tabs, CRs and LFs are ignored. Input containing
// non-ASCII bytes, matching none of the formats, or naming an impossible
// date (day 31 in a 30-day month, second 60, a weekday that does not match
// the date) is rejected with ErrInvalidDate.
//
// ParseDate does not allocate.
func ParseDate(data []byte) (HttpDate, error) {
	if !fastparser.IsASCII(data) {
		return HttpDate{}, ErrInvalidDate
	}
	d, err := fastparser.Parse(fastparser.TrimSpace(data))
	if err != nil || !fastparser.Valid(d) {
		return HttpDate{}, ErrInvalidDate
	}
	return fromInternal(d), nil
}

// ParseString is ParseDate for a string.
func ParseString(s string) (HttpDate, error) {
	return ParseDate([]byte(s))
}

// Parse parses an HTTP-date into a UTC time.Time.
func Parse(s string) (time.Time, error) {
	d, err := ParseString(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(), nil
}

// ParseUnix parses an HTTP-date into seconds since the epoch.
func ParseUnix(s string) (int64, error) {
	d, err := ParseString(s)
	if err != nil {
		return 0, err
	}
	return d.Unix(), nil
}

// ParseAST parses an HTTP-date into an AST.
//
// Returns an ast.ObjectNode of the form:
//
//	{ "type": "http-date", "format": "rfc850",
//	  "year": 1994, "month": 11, "day": 6,
//	  "hour": 8, "minute": 49, "second": 37,
//	  "weekday": 7, "unix": 784111777 }
//
// "format" names the layout the input was written in: "imf-fixdate",
// "rfc850" or "asctime". All numbers are int64 and "weekday" counts from
// Monday = 1. Errors carry the reason the input was rejected.
func ParseAST(input string) (ast.SchemaNode, error) {
	p := parser.NewParser([]byte(input))
	return p.Parse()
}

// ParseASTReader reads all data from r and parses it as an HTTP-date into
// an AST.
func ParseASTReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(data)
	return p.Parse()
}

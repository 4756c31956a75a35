// Package parser implements an AST parser for HTTP-dates.
// It produces shape-core AST nodes (ObjectNode, LiteralNode) from HTTP-date
// input.
//
// A date is mapped to an ObjectNode with the following structure:
//
//	{ "type": "http-date", "format": "imf-fixdate",
//	  "year": 1994, "month": 11, "day": 6,
//	  "hour": 8, "minute": 49, "second": 37,
//	  "weekday": 7, "unix": 784111777 }
//
// Numbers are int64 literals. "weekday" counts from Monday = 1.
package parser

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpdate/internal/calendar"
	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

// NodeType is the value of the "type" property of every date node.
const NodeType = "http-date"

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP-date text.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the date and returns an AST ObjectNode. Surrounding
// whitespace is ignored; the date must pass the calendar checks.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	data := fastparser.TrimSpace(p.data)
	if !fastparser.IsASCII(data) {
		return nil, fmt.Errorf("parser: input contains non-ASCII bytes")
	}
	d, err := fastparser.Parse(data)
	if err != nil {
		return nil, err
	}
	if !fastparser.Valid(d) {
		return nil, fmt.Errorf("parser: %s is not a valid calendar date", d.Format)
	}
	return DateToNode(d), nil
}

// DateToNode converts a valid date to an AST ObjectNode.
func DateToNode(d fastparser.Date) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode(NodeType, zeroPos),
		"format":  ast.NewLiteralNode(d.Format.String(), zeroPos),
		"year":    ast.NewLiteralNode(int64(d.Year), zeroPos),
		"month":   ast.NewLiteralNode(int64(d.Mon), zeroPos),
		"day":     ast.NewLiteralNode(int64(d.Day), zeroPos),
		"hour":    ast.NewLiteralNode(int64(d.Hour), zeroPos),
		"minute":  ast.NewLiteralNode(int64(d.Min), zeroPos),
		"second":  ast.NewLiteralNode(int64(d.Sec), zeroPos),
		"weekday": ast.NewLiteralNode(int64(d.Wday), zeroPos),
		"unix":    ast.NewLiteralNode(d.Unix(), zeroPos),
	}, zeroPos)
}

// NodeToDate converts an AST ObjectNode back to a fastparser.Date.
//
// The calendar fields are required. A missing "weekday" is recomputed from
// the calendar, and "unix" is ignored. The result is range-checked field by
// field but not validated as a whole; callers run fastparser.Valid.
func NodeToDate(node ast.SchemaNode) (fastparser.Date, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return fastparser.Date{}, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	if v, ok := props["type"]; ok {
		if s, _ := literalString(v); s != NodeType {
			return fastparser.Date{}, fmt.Errorf("unknown node type %q", s)
		}
	}

	var fields [6]int64
	for i, key := range [...]string{"year", "month", "day", "hour", "minute", "second"} {
		v, ok := props[key]
		if !ok {
			return fastparser.Date{}, fmt.Errorf("missing %q property", key)
		}
		n, err := nodeToInt(v)
		if err != nil {
			return fastparser.Date{}, fmt.Errorf("%q: %w", key, err)
		}
		fields[i] = n
	}
	year, mon, day, hour, min, sec := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]
	if year < 0 || year > 9999 || mon < 0 || mon > 12 || day < 0 || day > 31 ||
		hour < 0 || hour > 99 || min < 0 || min > 99 || sec < 0 || sec > 99 {
		return fastparser.Date{}, fmt.Errorf("date field out of range")
	}

	d := fastparser.Date{
		Sec:  uint8(sec),
		Min:  uint8(min),
		Hour: uint8(hour),
		Day:  uint8(day),
		Mon:  uint8(mon),
		Year: uint16(year),
	}

	if v, ok := props["weekday"]; ok {
		w, err := nodeToInt(v)
		if err != nil {
			return fastparser.Date{}, fmt.Errorf("%q: %w", "weekday", err)
		}
		if w < 1 || w > 7 {
			return fastparser.Date{}, fmt.Errorf("weekday %d out of range", w)
		}
		d.Wday = uint8(w)
	} else if year >= 1 && mon >= 1 && day >= 1 {
		d.Wday = uint8(calendar.Weekday(int(year), int(mon), int(day)))
	}

	if v, ok := props["format"]; ok {
		s, _ := literalString(v)
		d.Format = fastparser.ParseFormat(s)
	}
	return d, nil
}

func literalString(node ast.SchemaNode) (string, bool) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}

// nodeToInt extracts an integer from a literal node.
func nodeToInt(node ast.SchemaNode) (int64, error) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return 0, fmt.Errorf("expected LiteralNode, got %T", node)
	}
	switch n := lit.Value().(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	}
	return 0, fmt.Errorf("unsupported literal %T", lit.Value())
}

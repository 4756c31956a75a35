package parser

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

func TestParse_IMFFixdate(t *testing.T) {
	p := NewParser([]byte("Sun, 06 Nov 1994 08:49:37 GMT"))
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()

	typeLit, ok := props["type"].(*ast.LiteralNode)
	if !ok || typeLit.Value() != "http-date" {
		t.Errorf("type = %v, want 'http-date'", props["type"])
	}

	formatLit, ok := props["format"].(*ast.LiteralNode)
	if !ok || formatLit.Value() != "imf-fixdate" {
		t.Errorf("format = %v, want 'imf-fixdate'", props["format"])
	}

	want := map[string]int64{
		"year": 1994, "month": 11, "day": 6,
		"hour": 8, "minute": 49, "second": 37,
		"weekday": 7, "unix": 784111777,
	}
	for key, v := range want {
		lit, ok := props[key].(*ast.LiteralNode)
		if !ok {
			t.Errorf("%s expected LiteralNode, got %T", key, props[key])
			continue
		}
		if lit.Value() != v {
			t.Errorf("%s = %v, want %d", key, lit.Value(), v)
		}
	}
}

func TestParse_ObsoleteFormats(t *testing.T) {
	tests := []struct {
		input  string
		format string
	}{
		{"Sunday, 06-Nov-94 08:49:37 GMT", "rfc850"},
		{"Sun Nov  6 08:49:37 1994", "asctime"},
	}
	for _, tt := range tests {
		node, err := NewParser([]byte(tt.input)).Parse()
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.input, err)
		}
		props := node.(*ast.ObjectNode).Properties()
		if got := props["format"].(*ast.LiteralNode).Value(); got != tt.format {
			t.Errorf("format = %v, want %s", got, tt.format)
		}
		if got := props["unix"].(*ast.LiteralNode).Value(); got != int64(784111777) {
			t.Errorf("unix = %v, want 784111777", got)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"non-ascii", "Sün, 06 Nov 1994 08:49:37 GMT", "non-ASCII"},
		{"no match", "yesterday", "no supported date format"},
		{"wrong weekday", "Sun, 07 Nov 1994 08:48:37 GMT", "not a valid calendar date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser([]byte(tt.input)).Parse()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestNodeToDate_RoundTrip(t *testing.T) {
	node, err := NewParser([]byte("  Sunday, 06-Nov-94 08:49:37 GMT\r\n")).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	d, err := NodeToDate(node)
	if err != nil {
		t.Fatalf("NodeToDate() error = %v", err)
	}

	want := fastparser.Date{Sec: 37, Min: 49, Hour: 8, Day: 6, Mon: 11, Year: 1994, Wday: 7, Format: fastparser.FormatRFC850}
	if d != want {
		t.Errorf("NodeToDate() = %+v, want %+v", d, want)
	}
}

func TestNodeToDate_LiteralKinds(t *testing.T) {
	node := ast.NewObjectNode(map[string]ast.SchemaNode{
		"year":   ast.NewLiteralNode("2000", zeroPos),
		"month":  ast.NewLiteralNode(float64(2), zeroPos),
		"day":    ast.NewLiteralNode(int64(29), zeroPos),
		"hour":   ast.NewLiteralNode(int64(12), zeroPos),
		"minute": ast.NewLiteralNode(int64(0), zeroPos),
		"second": ast.NewLiteralNode(int64(1), zeroPos),
	}, zeroPos)

	d, err := NodeToDate(node)
	if err != nil {
		t.Fatalf("NodeToDate() error = %v", err)
	}
	if d.Year != 2000 || d.Mon != 2 || d.Day != 29 {
		t.Errorf("date = %d-%d-%d, want 2000-2-29", d.Year, d.Mon, d.Day)
	}
	// 2000-02-29 was a Tuesday.
	if d.Wday != 2 {
		t.Errorf("Wday = %d, want 2 (recomputed)", d.Wday)
	}
	if !fastparser.Valid(d) {
		t.Errorf("Valid(%+v) = false", d)
	}
}

func TestNodeToDate_Errors(t *testing.T) {
	full := func(override map[string]ast.SchemaNode, drop string) ast.SchemaNode {
		props := map[string]ast.SchemaNode{
			"type":   ast.NewLiteralNode(NodeType, zeroPos),
			"year":   ast.NewLiteralNode(int64(1994), zeroPos),
			"month":  ast.NewLiteralNode(int64(11), zeroPos),
			"day":    ast.NewLiteralNode(int64(6), zeroPos),
			"hour":   ast.NewLiteralNode(int64(8), zeroPos),
			"minute": ast.NewLiteralNode(int64(49), zeroPos),
			"second": ast.NewLiteralNode(int64(37), zeroPos),
		}
		for k, v := range override {
			props[k] = v
		}
		delete(props, drop)
		return ast.NewObjectNode(props, zeroPos)
	}

	tests := []struct {
		name string
		node ast.SchemaNode
	}{
		{"not an object", ast.NewLiteralNode("x", zeroPos)},
		{"wrong type", full(map[string]ast.SchemaNode{"type": ast.NewLiteralNode("request", zeroPos)}, "")},
		{"missing year", full(nil, "year")},
		{"fractional", full(map[string]ast.SchemaNode{"day": ast.NewLiteralNode(6.5, zeroPos)}, "")},
		{"bad string", full(map[string]ast.SchemaNode{"day": ast.NewLiteralNode("six", zeroPos)}, "")},
		{"negative", full(map[string]ast.SchemaNode{"hour": ast.NewLiteralNode(int64(-1), zeroPos)}, "")},
		{"huge year", full(map[string]ast.SchemaNode{"year": ast.NewLiteralNode(int64(100000), zeroPos)}, "")},
		{"bad weekday", full(map[string]ast.SchemaNode{"weekday": ast.NewLiteralNode(int64(8), zeroPos)}, "")},
		{"nested object", full(map[string]ast.SchemaNode{"month": ast.NewObjectNode(nil, zeroPos)}, "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, err := NodeToDate(tt.node); err == nil {
				t.Errorf("NodeToDate() = %+v, expected error", d)
			}
		})
	}
}

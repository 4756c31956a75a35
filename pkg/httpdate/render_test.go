package httpdate

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParseAST_Render(t *testing.T) {
	tests := []string{
		"Sun, 06 Nov 1994 08:49:37 GMT",
		"Sunday, 06-Nov-94 08:49:37 GMT",
		"Sun Nov  6 08:49:37 1994",
	}
	for _, input := range tests {
		node, err := ParseAST(input)
		if err != nil {
			t.Fatalf("ParseAST(%q) error = %v", input, err)
		}
		out, err := Render(node)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if string(out) != "Sun, 06 Nov 1994 08:49:37 GMT" {
			t.Errorf("Render(ParseAST(%q)) = %q", input, out)
		}
	}
}

func TestParseAST_Errors(t *testing.T) {
	if _, err := ParseAST("Sun, 07 Nov 1994 08:48:37 GMT"); err == nil {
		t.Error("ParseAST(wrong weekday) expected error")
	}
	if _, err := ParseAST(""); err == nil {
		t.Error("ParseAST(empty) expected error")
	}
}

func TestParseASTReader(t *testing.T) {
	node, err := ParseASTReader(strings.NewReader("Sun Nov  6 08:49:37 1994\n"))
	if err != nil {
		t.Fatalf("ParseASTReader() error = %v", err)
	}
	m, ok := NodeToInterface(node).(map[string]interface{})
	if !ok {
		t.Fatalf("NodeToInterface() = %T, want map", NodeToInterface(node))
	}
	if m["format"] != "asctime" {
		t.Errorf("format = %v, want asctime", m["format"])
	}
	if m["unix"] != int64(rfcExampleUnix) {
		t.Errorf("unix = %v, want %d", m["unix"], rfcExampleUnix)
	}
}

func TestDateToNode_RoundTrip(t *testing.T) {
	d := FromUnix(951782400)
	back, err := NodeToDate(DateToNode(d))
	if err != nil {
		t.Fatalf("NodeToDate() error = %v", err)
	}
	if back != d {
		t.Errorf("NodeToDate(DateToNode(%v)) = %v", d, back)
	}
}

func TestRender_Invalid(t *testing.T) {
	pos := ast.Position{}
	node := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":   ast.NewLiteralNode("http-date", pos),
		"year":   ast.NewLiteralNode(int64(2001), pos),
		"month":  ast.NewLiteralNode(int64(2), pos),
		"day":    ast.NewLiteralNode(int64(29), pos),
		"hour":   ast.NewLiteralNode(int64(0), pos),
		"minute": ast.NewLiteralNode(int64(0), pos),
		"second": ast.NewLiteralNode(int64(0), pos),
	}, pos)
	if out, err := Render(node); err == nil {
		t.Errorf("Render(2001-02-29) = %q, expected error", out)
	}

	if _, err := Render(ast.NewLiteralNode("x", pos)); err == nil {
		t.Error("Render(literal) expected error")
	}
}

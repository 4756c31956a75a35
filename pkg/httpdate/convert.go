package httpdate

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpdate/internal/fastparser"
	"github.com/shapestone/shape-httpdate/internal/parser"
)

// DateToNode converts d to an AST ObjectNode with "format" set to
// "imf-fixdate".
func DateToNode(d HttpDate) ast.SchemaNode {
	return parser.DateToNode(d.internal())
}

// NodeToDate converts an AST ObjectNode back to an HttpDate. The node must
// describe a valid date; "weekday" may be omitted.
func NodeToDate(node ast.SchemaNode) (HttpDate, error) {
	d, err := parser.NodeToDate(node)
	if err != nil {
		return HttpDate{}, &ParseError{Message: err.Error()}
	}
	if !fastparser.Valid(d) {
		return HttpDate{}, ErrInvalidDate
	}
	return fromInternal(d), nil
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

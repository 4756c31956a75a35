package httpdate

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from ParseAST or DateToNode) back to
// IMF-fixdate bytes, whatever layout the node's "format" names.
func Render(node ast.SchemaNode) ([]byte, error) {
	d, err := NodeToDate(node)
	if err != nil {
		return nil, fmt.Errorf("httpdate: Render: %w", err)
	}
	return Marshal(d)
}

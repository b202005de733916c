package formula

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/zclconf/go-cty/cty"
)

// arithmetic is the set of binary operators a formula may use.
var arithmetic = map[*hclsyntax.Operation]struct{}{
	hclsyntax.OpAdd:      {},
	hclsyntax.OpSubtract: {},
	hclsyntax.OpMultiply: {},
	hclsyntax.OpDivide:   {},
}

// validate rejects every construct outside the formula grammar. HCL accepts
// far more (strings, function calls, conditionals, collections), none of which
// a cell formula may contain.
func validate(expr hclsyntax.Expression) *Error {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() != cty.Number || e.Val.IsNull() {
			return parseError("only numeric literals are allowed")
		}
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return parseError("attribute and index access are not allowed")
		}
		name := e.Traversal.RootName()
		if !cellid.IsAddress(name) {
			return parseError("unknown reference %q", name)
		}
	case *hclsyntax.BinaryOpExpr:
		if _, ok := arithmetic[e.Op]; !ok {
			return parseError("only + - * / operators are allowed")
		}
		if err := validate(e.LHS); err != nil {
			return err
		}
		return validate(e.RHS)
	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return parseError("only unary minus is allowed")
		}
		return validate(e.Val)
	case *hclsyntax.ParenthesesExpr:
		return validate(e.Expression)
	case *hclsyntax.FunctionCallExpr:
		return parseError("function %q is not available", e.Name)
	default:
		return parseError("unsupported expression")
	}
	return nil
}

func parseError(format string, args ...any) *Error {
	return &Error{Reason: ReasonParse, Detail: fmt.Sprintf(format, args...)}
}

package formula

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/zclconf/go-cty/cty"
)

// Lookup resolves a referenced cell to its current value.
type Lookup func(cellid.Address) Value

// Evaluate computes the value of a cell's source text. Literals never fail.
// Formula failures (syntax, undefined operations, errored references) are
// returned as error values.
func Evaluate(source string, lookup Lookup) Value {
	if !IsFormula(source) {
		return Number(ParseLiteral(source))
	}

	expr, perr := Parse(source)
	if perr != nil {
		return Value{Err: perr}
	}

	result, everr := eval(expr, lookup)
	if everr != nil {
		return Value{Err: everr}
	}
	if result.Type() != cty.Number || result.IsNull() {
		return Fail(ReasonParse, "expression did not produce a number")
	}

	n, _ := result.AsBigFloat().Float64()
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return Fail(ReasonRange, "result is not finite")
	}
	return Number(n)
}

// Parse parses and validates a formula without evaluating it.
func Parse(source string) (hclsyntax.Expression, *Error) {
	if !IsFormula(source) {
		return nil, &Error{Reason: ReasonParse, Detail: "not a formula"}
	}

	expr, diags := hclsyntax.ParseExpression([]byte(expressionText(source)), filename, exprStart)
	if diags.HasErrors() {
		return nil, &Error{Reason: ReasonParse, Detail: diagDetail(diags)}
	}
	if err := validate(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// eval walks a validated expression. References are resolved left to right
// and the first errored reference aborts evaluation with that error.
func eval(expr hclsyntax.Expression, lookup Lookup) (cty.Value, *Error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return e.Val, nil

	case *hclsyntax.ScopeTraversalExpr:
		addr, err := cellid.Parse(e.Traversal.RootName())
		if err != nil {
			return cty.NilVal, &Error{Reason: ReasonParse, Detail: err.Error()}
		}
		v := lookup(addr)
		if v.Err != nil {
			return cty.NilVal, v.Err
		}
		return cty.NumberFloatVal(v.Number), nil

	case *hclsyntax.ParenthesesExpr:
		return eval(e.Expression, lookup)

	case *hclsyntax.UnaryOpExpr:
		val, err := eval(e.Val, lookup)
		if err != nil {
			return cty.NilVal, err
		}
		return apply(e.Op, val)

	case *hclsyntax.BinaryOpExpr:
		lhs, err := eval(e.LHS, lookup)
		if err != nil {
			return cty.NilVal, err
		}
		rhs, err := eval(e.RHS, lookup)
		if err != nil {
			return cty.NilVal, err
		}
		if e.Op == hclsyntax.OpDivide && rhs.Equals(cty.Zero).True() {
			return cty.NilVal, &Error{Reason: ReasonUndefined, Detail: "division by zero"}
		}
		return apply(e.Op, lhs, rhs)
	}

	return cty.NilVal, &Error{Reason: ReasonParse, Detail: "unsupported expression"}
}

// apply runs an operator's cty implementation.
func apply(op *hclsyntax.Operation, args ...cty.Value) (cty.Value, *Error) {
	result, err := op.Impl.Call(args)
	if err != nil {
		return cty.NilVal, &Error{Reason: ReasonUndefined, Detail: err.Error()}
	}
	return result, nil
}

// diagDetail summarizes the first error diagnostic.
func diagDetail(diags hcl.Diagnostics) string {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		if d.Detail != "" {
			return d.Summary + "; " + d.Detail
		}
		return d.Summary
	}
	return diags.Error()
}

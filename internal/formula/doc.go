// Package formula turns a cell's source text into a value.
//
// Source text that starts with Marker is a formula: the remainder is an
// arithmetic expression written in HCL native expression syntax and restricted
// to numeric literals, the four basic operators, unary minus, parentheses and
// bare cell addresses such as A0 or Z99. Anything else is a literal.
//
// The package has two entry points used by the engine:
//
//   - References lexes a formula and returns the cell addresses it mentions.
//     It never needs a successful parse, so malformed formulas still report
//     their references.
//   - Evaluate computes a Value, resolving addresses through a Lookup. It is
//     side-effect free; errors are returned as values, never as Go errors.
package formula

// Package engine is the propagation engine: it keeps every cell's value
// consistent with its source text and the current values of the cells it
// references.
//
// # Edit lifecycle
//
// SetCellSource runs one pass:
//
//  1. Apply: the verbatim text is stored and the cell's reference edges are
//     replaced in the dependency graph.
//  2. Plan: the edited cell and everything that transitively depends on it
//     are split into strongly connected components, ordered so that each
//     component follows the components it reads from.
//  3. Evaluate: components are visited in plan order. The edited cell is
//     always evaluated; any other cell only when one of its references
//     changed earlier in the pass or its cycle membership flipped. Cyclic
//     components resolve to a cycle error without evaluating their formulas.
//  4. Notify: once the pass is committed, change listeners receive the cells
//     whose displayed value changed.
//
// Every cell is evaluated at most once per pass, so a pass is bounded by the
// number of affected cells. The engine holds its write lock for the whole
// pass; readers see the grid either before or after an edit, never between.
package engine

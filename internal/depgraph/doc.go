// Package depgraph maintains the dependency edges between cells.
//
// Every cell with a formula has out-edges to the cells it references. The
// graph also keeps the reverse index (cell -> cells that reference it) so that
// "what must be recomputed when A0 changes" is a lookup, not a scan.
//
// Cycle analysis is performed on demand: Plan splits a set of cells into
// strongly connected components and orders them so that every component comes
// after the components it references. A component with more than one cell, or
// a single cell that references itself, is a cycle.
package depgraph

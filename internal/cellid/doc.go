// internal/cellid/doc.go

/*
Package cellid provides a structured, type-safe representation for cell
addresses within the grid, based on the canonical format `<column><row>`.

The column is a single letter `A` through `Z` and the row is a decimal
integer `0` through `99`, e.g., `A0`, `C12`, `Z99`.

This package enforces the address schema and centralizes all formatting and
parsing logic. Every other package receives addresses already validated.
*/
package cellid

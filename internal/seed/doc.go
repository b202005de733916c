// Package seed loads the initial contents of the grid from HCL files.
//
// A seed file is a list of cell blocks, one per non-blank cell:
//
//	cell "A0" { source = "4" }
//	cell "B0" { source = "9" }
//	cell "A1" { source = "=A0+B0" }
//
// The label is a cell address and source is the text exactly as a user
// would have typed it. Numbers are accepted for source and converted to
// their decimal text. A cell may only be defined once across all loaded
// files.
package seed

// Package repl is a line-oriented terminal front end for a grid.
//
// It reads one command per line:
//
//	set <cell> <text...>   store text in a cell (empty text clears it)
//	get <cell>             print a cell's display value
//	show [from] [to]       print a rectangle of cells, A0:F9 by default
//	cells                  list every non-blank cell with its source
//	deps <cell>            list references and dependents (local grids only)
//	help                   print the command list
//	quit                   leave
//
// The grid behind the prompt is a Backend: either an engine in the same
// process or a remote server.
package repl

// Package cellstore defines the interface for the grid's single source of
// truth: the mapping from cell address to its source text and last computed
// value.
//
// # Why Cell Store Exists
//
// The store isolates cell contents from the dependency structure kept by
// depgraph and from the propagation logic in engine. The engine is the only
// writer; it owns the store for the duration of an edit and commits every
// recomputed value before readers are let back in.
//
// # Lifecycle
//
// A cell exists implicitly once its address is written. There is no delete:
// clearing a cell means writing an empty source, and a missing cell reads as
// a blank Entry. The store lives for the lifetime of the process; nothing is
// persisted.
package cellstore

import (
	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/formula"
)

// Entry is the stored state of one cell.
type Entry struct {
	// Source is the user-entered text, stored verbatim.
	Source string
	// Value is the evaluation result of Source under the current values of
	// its references.
	Value formula.Value
	// InCycle records whether the cell was a cycle member when last evaluated.
	InCycle bool
}

// Blank is the entry of a cell that has never been written or was cleared.
func Blank() Entry {
	return Entry{Value: formula.Number(0)}
}

// IsBlank reports whether the entry carries no information.
func (e Entry) IsBlank() bool {
	return e.Source == "" && !e.InCycle && e.Value.Equal(formula.Number(0))
}

// Display renders the entry for the grid.
func (e Entry) Display() string {
	return formula.Display(e.Source, e.Value)
}

// Cell pairs an address with its entry.
type Cell struct {
	Address cellid.Address
	Entry
}

// Store is the interface for reading and writing cell entries.
//
// Implementations MUST be safe for concurrent use: the engine writes during
// an edit while transports read between edits.
type Store interface {
	// Get returns the entry for addr and whether it was explicitly stored.
	// A missing cell yields Blank().
	Get(addr cellid.Address) (Entry, bool)

	// Put stores the entry for addr. Storing a blank entry removes the cell.
	Put(addr cellid.Address, e Entry)

	// Snapshot returns a copy of every non-blank cell in row-major order.
	Snapshot() []Cell

	// Len returns the number of non-blank cells.
	Len() int
}

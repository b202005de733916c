package depgraph

import (
	"sync"

	"github.com/specialistvlad/cellgrid/internal/cellid"
)

// addrSet is a set of cell addresses.
type addrSet map[cellid.Address]struct{}

// Graph holds the reference edges between cells and their reverse index.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects both edge maps; they are always updated together.
	mutex sync.RWMutex
	// refs maps a cell to the cells its formula references (out-edges).
	refs map[cellid.Address]addrSet
	// dependents maps a cell to the cells whose formulas reference it.
	dependents map[cellid.Address]addrSet
}

// Component is a strongly connected group of cells returned by Plan.
type Component struct {
	// Cells are the members, sorted row-major.
	Cells []cellid.Address
	// Cyclic is true when the members reference each other in a loop,
	// including a single cell that references itself.
	Cyclic bool
}

package depgraph

import (
	"fmt"

	"github.com/specialistvlad/cellgrid/internal/cellid"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		refs:       make(map[cellid.Address]addrSet),
		dependents: make(map[cellid.Address]addrSet),
	}
}

// SetDependencies replaces the out-edges of addr with refs. Reverse edges for
// the old reference set are removed and those for the new set inserted under
// a single lock, so no reader observes a half-updated graph.
func (g *Graph) SetDependencies(addr cellid.Address, refs []cellid.Address) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for old := range g.refs[addr] {
		if ds, ok := g.dependents[old]; ok {
			delete(ds, addr)
			if len(ds) == 0 {
				delete(g.dependents, old)
			}
		}
	}
	delete(g.refs, addr)

	if len(refs) == 0 {
		return
	}

	out := make(addrSet, len(refs))
	for _, ref := range refs {
		out[ref] = struct{}{}
		if g.dependents[ref] == nil {
			g.dependents[ref] = make(addrSet)
		}
		g.dependents[ref][addr] = struct{}{}
	}
	g.refs[addr] = out
}

// ReferencesOf returns the cells addr directly references, sorted.
func (g *Graph) ReferencesOf(addr cellid.Address) []cellid.Address {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return sorted(g.refs[addr])
}

// DependentsOf returns the cells that directly reference addr, sorted.
// Multi-hop traversal is left to the caller (see Affected).
func (g *Graph) DependentsOf(addr cellid.Address) []cellid.Address {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return sorted(g.dependents[addr])
}

// Affected returns the given cells together with every cell that
// transitively depends on any of them, sorted.
func (g *Graph) Affected(addrs ...cellid.Address) []cellid.Address {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	seen := make(addrSet, len(addrs))
	queue := make([]cellid.Address, 0, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a]; !ok {
			seen[a] = struct{}{}
			queue = append(queue, a)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for dep := range g.dependents[current] {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			queue = append(queue, dep)
		}
	}

	return sorted(seen)
}

// DetectCycles checks the whole graph for cycles. It returns a non-nil error
// naming a cell on the first cycle found.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Classic depth-first search with three sets of cells:
	// permanent: fully visited and not part of a cycle.
	// temporary: currently on the recursion stack.
	// unvisited: everything else.
	permanent := make(addrSet)
	temporary := make(addrSet)

	var visit func(addr cellid.Address) error
	visit = func(addr cellid.Address) error {
		if _, ok := permanent[addr]; ok {
			return nil
		}
		if _, ok := temporary[addr]; ok {
			return fmt.Errorf("cycle detected involving cell '%s'", addr)
		}

		temporary[addr] = struct{}{}
		for _, ref := range sorted(g.refs[addr]) {
			if err := visit(ref); err != nil {
				return err
			}
		}
		delete(temporary, addr)
		permanent[addr] = struct{}{}
		return nil
	}

	for _, addr := range g.sources() {
		if err := visit(addr); err != nil {
			return err
		}
	}
	return nil
}

// sources returns every cell with out-edges, sorted. Callers hold the lock.
func (g *Graph) sources() []cellid.Address {
	out := make([]cellid.Address, 0, len(g.refs))
	for addr := range g.refs {
		out = append(out, addr)
	}
	cellid.Sort(out)
	return out
}

func sorted(set addrSet) []cellid.Address {
	out := make([]cellid.Address, 0, len(set))
	for addr := range set {
		out = append(out, addr)
	}
	cellid.Sort(out)
	return out
}

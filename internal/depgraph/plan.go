package depgraph

import "github.com/specialistvlad/cellgrid/internal/cellid"

// Plan groups cells into strongly connected components of the subgraph they
// induce, following reference edges, and returns the components in
// evaluation order: a component always comes after every component it
// references. Edges to cells outside the given set are ignored.
//
// This is Tarjan's algorithm. It emits a component only once everything it
// can reach has been emitted, which is exactly the order in which cells must
// be evaluated.
func (g *Graph) Plan(cells []cellid.Address) []Component {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	in := make(addrSet, len(cells))
	for _, c := range cells {
		in[c] = struct{}{}
	}
	order := sorted(in)

	index := make(map[cellid.Address]int, len(order))
	low := make(map[cellid.Address]int, len(order))
	onStack := make(addrSet)
	var stack []cellid.Address
	var components []Component
	next := 0

	var connect func(v cellid.Address)
	connect = func(v cellid.Address) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = struct{}{}

		for _, w := range sorted(g.refs[v]) {
			if _, ok := in[w]; !ok {
				continue
			}
			if _, visited := index[w]; !visited {
				connect(w)
				low[v] = min(low[v], low[w])
			} else if _, ok := onStack[w]; ok {
				low[v] = min(low[v], index[w])
			}
		}

		if low[v] != index[v] {
			return
		}

		var members []cellid.Address
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			delete(onStack, w)
			members = append(members, w)
			if w == v {
				break
			}
		}
		cellid.Sort(members)

		_, selfRef := g.refs[v][v]
		components = append(components, Component{
			Cells:  members,
			Cyclic: len(members) > 1 || selfRef,
		})
	}

	for _, v := range order {
		if _, visited := index[v]; !visited {
			connect(v)
		}
	}
	return components
}

package engine

import (
	"context"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/cellstore"
	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/depgraph"
	"github.com/specialistvlad/cellgrid/internal/formula"
)

// apply stores the verbatim text and replaces the cell's reference edges.
// It returns the cell's display value before the edit. Callers hold e.mu.
func (e *Engine) apply(addr cellid.Address, text string) string {
	old, _ := e.store.Get(addr)
	e.store.Put(addr, cellstore.Entry{Source: text, Value: old.Value, InCycle: old.InCycle})
	e.graph.SetDependencies(addr, formula.References(text))
	return old.Display()
}

// pass tracks the bookkeeping of a single propagation pass.
type pass struct {
	// changed holds cells whose value changed, which forces their dependents
	// to be evaluated.
	changed map[cellid.Address]struct{}
	// changes are the display changes reported to listeners.
	changes    []Change
	recomputed int
}

// propagate evaluates the edited cells and everything downstream of them in
// plan order. Callers hold e.mu.
func (e *Engine) propagate(ctx context.Context, edited []cellid.Address, before map[cellid.Address]string) []Change {
	logger := ctxlog.FromContext(ctx)

	affected := e.graph.Affected(edited...)
	plan := e.graph.Plan(affected)
	p := &pass{changed: make(map[cellid.Address]struct{})}

	for _, comp := range plan {
		if comp.Cyclic {
			e.resolveCycle(comp, before, p)
			continue
		}

		addr := comp.Cells[0]
		old, _ := e.store.Get(addr)
		_, seeded := before[addr]
		if !seeded && !old.InCycle && !e.referencesChanged(addr, p) {
			continue
		}

		e.recompute(addr, p)
		next := old
		next.Value = formula.Evaluate(old.Source, e.lookup)
		next.InCycle = false
		e.commit(addr, old, next, before, p)
	}

	logger.Debug("Propagation pass finished.",
		"edited", len(edited),
		"affected", len(affected),
		"components", len(plan),
		"recomputed", p.recomputed,
		"changed", len(p.changed))
	return p.changes
}

// resolveCycle gives every member of a cyclic component the cycle error.
func (e *Engine) resolveCycle(comp depgraph.Component, before map[cellid.Address]string, p *pass) {
	for _, addr := range comp.Cells {
		old, _ := e.store.Get(addr)
		e.recompute(addr, p)
		next := old
		next.Value = formula.Cycle()
		next.InCycle = true
		e.commit(addr, old, next, before, p)
	}
}

// referencesChanged reports whether any reference of addr changed this pass.
func (e *Engine) referencesChanged(addr cellid.Address, p *pass) bool {
	for _, ref := range e.graph.ReferencesOf(addr) {
		if _, ok := p.changed[ref]; ok {
			return true
		}
	}
	return false
}

// commit writes the new entry and records what changed.
func (e *Engine) commit(addr cellid.Address, old, next cellstore.Entry, before map[cellid.Address]string, p *pass) {
	e.store.Put(addr, next)

	if !old.Value.Equal(next.Value) {
		p.changed[addr] = struct{}{}
	}

	prev, seeded := before[addr]
	if !seeded {
		prev = old.Display()
	}
	if display := next.Display(); display != prev {
		p.changes = append(p.changes, Change{Address: addr, Display: display, Value: next.Value})
	}
}

func (e *Engine) recompute(addr cellid.Address, p *pass) {
	p.recomputed++
	if e.onRecompute != nil {
		e.onRecompute(addr)
	}
}

// lookup reads the most recently committed value of a referenced cell.
func (e *Engine) lookup(addr cellid.Address) formula.Value {
	entry, _ := e.store.Get(addr)
	return entry.Value
}

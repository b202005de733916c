package engine

import (
	"context"
	"sync"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/cellstore"
	"github.com/specialistvlad/cellgrid/internal/depgraph"
	"github.com/specialistvlad/cellgrid/internal/formula"
	"github.com/specialistvlad/cellgrid/internal/inmemorycells"
)

// Change describes a cell whose displayed value changed during a pass.
type Change struct {
	Address cellid.Address
	Display string
	Value   formula.Value
}

// ChangeListener is notified after each pass that changed at least one cell.
// Listeners run on the editing goroutine after the engine lock is released,
// one pass at a time and in commit order. A listener may read the grid but
// must not edit it.
type ChangeListener func(ctx context.Context, changes []Change)

// Option configures an Engine.
type Option func(*Engine)

// WithStore replaces the default in-memory cell store.
func WithStore(s cellstore.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithGraph replaces the default, empty dependency graph.
func WithGraph(g *depgraph.Graph) Option {
	return func(e *Engine) { e.graph = g }
}

// WithChangeListener registers a listener at construction time.
func WithChangeListener(l ChangeListener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

// WithRecomputeHook registers a function called every time a cell is
// (re)evaluated. Used to observe propagation work.
func WithRecomputeHook(h func(cellid.Address)) Option {
	return func(e *Engine) { e.onRecompute = h }
}

// Engine owns the grid store and the dependency graph.
type Engine struct {
	mu          sync.RWMutex
	// notifyMu is taken before mu is released so passes notify in commit order.
	notifyMu    sync.Mutex
	store       cellstore.Store
	graph       *depgraph.Graph
	listeners   []ChangeListener
	onRecompute func(cellid.Address)
}

// New creates an engine with an empty grid.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = inmemorycells.New()
	}
	if e.graph == nil {
		e.graph = depgraph.New()
	}
	return e
}

// Subscribe adds a change listener.
func (e *Engine) Subscribe(l ChangeListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// SetCellSource stores new source text for a cell and propagates the change
// to every dependent cell before returning. It never fails: malformed
// formulas and cycles become error values.
func (e *Engine) SetCellSource(ctx context.Context, addr cellid.Address, text string) {
	e.Load(ctx, map[cellid.Address]string{addr: text})
}

// Load applies several sources at once and runs a single propagation pass
// over all of them. Used for seed data.
func (e *Engine) Load(ctx context.Context, sources map[cellid.Address]string) {
	if len(sources) == 0 {
		return
	}

	e.mu.Lock()
	edited := make([]cellid.Address, 0, len(sources))
	before := make(map[cellid.Address]string, len(sources))
	for addr, text := range sources {
		before[addr] = e.apply(addr, text)
		edited = append(edited, addr)
	}
	cellid.Sort(edited)
	changes := e.propagate(ctx, edited, before)
	listeners := append([]ChangeListener(nil), e.listeners...)
	if len(changes) == 0 {
		e.mu.Unlock()
		return
	}
	e.notifyMu.Lock()
	e.mu.Unlock()
	defer e.notifyMu.Unlock()

	for _, l := range listeners {
		l(ctx, changes)
	}
}

// CellValue returns the display value of a cell: literal text for literal
// cells, the number or an error marker for formulas.
func (e *Engine) CellValue(ctx context.Context, addr cellid.Address) string {
	return e.Cell(ctx, addr).Display()
}

// Cell returns the stored entry for a cell.
func (e *Engine) Cell(ctx context.Context, addr cellid.Address) cellstore.Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entry, _ := e.store.Get(addr)
	return entry
}

// Snapshot returns every non-blank cell, consistent with a single point
// between edits.
func (e *Engine) Snapshot(ctx context.Context) []cellstore.Cell {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Snapshot()
}

// CheckCycles reports the first reference cycle in the grid, or nil. Cycle
// members already hold #CYCLE!; this is for diagnostics.
func (e *Engine) CheckCycles() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.DetectCycles()
}

// Dependencies returns the cells addr references and the cells that
// reference addr.
func (e *Engine) Dependencies(ctx context.Context, addr cellid.Address) (refs, dependents []cellid.Address) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.ReferencesOf(addr), e.graph.DependentsOf(addr)
}

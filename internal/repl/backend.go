package repl

import (
	"context"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/engine"
	"github.com/specialistvlad/cellgrid/internal/protocol"
)

// Backend is the grid the REPL edits.
type Backend interface {
	Set(ctx context.Context, cell, source string) (string, error)
	Get(ctx context.Context, cell string) (string, error)
	Snapshot(ctx context.Context) ([]protocol.CellValue, error)
}

// DependencyLister is implemented by backends that can explain the
// dependency graph.
type DependencyLister interface {
	Dependencies(ctx context.Context, cell string) (refs, dependents []string, err error)
}

// Local adapts an in-process engine to Backend.
type Local struct {
	engine *engine.Engine
}

// NewLocal creates a backend for e.
func NewLocal(e *engine.Engine) *Local {
	return &Local{engine: e}
}

func (l *Local) Set(ctx context.Context, cell, source string) (string, error) {
	addr, err := cellid.Parse(cell)
	if err != nil {
		return "", err
	}
	l.engine.SetCellSource(ctx, addr, source)
	return l.engine.CellValue(ctx, addr), nil
}

func (l *Local) Get(ctx context.Context, cell string) (string, error) {
	addr, err := cellid.Parse(cell)
	if err != nil {
		return "", err
	}
	return l.engine.CellValue(ctx, addr), nil
}

func (l *Local) Snapshot(ctx context.Context) ([]protocol.CellValue, error) {
	cells := l.engine.Snapshot(ctx)
	out := make([]protocol.CellValue, 0, len(cells))
	for _, c := range cells {
		out = append(out, protocol.CellValue{Cell: c.Address.String(), Source: c.Source, Value: c.Display()})
	}
	return out, nil
}

func (l *Local) Dependencies(ctx context.Context, cell string) (refs, dependents []string, err error) {
	addr, err := cellid.Parse(cell)
	if err != nil {
		return nil, nil, err
	}
	r, d := l.engine.Dependencies(ctx, addr)
	return addrStrings(r), addrStrings(d), nil
}

func addrStrings(addrs []cellid.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

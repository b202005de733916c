package server

import (
	"context"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/protocol"
)

func (s *Server) handleSet(ctx context.Context, args []any) protocol.Result {
	var req protocol.Request
	addr, res, ok := s.decodeCellRequest(args, &req)
	if !ok {
		return res
	}

	ctxlog.FromContext(ctx).Debug("Set request received.", "id", req.ID, "cell", addr.String())
	s.grid.SetCellSource(ctx, addr, req.Source)
	res.Value = s.grid.Cell(ctx, addr).Display()
	return res
}

func (s *Server) handleGet(ctx context.Context, args []any) protocol.Result {
	var req protocol.Request
	addr, res, ok := s.decodeCellRequest(args, &req)
	if !ok {
		return res
	}

	res.Value = s.grid.Cell(ctx, addr).Display()
	return res
}

func (s *Server) handleSnapshot(ctx context.Context, args []any) protocol.Result {
	var req protocol.Request
	if err := protocol.Decode(args, &req); err != nil {
		return protocol.Result{ID: req.ID, Error: err.Error()}
	}

	cells := s.grid.Snapshot(ctx)
	res := protocol.Result{ID: req.ID, OK: true, Cells: make([]protocol.CellValue, 0, len(cells))}
	for _, c := range cells {
		res.Cells = append(res.Cells, protocol.CellValue{
			Cell:   c.Address.String(),
			Source: c.Source,
			Value:  c.Display(),
		})
	}
	return res
}

// decodeCellRequest decodes a request naming a cell. On failure it returns
// the error result to send back and false.
func (s *Server) decodeCellRequest(args []any, req *protocol.Request) (cellid.Address, protocol.Result, bool) {
	if err := protocol.Decode(args, req); err != nil {
		return cellid.Address{}, protocol.Result{ID: req.ID, Error: err.Error()}, false
	}

	addr, err := cellid.Parse(req.Cell)
	if err != nil {
		return cellid.Address{}, protocol.Result{ID: req.ID, Cell: req.Cell, Error: err.Error()}, false
	}
	return addr, protocol.Result{ID: req.ID, OK: true, Cell: addr.String()}, true
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/cellstore"
	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/engine"
	"github.com/specialistvlad/cellgrid/internal/protocol"
	"github.com/zishang520/socket.io/v2/socket"
)

// Grid is the part of the engine the server needs.
type Grid interface {
	SetCellSource(ctx context.Context, addr cellid.Address, text string)
	Cell(ctx context.Context, addr cellid.Address) cellstore.Entry
	Snapshot(ctx context.Context) []cellstore.Cell
	Subscribe(l engine.ChangeListener)
}

// shutdownTimeout bounds how long in-flight HTTP requests may take once the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Server serves a grid over Socket.IO.
type Server struct {
	ctx  context.Context
	grid Grid
	io   *socket.Server
	// broadcast sends a change notification to every connected client.
	broadcast func(msg protocol.Changed)
}

// New creates a server for grid and subscribes it to the grid's changes.
// ctx carries the logger used for connection and request logs.
func New(ctx context.Context, grid Grid) *Server {
	io := socket.NewServer(nil, nil)
	s := &Server{
		ctx:  ctx,
		grid: grid,
		io:   io,
		broadcast: func(msg protocol.Changed) {
			io.Emit(protocol.EventChanged, msg)
		},
	}

	io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		s.attach(client)
	})
	grid.Subscribe(s.onChange)
	return s
}

// attach wires the request events of one client connection.
func (s *Server) attach(client *socket.Socket) {
	logger := ctxlog.FromContext(s.ctx).With("sid", client.Id())
	logger.Info("Client connected.")

	client.On(protocol.EventSet, func(args ...any) {
		client.Emit(protocol.EventResult, s.handleSet(s.ctx, args))
	})
	client.On(protocol.EventGet, func(args ...any) {
		client.Emit(protocol.EventResult, s.handleGet(s.ctx, args))
	})
	client.On(protocol.EventSnapshot, func(args ...any) {
		client.Emit(protocol.EventResult, s.handleSnapshot(s.ctx, args))
	})
	client.On("disconnect", func(reason ...any) {
		logger.Info("Client disconnected.", "reason", reason)
	})
}

// onChange broadcasts the cells an edit changed.
func (s *Server) onChange(ctx context.Context, changes []engine.Change) {
	msg := protocol.Changed{Cells: make([]protocol.CellValue, 0, len(changes))}
	for _, c := range changes {
		msg.Cells = append(msg.Cells, protocol.CellValue{Cell: c.Address.String(), Value: c.Display})
	}
	ctxlog.FromContext(ctx).Debug("Broadcasting changes.", "cells", len(msg.Cells))
	s.broadcast(msg)
}

// Handler returns the HTTP handler serving Socket.IO and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io.ServeHandler(nil))
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// HTTP server down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := ctxlog.FromContext(ctx)
	httpServer := &http.Server{Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🧮 Grid server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("grid server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("🧮 Shutting down grid server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("grid server shutdown failed: %w", err)
	}
	logger.Debug("Grid server shut down gracefully.")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

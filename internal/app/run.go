package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/protocol"
	"github.com/specialistvlad/cellgrid/internal/remote"
	"github.com/specialistvlad/cellgrid/internal/repl"
	"github.com/specialistvlad/cellgrid/internal/server"
)

// Run executes the main application logic until the run mode finishes or
// ctx is cancelled. in feeds the terminal modes.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode().String())

	a.healthCheckServer(ctx)
	defer func() {
		_ = a.closeHealthCheckServer(ctx)
	}()

	var err error
	switch a.config.Mode() {
	case ModeServer:
		err = a.runServer(ctx)
	case ModeRemote:
		err = a.runRemote(ctx, in)
	default:
		err = a.runLocal(ctx, in)
	}

	a.logger.Debug("App.Run method finished.")
	return err
}

func (a *App) runServer(ctx context.Context) error {
	srv := server.New(ctx, a.engine)
	if err := srv.ListenAndServe(ctx, fmt.Sprintf(":%d", a.config.ListenPort)); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (a *App) runLocal(ctx context.Context, in io.Reader) error {
	a.logger.Info("📝 Starting local grid terminal.")
	term := repl.New(repl.NewLocal(a.engine), a.outW, repl.WithColor(a.config.Color))
	return term.Run(ctx, in)
}

func (a *App) runRemote(ctx context.Context, in io.Reader) error {
	client, err := remote.Dial(ctx, a.config.Connect)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", a.config.Connect, err)
	}
	defer client.Close()

	client.OnChange(func(msg protocol.Changed) {
		for _, c := range msg.Cells {
			a.logger.Debug("Remote cell changed.", "cell", c.Cell, "value", c.Value)
		}
	})

	a.logger.Info("📝 Starting remote grid terminal.", "url", a.config.Connect)
	term := repl.New(client, a.outW, repl.WithColor(a.config.Color))
	return term.Run(ctx, in)
}

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/formula"
)

// Prompt is printed before every command.
const Prompt = "cellgrid> "

const helpText = `Commands:
  set <cell> <text...>   store text in a cell (empty text clears it)
  get <cell>             print a cell's display value
  show [from] [to]       print a rectangle of cells (default A0 F9)
  cells                  list every non-blank cell
  deps <cell>            list references and dependents
  help                   print this help
  quit                   leave
`

// REPL runs commands against a Backend.
type REPL struct {
	backend Backend
	out     io.Writer
	color   bool
}

// Option configures a REPL.
type Option func(*REPL)

// WithColor highlights error markers and table headers.
func WithColor(enabled bool) Option {
	return func(r *REPL) { r.color = enabled }
}

// New creates a REPL writing to out.
func New(backend Backend, out io.Writer, opts ...Option) *REPL {
	r := &REPL{backend: backend, out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads commands from in until quit, end of input or ctx is cancelled.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("REPL started.")
	defer logger.Debug("REPL finished.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := r.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports whether the user asked to quit.
func (r *REPL) Exec(ctx context.Context, line string) bool {
	name, rest := splitWord(strings.TrimLeft(line, " \t"))

	var err error
	switch strings.ToLower(name) {
	case "":
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(r.out, helpText)
	case "set":
		err = r.set(ctx, rest)
	case "get":
		err = r.get(ctx, rest)
	case "show":
		err = r.show(ctx, strings.Fields(rest))
	case "cells":
		err = r.cells(ctx)
	case "deps":
		err = r.deps(ctx, strings.TrimSpace(rest))
	default:
		err = fmt.Errorf("unknown command %q, type help for a list", name)
	}

	if err != nil {
		fmt.Fprintln(r.out, r.paint(color.Red, "error: "+err.Error()))
	}
	return false
}

func (r *REPL) set(ctx context.Context, args string) error {
	cell, text := splitWord(strings.TrimLeft(args, " \t"))
	if cell == "" {
		return fmt.Errorf("usage: set <cell> <text...>")
	}

	value, err := r.backend.Set(ctx, cell, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s = %s\n", strings.ToUpper(cell), r.value(value))
	return nil
}

func (r *REPL) get(ctx context.Context, args string) error {
	cell := strings.TrimSpace(args)
	if cell == "" || strings.ContainsAny(cell, " \t") {
		return fmt.Errorf("usage: get <cell>")
	}

	value, err := r.backend.Get(ctx, cell)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, r.value(value))
	return nil
}

func (r *REPL) cells(ctx context.Context) error {
	cells, err := r.backend.Snapshot(ctx)
	if err != nil {
		return err
	}
	if len(cells) == 0 {
		fmt.Fprintln(r.out, "(empty grid)")
		return nil
	}

	for _, c := range cells {
		if c.Source == c.Value {
			fmt.Fprintf(r.out, "%-4s %s\n", c.Cell, r.value(c.Value))
			continue
		}
		fmt.Fprintf(r.out, "%-4s %s  (%s)\n", c.Cell, r.value(c.Value), c.Source)
	}
	return nil
}

func (r *REPL) deps(ctx context.Context, cell string) error {
	lister, ok := r.backend.(DependencyLister)
	if !ok {
		return fmt.Errorf("dependency listing is only available for local grids")
	}
	if cell == "" {
		return fmt.Errorf("usage: deps <cell>")
	}

	refs, dependents, err := lister.Dependencies(ctx, cell)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "references: %s\n", joinOrNone(refs))
	fmt.Fprintf(r.out, "dependents: %s\n", joinOrNone(dependents))
	return nil
}

// value renders a display value, highlighting error markers.
func (r *REPL) value(v string) string {
	if formula.IsMarker(v) {
		return r.paint(color.Red, v)
	}
	return v
}

func (r *REPL) paint(c color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

// splitWord splits s into its first word and the remainder after a single
// separating space. The remainder keeps any further spacing verbatim.
func splitWord(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/cellgrid/internal/engine"
	"github.com/specialistvlad/cellgrid/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return New(NewLocal(engine.New()), out), out
}

// exec runs one command and returns what it printed.
func exec(t *testing.T, r *REPL, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	quit := r.Exec(context.Background(), line)
	require.False(t, quit)
	return out.String()
}

func TestExec_SetAndGet(t *testing.T) {
	r, out := newTestREPL(t)

	assert.Equal(t, "A0 = 4\n", exec(t, r, out, "set A0 4"))
	assert.Equal(t, "B0 = 9\n", exec(t, r, out, "set b0 9"))
	assert.Equal(t, "A1 = 13\n", exec(t, r, out, "set A1 =A0 + B0"))
	assert.Equal(t, "A1 = 14\n", exec(t, r, out, "set A1 =A0 + B0 + 1"))
	assert.Equal(t, "14\n", exec(t, r, out, "get a1"))
	assert.Equal(t, "C0 = hello  world\n", exec(t, r, out, "set C0 hello  world"), "text is kept verbatim")
}

func TestExec_ErrorValues(t *testing.T) {
	r, out := newTestREPL(t)

	assert.Equal(t, "A0 = #DIV/0!\n", exec(t, r, out, "set A0 =1/0"))
	assert.Equal(t, "A1 = #PARSE!\n", exec(t, r, out, "set A1 =1+"))
	assert.Equal(t, "A2 = #CYCLE!\n", exec(t, r, out, "set A2 =A2"))
}

func TestExec_ClearCell(t *testing.T) {
	r, out := newTestREPL(t)
	exec(t, r, out, "set A0 4")
	exec(t, r, out, "set A1 =A0*2")

	assert.Equal(t, "A0 = \n", exec(t, r, out, "set A0"))
	assert.Equal(t, "0\n", exec(t, r, out, "get A1"))
}

func TestExec_BadInput(t *testing.T) {
	r, out := newTestREPL(t)

	testCases := []struct {
		line string
		want string
	}{
		{"set", "usage: set"},
		{"get", "usage: get"},
		{"get A0 B0", "usage: get"},
		{"get AA0", "invalid cell address"},
		{"set A100 1", "out of range"},
		{"frobnicate", `unknown command "frobnicate"`},
		{"show A0 B0 C0", "usage: show"},
		{"deps", "usage: deps"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			got := exec(t, r, out, tc.line)
			assert.True(t, strings.HasPrefix(got, "error: "), got)
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestExec_Show(t *testing.T) {
	r, out := newTestREPL(t)
	exec(t, r, out, "set A0 4")
	exec(t, r, out, "set B0 9")
	exec(t, r, out, "set A1 =A0+B0")

	want := strings.Join([]string{
		"   A   B",
		"0  4   9",
		"1  13  .",
	}, "\n") + "\n"

	assert.Equal(t, want, exec(t, r, out, "show A0 B1"))
	assert.Equal(t, want, exec(t, r, out, "show A0:B1"))
	assert.Equal(t, want, exec(t, r, out, "show B1 A0"), "corners may come in any order")
}

func TestExec_ShowDefaultRange(t *testing.T) {
	r, out := newTestREPL(t)

	lines := strings.Split(strings.TrimSuffix(exec(t, r, out, "show"), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "   A  B  C  D  E  F", lines[0])
	assert.Equal(t, "9  .  .  .  .  .  .", lines[10])

	lines = strings.Split(strings.TrimSuffix(exec(t, r, out, "show X95"), "\n"), "\n")
	require.Len(t, lines, 6, "clamped to the grid edge")
	assert.Equal(t, "    X  Y  Z", lines[0])
}

func TestExec_Cells(t *testing.T) {
	r, out := newTestREPL(t)
	assert.Equal(t, "(empty grid)\n", exec(t, r, out, "cells"))

	exec(t, r, out, "set A0 4")
	exec(t, r, out, "set A1 =A0*2")

	assert.Equal(t, "A0   4\nA1   8  (=A0*2)\n", exec(t, r, out, "cells"))
}

func TestExec_Deps(t *testing.T) {
	r, out := newTestREPL(t)
	exec(t, r, out, "set A1 =A0+B0")
	exec(t, r, out, "set A2 =A1")

	assert.Equal(t, "references: A0, B0\ndependents: A2\n", exec(t, r, out, "deps A1"))
	assert.Equal(t, "references: (none)\ndependents: A1\n", exec(t, r, out, "deps A0"))
}

func TestExec_Help(t *testing.T) {
	r, out := newTestREPL(t)
	assert.Contains(t, exec(t, r, out, "help"), "show [from] [to]")
	assert.Equal(t, "", exec(t, r, out, "   "))
}

func TestRun(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(NewLocal(engine.New()), out)

	in := strings.NewReader("set A0 2\nset A1 =A0*A0\nquit\nset A2 1\n")
	require.NoError(t, r.Run(context.Background(), in))

	assert.Contains(t, out.String(), "A1 = 4")
	assert.NotContains(t, out.String(), "A2", "nothing runs after quit")
	assert.True(t, strings.HasPrefix(out.String(), Prompt))
}

func TestRun_EndOfInput(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(NewLocal(engine.New()), out)
	require.NoError(t, r.Run(context.Background(), strings.NewReader("get A0\n")))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(NewLocal(engine.New()), &bytes.Buffer{})
	err := r.Run(ctx, strings.NewReader("get A0\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

// remoteOnly is a backend without dependency listing, like a remote grid.
type remoteOnly struct {
	err error
}

func (b remoteOnly) Set(context.Context, string, string) (string, error) { return "", b.err }
func (b remoteOnly) Get(context.Context, string) (string, error)         { return "", b.err }
func (b remoteOnly) Snapshot(context.Context) ([]protocol.CellValue, error) {
	return nil, b.err
}

func TestExec_BackendErrors(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(remoteOnly{err: errors.New("connection lost")}, out)

	for _, line := range []string{"set A0 1", "get A0", "show", "cells"} {
		assert.Equal(t, "error: connection lost\n", exec(t, r, out, line), line)
	}
	assert.Contains(t, exec(t, r, out, "deps A0"), "only available for local grids")
}

func TestWithColor(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(NewLocal(engine.New()), out, WithColor(true))
	assert.True(t, r.color)

	r.Exec(context.Background(), "set A0 4")
	assert.Contains(t, out.String(), "4")
}

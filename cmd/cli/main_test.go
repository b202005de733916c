package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SeedError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A seed file with a syntax error fails the application startup.
	invalidHCL := `
		cell "A0" {
			source = "4"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error for a broken seed file")
	require.Contains(t, runErr.Error(), "startup failed")
	require.Contains(t, runErr.Error(), "failed to parse seed file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	out := &bytes.Buffer{}

	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_SeededTerminalSession(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	seed := `
cell "A0" { source = "4" }
cell "B0" { source = "9" }
cell "A1" { source = "=A0+B0" }
`
	filePath := filepath.Join(t.TempDir(), "grid.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(seed), 0600))

	in := strings.NewReader("get A1\nset A0 5\nget A1\nset B1 =A1/0\nquit\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), in, out, &bytes.Buffer{}, []string{"-s", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "13\n")
	require.Contains(t, out.String(), "A0 = 5\n")
	require.Contains(t, out.String(), "14\n")
	require.Contains(t, out.String(), "B1 = #DIV/0!\n")
}

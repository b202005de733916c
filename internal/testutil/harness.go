// Package testutil holds harnesses shared by the end-to-end tests: seed
// files written to a temporary directory, an App built from them, and
// assertions over the resulting grid.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/cellgrid/internal/app"
	"github.com/specialistvlad/cellgrid/internal/repl"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Dir       string
}

// RunSeedTest writes files (relative path to HCL content) into a temporary
// directory and starts an App seeded from that directory.
func RunSeedTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		SeedPaths: []string{tmpDir},
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(t, err)

	logBuffer := &app.SafeBuffer{}
	testApp, err := app.NewApp(&bytes.Buffer{}, logBuffer, cfg)

	if os.Getenv("CELLGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
		Dir:       tmpDir,
	}
}

// RunTerminal feeds script to a local terminal over the result's grid and
// returns everything the terminal printed.
func RunTerminal(t *testing.T, result *HarnessResult, script string) string {
	t.Helper()
	require.NotNil(t, result.App, "app failed to start: %v", result.Err)

	out := &app.SafeBuffer{}
	term := repl.New(repl.NewLocal(result.App.Engine()), out)
	require.NoError(t, term.Run(context.Background(), strings.NewReader(script)))
	return out.String()
}

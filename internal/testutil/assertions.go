package testutil

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/engine"
)

// AssertCells checks the display value of every cell in want.
func AssertCells(t *testing.T, e *engine.Engine, want map[string]string) {
	t.Helper()

	got := make(map[string]string, len(want))
	for raw := range want {
		got[raw] = e.CellValue(context.Background(), cellid.MustParse(raw))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cell values mismatch (-want +got):\n%s", diff)
	}
}

// SetCell edits the cell named raw.
func SetCell(ctx context.Context, e *engine.Engine, raw, text string) {
	e.SetCellSource(ctx, cellid.MustParse(raw), text)
}

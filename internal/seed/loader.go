package seed

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/fsutil"
)

// Extension is the file extension of seed files.
const Extension = ".hcl"

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cell", LabelNames: []string{"address"}},
	},
}

// cellBody is the decoded body of a cell block.
type cellBody struct {
	Source string `hcl:"source"`
}

// Loader reads seed files into a map of cell sources. Each Load or Parse
// call is independent, so a Loader may be reused.
type Loader struct {
	parser *hclparse.Parser
	// origin remembers where each cell was first defined in the current call.
	origin map[cellid.Address]hcl.Range
}

// NewLoader creates a new seed loader.
func NewLoader() *Loader {
	l := &Loader{}
	l.reset()
	return l
}

// reset drops the parser's file cache and the cell origins of a previous call.
func (l *Loader) reset() {
	l.parser = hclparse.NewParser()
	l.origin = make(map[cellid.Address]hcl.Range)
}

// Load reads every seed file reachable from paths. Directories are scanned
// recursively for .hcl files.
func (l *Loader) Load(ctx context.Context, paths ...string) (map[cellid.Address]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Seed loader started.", "path_count", len(paths))

	files, err := fsutil.ResolvePaths(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered seed files.", "count", len(files))

	l.reset()
	cells := make(map[cellid.Address]string)
	for _, file := range files {
		f, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse seed file %s: %w", file, diags)
		}
		if diags := l.decode(f.Body, cells); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode seed file %s: %w", file, diags)
		}
	}

	logger.Debug("Seed loading complete.", "files", len(files), "cells", len(cells))
	return cells, nil
}

// Parse decodes a single in-memory seed document.
func (l *Loader) Parse(filename string, src []byte) (map[cellid.Address]string, error) {
	l.reset()
	f, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed %s: %w", filename, diags)
	}

	cells := make(map[cellid.Address]string)
	if diags := l.decode(f.Body, cells); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode seed %s: %w", filename, diags)
	}
	return cells, nil
}

func (l *Loader) decode(body hcl.Body, cells map[cellid.Address]string) hcl.Diagnostics {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return diags
	}

	for _, block := range content.Blocks {
		addr, err := cellid.Parse(block.Labels[0])
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid cell address",
				Detail:   err.Error(),
				Subject:  block.LabelRanges[0].Ptr(),
			})
			continue
		}

		if first, dup := l.origin[addr]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate cell",
				Detail:   fmt.Sprintf("Cell %s was already defined at %s.", addr, first),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}

		var cb cellBody
		if d := gohcl.DecodeBody(block.Body, nil, &cb); d.HasErrors() {
			diags = append(diags, d...)
			continue
		}

		l.origin[addr] = block.DefRange
		cells[addr] = cb.Source
	}
	return diags
}

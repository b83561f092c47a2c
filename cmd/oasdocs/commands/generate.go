package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/erraggy/oasdocs/config"
	"github.com/erraggy/oasdocs/internal/cliutil"
	"github.com/erraggy/oasdocs/parser"
	"github.com/erraggy/oasdocs/renderer"
	"github.com/erraggy/oasdocs/validator"
)

// generateAll renders every input in order into the shared output directory.
// The first failure stops the batch; sites already written are left in place.
func (a *app) generateAll(ctx context.Context, s config.Settings) error {
	for _, input := range s.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := a.generate(input, s); err != nil {
			return err
		}
	}
	return nil
}

// generate renders one spec and writes the site. It returns the paths written.
func (a *app) generate(input string, s config.Settings) ([]string, error) {
	log := a.log.With("source", input)

	res, err := parser.ParseWithOptions(
		parser.WithFilePath(input),
		parser.WithLogger(a.log),
	)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed document",
		"version", res.Version,
		"size", parser.FormatBytes(res.SourceSize),
		"load_time", res.LoadTime,
		"paths", res.Stats.PathCount,
		"operations", res.Stats.OperationCount,
		"schemas", res.Stats.SchemaCount,
	)

	// Validation is advisory; findings never block rendering.
	for _, msg := range validator.Validate(res.Document).Errors {
		log.Warn("validation finding", "error", msg)
	}

	out, err := renderer.Render(res.Document, s.Render)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", input, err)
	}
	files, err := out.WriteFiles(s.Output)
	if err != nil {
		return files, err
	}
	for _, f := range files {
		log.Debug("wrote file", "path", f)
	}

	cliutil.Successf(a.stdout, "%s -> %s (%d operations, %s theme)",
		input, filepath.Join(s.Output, renderer.IndexFile), len(out.Index), out.Theme)
	return files, nil
}

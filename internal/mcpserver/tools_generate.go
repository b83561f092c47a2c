package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdocs/renderer"
	"github.com/erraggy/oasdocs/validator"
)

type generateInput struct {
	Spec      specInput `json:"spec"                   jsonschema:"The OAS document to render"`
	OutputDir string    `json:"output_dir"             jsonschema:"Directory to write the site into (created if missing)"`
	Theme     string    `json:"theme,omitempty"        jsonschema:"Theme name: light, dark, dracula or github"`
	Title     string    `json:"title,omitempty"        jsonschema:"Page title; defaults to info.title"`
	Logo      string    `json:"logo,omitempty"         jsonschema:"Logo file path or URL"`
	Favicon   string    `json:"favicon,omitempty"      jsonschema:"Favicon file path or URL"`
	TryItOut  *bool     `json:"try_it_out,omitempty"   jsonschema:"Add a Try It Out placeholder to each operation (default false)"`
	Search    *bool     `json:"search,omitempty"       jsonschema:"Add the search box and search.json (default true)"`
	TOC       *bool     `json:"toc,omitempty"          jsonschema:"Add the endpoint table of contents (default true)"`
}

type generateOutput struct {
	OutputDir      string   `json:"output_dir"`
	Theme          string   `json:"theme"`
	Files          []string `json:"files,omitempty"`
	PathCount      int      `json:"path_count"`
	OperationCount int      `json:"operation_count"`
	SchemaCount    int      `json:"schema_count"`
	SearchEnabled  bool     `json:"search_enabled"`
	Warnings       []string `json:"warnings,omitempty"`
}

func handleGenerateDocs(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	theme := cfg.Theme
	if input.Theme != "" {
		theme = input.Theme
	}
	opts := []renderer.Option{
		renderer.WithTheme(theme),
		renderer.WithTitle(input.Title),
		renderer.WithLogo(input.Logo),
		renderer.WithFavicon(input.Favicon),
	}
	if input.TryItOut != nil {
		opts = append(opts, renderer.WithTryItOut(*input.TryItOut))
	}
	if input.Search != nil {
		opts = append(opts, renderer.WithSearch(*input.Search))
	}
	if input.TOC != nil {
		opts = append(opts, renderer.WithTOC(*input.TOC))
	}

	rendered, err := renderer.RenderWithOptions(parseResult.Document, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	files, err := rendered.WriteFiles(input.OutputDir)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	// Findings are advisory: the site is written either way.
	check := validator.Validate(parseResult.Document)
	warnings := makeSlice[string](len(check.Errors))
	warnings = append(warnings, check.Errors...)
	if _, known := renderer.ResolveTheme(theme); !known {
		warnings = append(warnings, fmt.Sprintf("unknown theme %q, used %s", theme, rendered.Theme))
	}

	return nil, generateOutput{
		OutputDir:      input.OutputDir,
		Theme:          rendered.Theme,
		Files:          files,
		PathCount:      parseResult.Stats.PathCount,
		OperationCount: parseResult.Stats.OperationCount,
		SchemaCount:    parseResult.Stats.SchemaCount,
		SearchEnabled:  rendered.SearchEnabled(),
		Warnings:       warnings,
	}, nil
}

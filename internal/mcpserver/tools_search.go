package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdocs/renderer"
)

type searchInput struct {
	Spec  specInput `json:"spec"            jsonschema:"The OAS document to search"`
	Query string    `json:"query"           jsonschema:"Text to find in operation titles or paths (case-insensitive)"`
	Limit int       `json:"limit,omitempty" jsonschema:"Maximum number of hits (default 5)"`
}

type searchHit struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
}

type searchOutput struct {
	Query          string      `json:"query"`
	OperationCount int         `json:"operation_count"`
	Returned       int         `json:"returned"`
	Results        []searchHit `json:"results,omitempty"`
}

func handleSearchEndpoints(_ context.Context, _ *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, searchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return errResult(fmt.Errorf("query is required")), searchOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), searchOutput{}, nil
	}

	index, err := renderer.BuildIndex(parseResult.Document, nil)
	if err != nil {
		return errResult(err), searchOutput{}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = cfg.SearchLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	entries := index.Search(input.Query, limit)
	output := searchOutput{
		Query:          input.Query,
		OperationCount: len(index),
		Results:        makeSlice[searchHit](len(entries)),
	}
	for _, e := range entries {
		output.Results = append(output.Results, searchHit{
			Method:      e.Method,
			Path:        e.Path,
			Title:       e.Title,
			Description: e.Description,
			Slug:        e.Slug,
		})
	}
	output.Returned = len(output.Results)
	return nil, output, nil
}

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdocs capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdocs"
)

const serverInstructions = `oasdocs MCP server: renders OpenAPI/Swagger documents into static HTML documentation, validates them, and searches their endpoints.

Configuration: defaults are configurable via OASDOCS_MCP_* environment variables set in your MCP client config.

Key settings:
- OASDOCS_MCP_THEME (default: light): theme used by generate_docs when none is given
- OASDOCS_MCP_VALIDATE_STRICT (default: false): enable strict validation by default
- OASDOCS_MCP_SEARCH_LIMIT (default: 5): default result limit for search_endpoints
- OASDOCS_MCP_CACHE_ENABLED (default: true): disable spec caching entirely
- OASDOCS_MCP_CACHE_FILE_TTL (default: 15m): cache TTL for local file specs

Caching: Parsed specs are cached per session. File entries use path+mtime as key (auto-invalidated on change). Least recently used entries are dropped at the size limit, and expired entries are pruned every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		sessionCache.runPruner(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdocs", Version: oasdocs.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_docs",
		Description: "Render an OpenAPI 3.x or Swagger 2.0 document into a static HTML documentation site (index.html, search.json, assets/style.css, assets/app.js) in output_dir. Themes: light, dark, dracula, github. Validation findings are reported as warnings and never block generation.",
	}, handleGenerateDocs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_spec",
		Description: "Check that an OpenAPI document declares openapi or swagger, info and paths. With strict=true, OAS 3.x and Swagger 2.0 documents are also validated structurally. Use offset/limit to paginate through errors.",
	}, handleValidateSpec)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_endpoints",
		Description: "Search the endpoints of an OpenAPI document the same way the generated docs search box does: case-insensitive substring match on the operation title (summary, else description, else path) or the path. Returns the in-page anchor slug for each hit.",
	}, handleSearchEndpoints)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 || limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "My API", "version": "1.0.0"},
  "paths": {
    "/users": {
      "get": {
        "summary": "List users",
        "responses": {"200": {"description": "Success"}}
      }
    }
  }
}`

func TestGenerateDocs(t *testing.T) {
	sessionCache.clear()
	out := t.TempDir()

	res, output, err := handleGenerateDocs(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:      specInput{Content: usersSpec},
		OutputDir: out,
		Theme:     "dark",
	})
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, "dark", output.Theme)
	assert.Equal(t, 1, output.OperationCount)
	assert.True(t, output.SearchEnabled)
	assert.Len(t, output.Files, 4)
	assert.Empty(t, output.Warnings)

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `id="-users-get"`)
}

func TestGenerateDocs_WarningsDoNotBlock(t *testing.T) {
	sessionCache.clear()
	out := t.TempDir()
	search := false

	res, output, err := handleGenerateDocs(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:      specInput{Content: "openapi: 3.0.0\ninfo:\n  title: No Paths\n  version: '1'\n"},
		OutputDir: out,
		Theme:     "solarized",
		Search:    &search,
	})
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, "light", output.Theme)
	assert.False(t, output.SearchEnabled)
	assert.Len(t, output.Files, 3)
	assert.Contains(t, output.Warnings, "missing required field: paths")
	assert.Len(t, output.Warnings, 2)

	_, err = os.Stat(filepath.Join(out, "search.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateDocs_Errors(t *testing.T) {
	sessionCache.clear()

	res, _, err := handleGenerateDocs(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec: specInput{Content: usersSpec},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)

	res, _, err = handleGenerateDocs(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:      specInput{Content: "{ not json"},
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestValidateSpec(t *testing.T) {
	sessionCache.clear()

	tests := []struct {
		name      string
		content   string
		valid     bool
		errCount  int
		wantFirst string
	}{
		{
			name:    "valid",
			content: usersSpec,
			valid:   true,
		},
		{
			name:      "only openapi",
			content:   `{"openapi": "3.0.0"}`,
			errCount:  2,
			wantFirst: "missing required field: info",
		},
		{
			name:      "nothing",
			content:   `{"x-note": "empty"}`,
			errCount:  3,
			wantFirst: "missing required field: openapi or swagger",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, output, err := handleValidateSpec(context.Background(), &mcp.CallToolRequest{}, validateInput{
				Spec: specInput{Content: tt.content},
			})
			require.NoError(t, err)
			require.Nil(t, res)
			assert.Equal(t, tt.valid, output.Valid)
			assert.Equal(t, tt.errCount, output.ErrorCount)
			assert.Equal(t, tt.errCount, output.Returned)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, output.Errors[0])
			}
		})
	}
}

func TestValidateSpec_Pagination(t *testing.T) {
	sessionCache.clear()
	_, output, err := handleValidateSpec(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec:   specInput{Content: `{"x-note": "empty"}`},
		Offset: 1,
		Limit:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, output.ErrorCount)
	assert.Equal(t, []string{"missing required field: info"}, output.Errors)
}

func TestSearchEndpoints(t *testing.T) {
	sessionCache.clear()

	res, output, err := handleSearchEndpoints(context.Background(), &mcp.CallToolRequest{}, searchInput{
		Spec:  specInput{File: "../../testdata/petstore-3.0.yaml"},
		Query: "PET",
		Limit: 2,
	})
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, 4, output.OperationCount)
	assert.Equal(t, 2, output.Returned)
	assert.Equal(t, searchHit{
		Method: "get",
		Path:   "/pets",
		Title:  "List all pets",
		Slug:   "-pets-get",
	}, output.Results[0])
}

func TestSearchEndpoints_EmptyQuery(t *testing.T) {
	res, _, err := handleSearchEndpoints(context.Background(), &mcp.CallToolRequest{}, searchInput{
		Spec:  specInput{Content: usersSpec},
		Query: "  ",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

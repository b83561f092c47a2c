package walker

import (
	"context"

	"github.com/erraggy/oasdocs/parser"
)

// WalkContext provides contextual information about the current node being visited.
// It follows the http.Request pattern for context access.
type WalkContext struct {
	// JSONPath is the full JSON path to the current node.
	// Always populated. Example: "$.paths['/pets'].get.responses['200']"
	JSONPath string

	// PathTemplate is the URL path template when walking within $.paths scope.
	// Empty when not in paths scope. Example: "/pets/{petId}"
	PathTemplate string

	// Method is the HTTP method when walking within an operation scope.
	// Empty when not in operation scope. Example: "get", "post"
	Method string

	// StatusCode is the HTTP status code when walking within a response scope.
	// Empty when not in response scope. Example: "200", "default"
	StatusCode string

	// Name is the map key for named schemas and properties.
	Name string

	// IsComponent is true when the current node is within components.schemas
	// (OAS 3.x) or definitions (OAS 2.0).
	IsComponent bool

	// Depth is the schema nesting depth, 0 for a top-level schema.
	Depth int

	// PathItem is the enclosing path item within $.paths scope.
	PathItem *parser.PathItem

	// Operation is the enclosing operation within an operation scope.
	Operation *parser.Operation

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// InPathsScope returns true if currently walking within $.paths.
func (wc *WalkContext) InPathsScope() bool {
	return wc.PathTemplate != ""
}

// InOperationScope returns true if currently walking within an operation.
func (wc *WalkContext) InOperationScope() bool {
	return wc.Method != ""
}

// child returns a copy of wc scoped to jsonPath. Name and Depth are reset.
func (wc *WalkContext) child(jsonPath string) *WalkContext {
	c := *wc
	c.JSONPath = jsonPath
	c.Name = ""
	c.Depth = 0
	return &c
}

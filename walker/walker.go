package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/oasdocs/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Handler types for each node type.

// InfoHandler is called for the Info object.
type InfoHandler func(wc *WalkContext, info *parser.Info) Action

// PathHandler is called for each path entry; wc.PathTemplate holds the path.
type PathHandler func(wc *WalkContext, item *parser.PathItem) Action

// OperationHandler is called for each Operation; wc.Method holds the lower-case method.
type OperationHandler func(wc *WalkContext, op *parser.Operation) Action

// ParameterHandler is called for each Parameter. Path-level parameters are
// visited before the operations of their path, with an empty wc.Method.
type ParameterHandler func(wc *WalkContext, param *parser.Parameter) Action

// RequestBodyHandler is called for each RequestBody (OAS 3.x only).
type RequestBodyHandler func(wc *WalkContext, body *parser.RequestBody) Action

// ResponseHandler is called for each Response; wc.StatusCode holds the code.
type ResponseHandler func(wc *WalkContext, resp *parser.Response) Action

// SchemaHandler is called for each Schema, including nested schemas.
type SchemaHandler func(wc *WalkContext, schema *parser.Schema) Action

// SchemaSkippedHandler is called when a schema is skipped because of the
// depth limit ("depth"), because it is already on the current branch
// ("cycle"), or because the walk reached maxSchemaVisits ("limit").
type SchemaSkippedHandler func(wc *WalkContext, reason string, schema *parser.Schema)

const defaultMaxDepth = 100

// maxSchemaVisits caps schema visits per walk. Shared schemas are visited
// once per reference, so a deep chain of shared schemas grows exponentially.
const maxSchemaVisits = 100_000

// Walker traverses a parser.Document in source order and calls handlers for
// each node type.
type Walker struct {
	onInfo          InfoHandler
	onPath          PathHandler
	onOperation     OperationHandler
	onParameter     ParameterHandler
	onRequestBody   RequestBodyHandler
	onResponse      ResponseHandler
	onSchema        SchemaHandler
	onSchemaSkipped SchemaSkippedHandler

	maxDepth int
	userCtx  context.Context

	// input sources for WalkWithOptions
	filePath *string
	parsed   *parser.ParseResult

	visitedSchemas map[*parser.Schema]bool
	schemaVisits   int
	stopped        bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{maxDepth: defaultMaxDepth}
}

// Walk traverses doc: info first, then every path with its parameters and
// operations, then the named schemas. Handlers run in source order.
func (w *Walker) Walk(doc *parser.Document) error {
	if doc == nil {
		return fmt.Errorf("walker: nil document")
	}
	w.stopped = false
	w.visitedSchemas = make(map[*parser.Schema]bool)
	w.schemaVisits = 0
	if w.maxDepth <= 0 {
		w.maxDepth = defaultMaxDepth
	}

	root := &WalkContext{JSONPath: "$", ctx: w.userCtx}

	if doc.Info != nil && w.onInfo != nil {
		if w.onInfo(root.child("$.info"), doc.Info) == Stop {
			return nil
		}
	}

	if err := w.walkPaths(root, doc.Paths); err != nil || w.stopped {
		return err
	}

	schemasPath := "$.components.schemas"
	if doc.IsOAS2() {
		schemasPath = "$.definitions"
	}
	for name, schema := range doc.Schemas().All() {
		if w.stopped {
			return nil
		}
		wc := root.child(schemasPath + "['" + name + "']")
		wc.Name = name
		wc.IsComponent = true
		w.walkSchema(wc, schema, 0)
	}
	return nil
}

func (w *Walker) walkPaths(root *WalkContext, paths *parser.OrderedMap[*parser.PathItem]) error {
	for tmpl, item := range paths.All() {
		if err := root.Context().Err(); err != nil {
			return fmt.Errorf("walker: %w", err)
		}
		if item == nil {
			continue
		}

		wc := root.child("$.paths['" + tmpl + "']")
		wc.PathTemplate = tmpl
		wc.PathItem = item

		if w.onPath != nil {
			switch w.onPath(wc, item) {
			case Stop:
				w.stopped = true
				return nil
			case SkipChildren:
				continue
			}
		}

		for i, param := range item.Parameters {
			pc := wc.child(fmt.Sprintf("%s.parameters[%d]", wc.JSONPath, i))
			if w.walkParameter(pc, param); w.stopped {
				return nil
			}
		}

		for method, op := range item.Operations.All() {
			if op == nil {
				continue
			}
			oc := wc.child(wc.JSONPath + "." + method)
			oc.Method = method
			oc.Operation = op
			if w.walkOperation(oc, op); w.stopped {
				return nil
			}
		}
	}
	return nil
}

func (w *Walker) walkOperation(wc *WalkContext, op *parser.Operation) {
	if w.onOperation != nil {
		switch w.onOperation(wc, op) {
		case Stop:
			w.stopped = true
			return
		case SkipChildren:
			return
		}
	}

	for i, param := range op.Parameters {
		pc := wc.child(fmt.Sprintf("%s.parameters[%d]", wc.JSONPath, i))
		if w.walkParameter(pc, param); w.stopped {
			return
		}
	}

	if op.RequestBody != nil {
		bc := wc.child(wc.JSONPath + ".requestBody")
		action := Continue
		if w.onRequestBody != nil {
			action = w.onRequestBody(bc, op.RequestBody)
		}
		switch action {
		case Stop:
			w.stopped = true
			return
		case Continue:
			for mediaType, mt := range op.RequestBody.Content.All() {
				if mt == nil {
					continue
				}
				mc := bc.child(bc.JSONPath + ".content['" + mediaType + "'].schema")
				if w.walkSchema(mc, mt.Schema, 0); w.stopped {
					return
				}
			}
		}
	}

	for code, resp := range op.Responses.All() {
		if resp == nil {
			continue
		}
		rc := wc.child(wc.JSONPath + ".responses['" + code + "']")
		rc.StatusCode = code
		if w.walkResponse(rc, resp); w.stopped {
			return
		}
	}
}

func (w *Walker) walkParameter(wc *WalkContext, param *parser.Parameter) {
	if param == nil {
		return
	}
	action := Continue
	if w.onParameter != nil {
		action = w.onParameter(wc, param)
	}
	switch action {
	case Stop:
		w.stopped = true
	case Continue:
		w.walkSchema(wc.child(wc.JSONPath+".schema"), param.Schema, 0)
	}
}

func (w *Walker) walkResponse(wc *WalkContext, resp *parser.Response) {
	action := Continue
	if w.onResponse != nil {
		action = w.onResponse(wc, resp)
	}
	switch action {
	case Stop:
		w.stopped = true
		return
	case SkipChildren:
		return
	}

	if resp.Schema != nil {
		if w.walkSchema(wc.child(wc.JSONPath+".schema"), resp.Schema, 0); w.stopped {
			return
		}
	}
	for mediaType, mt := range resp.Content.All() {
		if mt == nil {
			continue
		}
		mc := wc.child(wc.JSONPath + ".content['" + mediaType + "'].schema")
		if w.walkSchema(mc, mt.Schema, 0); w.stopped {
			return
		}
	}
}

func (w *Walker) walkSchema(wc *WalkContext, schema *parser.Schema, depth int) {
	if schema == nil || w.stopped {
		return
	}
	if depth > w.maxDepth {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(wc, "depth", schema)
		}
		return
	}
	if w.visitedSchemas[schema] {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(wc, "cycle", schema)
		}
		return
	}
	if w.schemaVisits >= maxSchemaVisits {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(wc, "limit", schema)
		}
		return
	}
	w.schemaVisits++
	w.visitedSchemas[schema] = true
	defer delete(w.visitedSchemas, schema)

	wc.Depth = depth
	if w.onSchema != nil {
		switch w.onSchema(wc, schema) {
		case Stop:
			w.stopped = true
			return
		case SkipChildren:
			return
		}
	}

	for name, prop := range schema.Properties.All() {
		pc := wc.child(wc.JSONPath + ".properties['" + name + "']")
		pc.Name = name
		if w.walkSchema(pc, prop, depth+1); w.stopped {
			return
		}
	}
	if schema.Items != nil {
		w.walkSchema(wc.child(wc.JSONPath+".items"), schema.Items, depth+1)
	}
}

package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/oasdocs/internal/options"
	"github.com/erraggy/oasdocs/parser"
)

// Option configures the Walker.
type Option func(*Walker)

// WithFilePath specifies a file path to parse and walk.
func WithFilePath(path string) Option {
	return func(w *Walker) {
		w.filePath = &path
	}
}

// WithParsed specifies a pre-parsed result to walk.
func WithParsed(result *parser.ParseResult) Option {
	return func(w *Walker) {
		w.parsed = result
	}
}

// WithMaxSchemaDepth sets the maximum schema recursion depth.
// If depth is not positive, it is silently ignored and the default (100) is kept.
func WithMaxSchemaDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithUserContext sets the context for cancellation and deadline propagation.
// The context is available to handlers via wc.Context().
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) {
		w.userCtx = ctx
	}
}

// WithInfoHandler sets the handler for Info objects.
func WithInfoHandler(fn InfoHandler) Option {
	return func(w *Walker) { w.onInfo = fn }
}

// WithPathHandler sets the handler for path entries.
func WithPathHandler(fn PathHandler) Option {
	return func(w *Walker) { w.onPath = fn }
}

// WithOperationHandler sets the handler for Operation objects.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithParameterHandler sets the handler for Parameter objects.
func WithParameterHandler(fn ParameterHandler) Option {
	return func(w *Walker) { w.onParameter = fn }
}

// WithRequestBodyHandler sets the handler for RequestBody objects (OAS 3.x only).
func WithRequestBodyHandler(fn RequestBodyHandler) Option {
	return func(w *Walker) { w.onRequestBody = fn }
}

// WithResponseHandler sets the handler for Response objects.
func WithResponseHandler(fn ResponseHandler) Option {
	return func(w *Walker) { w.onResponse = fn }
}

// WithSchemaHandler sets the handler for Schema objects.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithSchemaSkippedHandler sets the handler called when schemas are skipped.
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

// WalkWithOptions walks a document using functional options for input, handlers, and configuration.
//
// Example:
//
//	err := walker.WalkWithOptions(
//	    walker.WithFilePath("openapi.yaml"),
//	    walker.WithOperationHandler(func(wc *walker.WalkContext, op *parser.Operation) walker.Action {
//	        fmt.Println(wc.Method, wc.PathTemplate)
//	        return walker.SkipChildren
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	if err := options.ValidateSingleInputSource(
		"walker",
		[]string{"WithFilePath", "WithParsed"},
		w.filePath != nil, w.parsed != nil,
	); err != nil {
		return err
	}

	result := w.parsed
	if w.filePath != nil {
		var err error
		result, err = parser.ParseWithOptions(parser.WithFilePath(*w.filePath))
		if err != nil {
			return fmt.Errorf("walker: %w", err)
		}
	}
	return w.Walk(result.Document)
}

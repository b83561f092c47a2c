package renderer

import (
	"github.com/erraggy/oasdocs/internal/httputil"
	"github.com/erraggy/oasdocs/internal/naming"
	"github.com/erraggy/oasdocs/parser"
	"github.com/erraggy/oasdocs/walker"
)

// builder collects the page model and search index during a walk.
type builder struct {
	log     parser.Logger
	groups  []pathGroup
	schemas []schemaView
	index   SearchIndex
}

// build walks doc in source order and returns the endpoint groups, the named
// schemas and the search index.
func build(doc *parser.Document, log parser.Logger) (*builder, error) {
	b := &builder{log: log, index: SearchIndex{}}

	w := walker.New()
	for _, opt := range []walker.Option{
		walker.WithPathHandler(b.onPath),
		walker.WithOperationHandler(b.onOperation),
		walker.WithSchemaHandler(b.onSchema),
	} {
		opt(w)
	}
	if err := w.Walk(doc); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *builder) onPath(wc *walker.WalkContext, item *parser.PathItem) walker.Action {
	b.groups = append(b.groups, pathGroup{
		Path:    wc.PathTemplate,
		Slug:    naming.Slug(wc.PathTemplate),
		Summary: item.Summary,
	})
	return walker.Continue
}

func (b *builder) onOperation(wc *walker.WalkContext, op *parser.Operation) walker.Action {
	path, method := wc.PathTemplate, wc.Method
	view := operationView{
		Path:        path,
		Method:      method,
		MethodLabel: naming.Upper(method),
		Slug:        OperationSlug(path, method),
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  op.Deprecated,
		Tags:        op.Tags,
	}

	var bodyParam *parser.Parameter
	for _, p := range mergeParameters(wc.PathItem, op) {
		if p.In == parser.ParamInBody {
			bodyParam = p
			continue
		}
		view.Params = append(view.Params, b.paramView(p))
	}
	view.Body = b.requestBody(op, bodyParam)

	for code, resp := range op.Responses.All() {
		if resp == nil {
			continue
		}
		view.Responses = append(view.Responses, b.responseView(code, resp))
	}

	last := &b.groups[len(b.groups)-1]
	last.Operations = append(last.Operations, view)

	b.index = append(b.index, SearchEntry{
		Path:        path,
		Method:      method,
		Title:       searchTitle(op.Summary, op.Description, path),
		Description: op.Description,
		Slug:        view.Slug,
	})
	return walker.SkipChildren
}

func (b *builder) onSchema(wc *walker.WalkContext, s *parser.Schema) walker.Action {
	if !wc.IsComponent || wc.Depth != 0 {
		return walker.SkipChildren
	}
	b.schemas = append(b.schemas, schemaView{
		Name:        wc.Name,
		Slug:        SchemaSlug(wc.Name),
		Type:        s.TypeName(),
		Description: s.Description,
		schemaBlock: b.schemaBlock(s, wc.JSONPath),
	})
	return walker.SkipChildren
}

// mergeParameters returns the path-level parameters not overridden by the
// operation, followed by the operation's own parameters. Parameters match on
// (name, in).
func mergeParameters(item *parser.PathItem, op *parser.Operation) []*parser.Parameter {
	if item == nil || len(item.Parameters) == 0 {
		return op.Parameters
	}
	type key struct{ name, in string }
	overridden := make(map[key]bool, len(op.Parameters))
	for _, p := range op.Parameters {
		if p != nil && p.Ref == "" {
			overridden[key{p.Name, p.In}] = true
		}
	}
	merged := make([]*parser.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	for _, p := range item.Parameters {
		if p == nil || overridden[key{p.Name, p.In}] && p.Ref == "" {
			continue
		}
		merged = append(merged, p)
	}
	return append(merged, op.Parameters...)
}

func (b *builder) paramView(p *parser.Parameter) paramView {
	v := paramView{
		Name:        p.Name,
		In:          p.In,
		Type:        p.TypeName(),
		Required:    p.Required,
		Description: p.Description,
	}
	if p.Ref != "" {
		v.Ref = p.Ref
		if v.Name == "" {
			v.Name = (&parser.Schema{Ref: p.Ref}).RefName()
		}
	}
	return v
}

// requestBody picks the first JSON media type with a schema, or the Swagger
// 2.0 body parameter. It returns nil when there is nothing to print.
func (b *builder) requestBody(op *parser.Operation, bodyParam *parser.Parameter) *bodyView {
	if rb := op.RequestBody; rb != nil {
		for mediaType, mt := range rb.Content.All() {
			if mt == nil || mt.Schema == nil || !httputil.IsJSONMediaType(mediaType) {
				continue
			}
			return &bodyView{
				MediaType:   mediaType,
				Description: rb.Description,
				Required:    rb.Required,
				schemaBlock: b.schemaBlock(mt.Schema, "requestBody"),
			}
		}
		return nil
	}
	if bodyParam != nil && bodyParam.Schema != nil {
		return &bodyView{
			MediaType:   "application/json",
			Description: bodyParam.Description,
			Required:    bodyParam.Required,
			schemaBlock: b.schemaBlock(bodyParam.Schema, "body"),
		}
	}
	return nil
}

func (b *builder) responseView(code string, resp *parser.Response) responseView {
	v := responseView{
		Code:        code,
		Class:       StatusClass(code),
		Description: resp.Description,
	}
	for mediaType, mt := range resp.Content.All() {
		if mt == nil || mt.Schema == nil || !httputil.IsJSONMediaType(mediaType) {
			continue
		}
		v.MediaType = mediaType
		v.schemaBlock = b.schemaBlock(mt.Schema, "response "+code)
		return v
	}
	if resp.Schema != nil {
		v.schemaBlock = b.schemaBlock(resp.Schema, "response "+code)
	}
	return v
}

// schemaBlock prints s as JSON. A schema that cannot be printed is logged
// and rendered without its JSON block.
func (b *builder) schemaBlock(s *parser.Schema, where string) schemaBlock {
	block := schemaBlock{RefName: s.RefName()}
	if s.Items != nil && block.RefName == "" {
		block.RefName = s.Items.RefName()
	}
	if block.RefName != "" {
		block.RefSlug = SchemaSlug(block.RefName)
	}
	js, err := s.JSON()
	if err != nil {
		b.log.Warn("skipping schema block", "at", where, "error", err)
		return block
	}
	block.JSON = js
	return block
}

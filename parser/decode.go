package parser

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdocs/internal/httputil"
)

// maxSchemaDepth bounds schema recursion; YAML aliases can make a node
// contain itself.
const maxSchemaDepth = 64

// maxSchemaNodes bounds the number of distinct schema nodes in one document.
const maxSchemaNodes = 1 << 20

// decoder holds per-document state. Schemas are keyed by their source node so
// an anchor referenced many times is decoded once and shared.
type decoder struct {
	schemas  map[*yaml.Node]*Schema
	building map[*yaml.Node]bool
	nodes    int
	err      error
}

func newDecoder() *decoder {
	return &decoder{
		schemas:  make(map[*yaml.Node]*Schema),
		building: make(map[*yaml.Node]bool),
	}
}

// decodeDocument builds a Document from a decoded yaml.Node tree.
// An empty input yields an empty Document; a root that is not a mapping is an error.
func decodeDocument(root *yaml.Node) (*Document, error) {
	doc := &Document{present: make(map[string]bool)}

	node := resolveAlias(root)
	if node == nil || node.Kind == 0 {
		return doc, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = resolveAlias(node.Content[0])
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root must be a mapping, got %s", kindName(node))
	}

	d := newDecoder()
	for key, val := range mappingEntries(node) {
		doc.present[key] = true
		switch key {
		case "openapi":
			doc.OpenAPI = scalarString(val)
		case "swagger":
			doc.Swagger = scalarString(val)
		case "info":
			doc.Info = decodeInfo(val)
		case "servers":
			for _, item := range sequenceItems(val) {
				doc.Servers = append(doc.Servers, &Server{
					URL:         scalarString(mappingValue(item, "url")),
					Description: scalarString(mappingValue(item, "description")),
				})
			}
		case "tags":
			for _, item := range sequenceItems(val) {
				doc.Tags = append(doc.Tags, &Tag{
					Name:        scalarString(mappingValue(item, "name")),
					Description: scalarString(mappingValue(item, "description")),
				})
			}
		case "paths":
			doc.Paths = d.paths(val)
		case "components":
			doc.Components = &Components{
				Schemas: d.schemaMap(mappingValue(val, "schemas"), 0),
			}
		case "definitions":
			doc.Definitions = d.schemaMap(val, 0)
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	return doc, nil
}

func decodeInfo(n *yaml.Node) *Info {
	info := &Info{}
	for key, val := range mappingEntries(n) {
		switch key {
		case "title":
			info.Title = scalarString(val)
		case "version":
			info.Version = scalarString(val)
		case "description":
			info.Description = scalarString(val)
		case "contact":
			info.Contact = &Contact{
				Name:  scalarString(mappingValue(val, "name")),
				URL:   scalarString(mappingValue(val, "url")),
				Email: scalarString(mappingValue(val, "email")),
			}
		}
	}
	return info
}

func (d *decoder) paths(n *yaml.Node) *OrderedMap[*PathItem] {
	paths := NewOrderedMap[*PathItem](mappingLen(n))
	for key, val := range mappingEntries(n) {
		if isExtension(key) {
			continue
		}
		paths.Set(key, d.pathItem(val))
	}
	return paths
}

func (d *decoder) pathItem(n *yaml.Node) *PathItem {
	item := &PathItem{Operations: NewOrderedMap[*Operation](mappingLen(n))}
	for key, val := range mappingEntries(n) {
		switch {
		case key == "summary":
			item.Summary = scalarString(val)
		case key == "description":
			item.Description = scalarString(val)
		case key == "parameters":
			item.Parameters = d.parameters(val)
		case httputil.IsHTTPMethod(key):
			item.Operations.Set(strings.ToLower(key), d.operation(val))
		}
	}
	return item
}

func (d *decoder) operation(n *yaml.Node) *Operation {
	op := &Operation{}
	for key, val := range mappingEntries(n) {
		switch key {
		case "operationId":
			op.OperationID = scalarString(val)
		case "summary":
			op.Summary = scalarString(val)
		case "description":
			op.Description = scalarString(val)
		case "tags":
			op.Tags = stringSequence(val)
		case "deprecated":
			op.Deprecated = scalarBool(val)
		case "parameters":
			op.Parameters = d.parameters(val)
		case "requestBody":
			op.RequestBody = d.requestBody(val)
		case "responses":
			op.Responses = d.responses(val)
		}
	}
	return op
}

func (d *decoder) parameters(n *yaml.Node) []*Parameter {
	items := sequenceItems(n)
	if len(items) == 0 {
		return nil
	}
	params := make([]*Parameter, 0, len(items))
	for _, item := range items {
		p := &Parameter{}
		for key, val := range mappingEntries(item) {
			switch key {
			case "$ref":
				p.Ref = scalarString(val)
			case "name":
				p.Name = scalarString(val)
			case "in":
				p.In = scalarString(val)
			case "required":
				p.Required = scalarBool(val)
			case "description":
				p.Description = scalarString(val)
			case "type":
				p.Type = typeString(val)
			case "schema":
				p.Schema = d.schema(val, 0)
			}
		}
		params = append(params, p)
	}
	return params
}

func (d *decoder) requestBody(n *yaml.Node) *RequestBody {
	rb := &RequestBody{}
	for key, val := range mappingEntries(n) {
		switch key {
		case "$ref":
			rb.Ref = scalarString(val)
		case "description":
			rb.Description = scalarString(val)
		case "required":
			rb.Required = scalarBool(val)
		case "content":
			rb.Content = d.content(val)
		}
	}
	return rb
}

func (d *decoder) responses(n *yaml.Node) *OrderedMap[*Response] {
	responses := NewOrderedMap[*Response](mappingLen(n))
	for code, val := range mappingEntries(n) {
		if isExtension(code) {
			continue
		}
		resp := &Response{}
		for key, field := range mappingEntries(val) {
			switch key {
			case "$ref":
				resp.Ref = scalarString(field)
			case "description":
				resp.Description = scalarString(field)
			case "content":
				resp.Content = d.content(field)
			case "schema":
				resp.Schema = d.schema(field, 0)
			}
		}
		responses.Set(code, resp)
	}
	return responses
}

func (d *decoder) content(n *yaml.Node) *OrderedMap[*MediaType] {
	content := NewOrderedMap[*MediaType](mappingLen(n))
	for mediaType, val := range mappingEntries(n) {
		content.Set(mediaType, &MediaType{Schema: d.schema(mappingValue(val, "schema"), 0)})
	}
	return content
}

func (d *decoder) schemaMap(n *yaml.Node, depth int) *OrderedMap[*Schema] {
	schemas := NewOrderedMap[*Schema](mappingLen(n))
	for name, val := range mappingEntries(n) {
		schemas.Set(name, d.schema(val, depth))
	}
	return schemas
}

// schema decodes n once and returns the shared result on every later visit.
// A node that refers back to one of its own ancestors is cut off: it keeps
// its scalar fields and loses properties and items.
func (d *decoder) schema(n *yaml.Node, depth int) *Schema {
	n = resolveAlias(n)
	if n == nil || depth > maxSchemaDepth || d.err != nil {
		return nil
	}
	if s, ok := d.schemas[n]; ok {
		return s
	}
	if d.building[n] {
		return schemaFields(n)
	}
	d.nodes++
	if d.nodes > maxSchemaNodes {
		d.err = fmt.Errorf("document has more than %d schemas", maxSchemaNodes)
		return nil
	}

	d.building[n] = true
	s := schemaFields(n)
	for key, val := range mappingEntries(n) {
		switch key {
		case "properties":
			s.Properties = d.schemaMap(val, depth+1)
		case "items":
			s.Items = d.schema(val, depth+1)
		}
	}
	delete(d.building, n)
	d.schemas[n] = s
	return s
}

// schemaFields decodes the scalar fields of a schema node.
func schemaFields(n *yaml.Node) *Schema {
	s := &Schema{node: n}
	for key, val := range mappingEntries(n) {
		switch key {
		case "$ref":
			s.Ref = scalarString(val)
		case "type":
			s.Type = typeString(val)
		case "format":
			s.Format = scalarString(val)
		case "title":
			s.Title = scalarString(val)
		case "description":
			s.Description = scalarString(val)
		case "required":
			s.Required = stringSequence(val)
		}
	}
	return s
}

// typeString handles both "type: string" and the OAS 3.1 "type: [string, null]" form.
func typeString(n *yaml.Node) string {
	n = resolveAlias(n)
	if n != nil && n.Kind == yaml.SequenceNode {
		return strings.Join(stringSequence(n), " | ")
	}
	return scalarString(n)
}

// mappingEntries iterates the key/value pairs of a mapping node in source
// order. Non-mapping nodes yield nothing.
func mappingEntries(n *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		n = resolveAlias(n)
		if n == nil || n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := resolveAlias(n.Content[i])
			if key == nil || key.Value == "<<" {
				continue
			}
			if !yield(key.Value, resolveAlias(n.Content[i+1])) {
				return
			}
		}
	}
}

func mappingLen(n *yaml.Node) int {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return 0
	}
	return len(n.Content) / 2
}

// mappingValue returns the value stored under key, or nil.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for k, v := range mappingEntries(n) {
		if k == key {
			return v
		}
	}
	return nil
}

func sequenceItems(n *yaml.Node) []*yaml.Node {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	items := make([]*yaml.Node, 0, len(n.Content))
	for _, item := range n.Content {
		items = append(items, resolveAlias(item))
	}
	return items
}

func stringSequence(n *yaml.Node) []string {
	items := sequenceItems(n)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := scalarString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func scalarString(n *yaml.Node) string {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}

func scalarBool(n *yaml.Node) bool {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return false
	}
	b, err := strconv.ParseBool(n.Value)
	if err != nil {
		return false
	}
	return b
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode && i < maxSchemaDepth; i++ {
		n = n.Alias
	}
	return n
}

func isExtension(key string) bool {
	return strings.HasPrefix(key, "x-")
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unknown node"
	}
}

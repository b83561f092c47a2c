package parser

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// Parameter locations
const (
	ParamInQuery    = "query"
	ParamInHeader   = "header"
	ParamInPath     = "path"
	ParamInCookie   = "cookie"   // OAS 3.x only
	ParamInFormData = "formData" // OAS 2.0 only
	ParamInBody     = "body"     // OAS 2.0 only
)

// Document is a decoded OpenAPI 3.x or Swagger 2.0 document, reduced to the
// parts needed to render documentation. Every mapping keeps source key order.
type Document struct {
	// OpenAPI is the "openapi" version string (3.x documents)
	OpenAPI string
	// Swagger is the "swagger" version string (2.0 documents)
	Swagger string
	// Info is nil when the "info" key is absent
	Info    *Info
	Servers []*Server
	Tags    []*Tag
	// Paths is nil when the "paths" key is absent
	Paths      *OrderedMap[*PathItem]
	Components *Components
	// Definitions holds Swagger 2.0 schema definitions
	Definitions *OrderedMap[*Schema]

	// present records which top-level keys appeared in the source
	present map[string]bool
}

// Has reports whether the top-level key appeared in the source document.
// For documents built in code it falls back to whether the matching field is set.
func (d *Document) Has(key string) bool {
	if d == nil {
		return false
	}
	if d.present[key] {
		return true
	}
	switch key {
	case "openapi":
		return d.OpenAPI != ""
	case "swagger":
		return d.Swagger != ""
	case "info":
		return d.Info != nil
	case "paths":
		return d.Paths != nil
	case "components":
		return d.Components != nil
	case "definitions":
		return d.Definitions != nil
	default:
		return false
	}
}

// Version returns the declared spec version, preferring "openapi" over "swagger".
func (d *Document) Version() string {
	if d == nil {
		return ""
	}
	if d.OpenAPI != "" {
		return d.OpenAPI
	}
	return d.Swagger
}

// IsOAS2 returns true if the document declares "swagger" and not "openapi".
func (d *Document) IsOAS2() bool {
	return d != nil && d.OpenAPI == "" && d.Swagger != ""
}

// Schemas returns the named schemas: components.schemas for OAS 3.x, or
// definitions for Swagger 2.0. The result may be nil.
func (d *Document) Schemas() *OrderedMap[*Schema] {
	if d == nil {
		return nil
	}
	if d.Components != nil && d.Components.Schemas.Len() > 0 {
		return d.Components.Schemas
	}
	if d.Definitions.Len() > 0 {
		return d.Definitions
	}
	if d.Components != nil {
		return d.Components.Schemas
	}
	return nil
}

// Info holds API metadata.
type Info struct {
	Title       string
	Version     string
	Description string
	Contact     *Contact
}

// Contact holds contact details for the API owner.
type Contact struct {
	Name  string
	URL   string
	Email string
}

// IsEmpty returns true when no contact field is set.
func (c *Contact) IsEmpty() bool {
	return c == nil || (c.Name == "" && c.URL == "" && c.Email == "")
}

// Server is an OAS 3.x server entry.
type Server struct {
	URL         string
	Description string
}

// Tag is a top-level tag declaration.
type Tag struct {
	Name        string
	Description string
}

// PathItem holds the operations declared under one path.
type PathItem struct {
	Summary     string
	Description string
	// Parameters apply to every operation under the path
	Parameters []*Parameter
	// Operations maps lower-case HTTP methods to operations in source order
	Operations *OrderedMap[*Operation]
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
	Parameters  []*Parameter
	RequestBody *RequestBody
	// Responses maps status codes (or "default") to responses in source order
	Responses *OrderedMap[*Response]
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref         string
	Name        string
	In          string
	Required    bool
	Description string
	// Type is the OAS 2.0 inline type for non-body parameters
	Type   string
	Schema *Schema
}

// TypeName returns the schema type, or the OAS 2.0 inline type.
func (p *Parameter) TypeName() string {
	if p == nil {
		return ""
	}
	if p.Schema != nil {
		if t := p.Schema.TypeName(); t != "" {
			return t
		}
	}
	return p.Type
}

// RequestBody describes an OAS 3.x request body.
type RequestBody struct {
	Ref         string
	Description string
	Required    bool
	Content     *OrderedMap[*MediaType]
}

// Response describes a single response.
type Response struct {
	Ref         string
	Description string
	// Content holds OAS 3.x media types
	Content *OrderedMap[*MediaType]
	// Schema holds the OAS 2.0 response schema
	Schema *Schema
}

// MediaType holds the schema for one content type.
type MediaType struct {
	Schema *Schema
}

// Components holds OAS 3.x reusable objects. Only schemas are rendered.
type Components struct {
	Schemas *OrderedMap[*Schema]
}

// Schema is a JSON-Schema-like object. The commonly displayed fields are
// decoded; the full object is kept so it can be printed as ordered JSON.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string
	Properties  *OrderedMap[*Schema]
	Items       *Schema
	Required    []string

	node *yaml.Node
}

// TypeName returns a short display type such as "string", "array[Pet]" or
// the referenced component name.
func (s *Schema) TypeName() string {
	if s == nil {
		return ""
	}
	if s.Ref != "" {
		return s.RefName()
	}
	if s.Type == "array" && s.Items != nil {
		if inner := s.Items.TypeName(); inner != "" {
			return "array[" + inner + "]"
		}
	}
	return s.Type
}

// RefName returns the last segment of a local $ref such as
// "#/components/schemas/Pet" or "#/definitions/Pet". It returns "" for
// external refs and schemas without a $ref.
func (s *Schema) RefName() string {
	if s == nil || !strings.HasPrefix(s.Ref, "#/") {
		return ""
	}
	idx := strings.LastIndex(s.Ref, "/")
	return s.Ref[idx+1:]
}

package renderer

import (
	"html/template"

	"github.com/erraggy/oasdocs/internal/naming"
	"github.com/erraggy/oasdocs/internal/stringutil"
	"github.com/erraggy/oasdocs/parser"
)

// pageView is the data handed to page.html.tmpl.
type pageView struct {
	Title       string
	Version     string
	Description string
	Contact     *contactView
	Logo        template.URL
	Favicon     template.URL
	Theme       string
	Generator   string

	TOC      bool
	Search   bool
	TryItOut bool

	Groups  []pathGroup
	Schemas []schemaView

	// IndexJSON is the inline search index; only set when search is enabled
	IndexJSON template.JS
}

// contactView is info.contact with the email checked before it becomes a link.
type contactView struct {
	Name   string
	URL    string
	Email  string
	Mailto string
}

func newContactView(c *parser.Contact) *contactView {
	if c.IsEmpty() {
		return nil
	}
	return &contactView{
		Name:   c.Name,
		URL:    c.URL,
		Email:  c.Email,
		Mailto: stringutil.MailtoLink(c.Email),
	}
}

// pathGroup is one path block with its operations in source order.
type pathGroup struct {
	Path       string
	Slug       string
	Summary    string
	Operations []operationView
}

type operationView struct {
	Path        string
	Method      string
	MethodLabel string
	Slug        string
	OperationID string
	Summary     string
	Description string
	Deprecated  bool
	Tags        []string
	Params      []paramView
	Body        *bodyView
	Responses   []responseView
}

// Title returns the text shown next to the method badge.
func (o operationView) Title() string {
	return searchTitle(o.Summary, o.Description, o.Path)
}

type paramView struct {
	Name        string
	In          string
	Type        string
	Required    bool
	Description string
	Ref         string
}

type bodyView struct {
	MediaType   string
	Description string
	Required    bool
	schemaBlock
}

type responseView struct {
	Code        string
	Class       string
	Description string
	MediaType   string
	schemaBlock
}

type schemaView struct {
	Name        string
	Slug        string
	Type        string
	Description string
	schemaBlock
}

// schemaBlock is a printed schema with an optional link to a named schema.
type schemaBlock struct {
	JSON    string
	RefName string
	RefSlug string
}

// OperationSlug returns the in-page anchor for an operation: the path slug
// followed by "-" and the lower-case method.
func OperationSlug(path, method string) string {
	return naming.Slug(path) + "-" + method
}

// SchemaSlug returns the in-page anchor for a named schema.
func SchemaSlug(name string) string {
	return "schema-" + naming.Slug(name)
}

// searchTitle picks the first non-empty of summary, description and path.
func searchTitle(summary, description, path string) string {
	switch {
	case summary != "":
		return summary
	case description != "":
		return description
	default:
		return path
	}
}

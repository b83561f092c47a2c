package renderer

import (
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/erraggy/oasdocs/internal/naming"
)

//go:embed templates/page.html.tmpl templates/style.css.tmpl templates/app.js
var templateFS embed.FS

var (
	pageTemplate  *htmltemplate.Template
	styleTemplate *texttemplate.Template
	appJS         string
)

func init() {
	var err error
	pageTemplate, err = htmltemplate.New("page.html.tmpl").
		Funcs(pageFuncs).
		ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		panic(err)
	}
	styleTemplate, err = texttemplate.New("style.css.tmpl").
		ParseFS(templateFS, "templates/style.css.tmpl")
	if err != nil {
		panic(err)
	}
	js, err := templateFS.ReadFile("templates/app.js")
	if err != nil {
		panic(err)
	}
	appJS = string(js)
}

// pageFuncs provides custom functions for the page template
var pageFuncs = htmltemplate.FuncMap{
	"location": naming.Location,
	"join":     strings.Join,
}

// styleView is the data handed to style.css.tmpl.
type styleView struct {
	Theme   Theme
	Methods []methodStyle
}

type methodStyle struct {
	Method string
	Color  string
}

func newStyleView(theme Theme) styleView {
	v := styleView{Theme: theme}
	for _, m := range []string{"get", "post", "put", "delete", "patch"} {
		v.Methods = append(v.Methods, methodStyle{Method: m, Color: MethodColor(m)})
	}
	return v
}

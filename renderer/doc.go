/*
Package renderer turns a parsed OpenAPI document into a static documentation
site: a single index.html page, a search.json index, a themed stylesheet and
a small script that drives search and the Try It Out placeholder.

# Quick Start

	res, err := parser.New().Parse("openapi.yaml")
	if err != nil {
		log.Fatal(err)
	}
	out, err := renderer.RenderWithOptions(res.Document,
		renderer.WithTheme("dark"),
		renderer.WithTryItOut(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	files, err := out.WriteFiles("docs")

# Page Layout

Paths are rendered in source order, each with its operations in source
order. Every operation gets an anchor of the form slug(path)-method, where
slug lower-cases the path and replaces every character outside [a-z0-9]
with "-". Named schemas (components.schemas or definitions) are listed after
the endpoints under "schema-" anchors.

All document text is HTML-escaped. The inline search index is JSON with <,
>, & and ' escaped so it cannot close its script element.

# Themes

Four themes are built in: light, dark, dracula and github. An unknown theme
name renders with light and logs a warning.
*/
package renderer

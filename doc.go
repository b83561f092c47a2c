// Package oasdocs turns OpenAPI 3.x and Swagger 2.0 documents into static
// HTML documentation sites with client-side search.
//
// # Overview
//
// The module is split into small packages that each do one job:
//
//   - parser: decode a YAML or JSON document, keeping key order
//   - validator: check required top-level fields, optionally in strict mode
//   - walker: visit paths, operations and schemas in source order
//   - renderer: build index.html, search.json, style.css and app.js
//   - config: load a config file and environment defaults
//
// The oasdocs command wires them together:
//
//	oasdocs -o docs/ -t dracula openapi.yaml
//
// # Quick Start
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	site, err := renderer.RenderWithOptions(parsed.Document, renderer.WithTheme("dark"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := site.WriteFiles("docs"); err != nil {
//		log.Fatal(err)
//	}
//
// # Output
//
//	docs/index.html
//	docs/search.json      (only when search is enabled)
//	docs/assets/style.css
//	docs/assets/app.js
package oasdocs

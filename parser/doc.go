// Package parser reads OpenAPI 3.x and Swagger 2.0 documents.
//
// Files ending in ".yaml" or ".yml" are decoded as YAML and every other file
// as strict JSON. Decoding goes through yaml.Node so the resulting [Document]
// keeps the key order of the source: paths, methods, responses, media types
// and schemas all come back as an [OrderedMap] in the order the author wrote
// them.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path, item := range result.Document.Paths.All() {
//		for method := range item.Operations.All() {
//			fmt.Println(method, path)
//		}
//	}
//
// # Errors
//
// A missing or unreadable file is reported as an [oaserrors.InputError];
// content the decoder rejects is an [oaserrors.DecodeError]. Parse does not
// check required fields. Use the validator package for that.
//
// # Related Packages
//
//   - [github.com/erraggy/oasdocs/validator] - Presence checks and strict validation
//   - [github.com/erraggy/oasdocs/walker] - Ordered traversal of a Document
//   - [github.com/erraggy/oasdocs/renderer] - HTML site generation
package parser

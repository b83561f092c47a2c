// Package validator checks OpenAPI and Swagger documents before rendering.
//
// [Validate] performs the presence check: a document must declare
// "openapi" or "swagger", and carry "info" and "paths". One error string is
// reported per missing item, so a document missing everything yields three
// errors. The check is advisory; the renderer never consults it.
//
// Strict mode additionally loads the document with kin-openapi and reports
// its structural findings. Swagger 2.0 documents are converted to OpenAPI 3
// for that pass.
//
//	result, err := validator.ValidateWithOptions(ctx,
//	    validator.WithFilePath("openapi.yaml"),
//	    validator.WithStrictMode(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, msg := range result.Errors {
//		fmt.Println(msg)
//	}
package validator

package validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/oasdocs/parser"
)

// strictValidate loads the document with kin-openapi and returns its
// findings. Swagger 2.0 documents are converted to OpenAPI 3 first.
func strictValidate(ctx context.Context, res *parser.ParseResult) ([]string, error) {
	data, err := res.MarshalOrderedJSON()
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}

	var doc *openapi3.T
	if res.IsOAS2() {
		var doc2 openapi2.T
		if err := json.Unmarshal(data, &doc2); err != nil {
			return []string{"strict: " + err.Error()}, nil
		}
		doc, err = openapi2conv.ToV3(&doc2)
		if err != nil {
			return []string{"strict: " + err.Error()}, nil
		}
	} else {
		loader := openapi3.NewLoader()
		loader.Context = ctx
		loader.IsExternalRefsAllowed = false
		doc, err = loader.LoadFromData(data)
		if err != nil {
			return []string{"strict: " + err.Error()}, nil
		}
	}

	if err := doc.Validate(ctx); err != nil {
		return strictMessages(err), nil
	}
	return nil, nil
}

// strictMessages flattens a kin-openapi error into one string per finding.
func strictMessages(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]string, 0, len(multi))
		for _, e := range multi {
			out = append(out, strictMessages(e)...)
		}
		return out
	}
	msg := strings.TrimSpace(err.Error())
	return []string{"strict: " + msg}
}

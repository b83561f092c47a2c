package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdocs/validator"
)

type validateInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to validate"`
	Strict *bool     `json:"strict,omitempty" jsonschema:"Also run full structural validation"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N errors (for pagination)"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of errors to return (default 100)"`
}

type validateOutput struct {
	Valid      bool     `json:"valid"`
	Version    string   `json:"version"`
	Strict     bool     `json:"strict"`
	ErrorCount int      `json:"error_count"`
	Returned   int      `json:"returned"`
	Errors     []string `json:"errors,omitempty"`
}

func handleValidateSpec(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(ctx,
		validator.WithParsed(parseResult),
		validator.WithStrictMode(strict),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		Version:    result.Version,
		Strict:     result.Strict,
		ErrorCount: len(result.Errors),
		Errors:     paginate(result.Errors, input.Offset, input.Limit),
	}
	output.Returned = len(output.Errors)
	return nil, output, nil
}

package validator

import (
	"context"
	"fmt"

	"github.com/erraggy/oasdocs/parser"
)

// Result holds the outcome of validating one document.
type Result struct {
	// Valid is true when Errors is empty
	Valid bool
	// Errors lists human-readable problems, one per finding
	Errors []string
	// Version is the declared "openapi" or "swagger" version, if any
	Version string
	// SourcePath is the path of the validated document, when known
	SourcePath string
	// Strict is true when the strict checks also ran
	Strict bool
}

// Required top-level fields. "openapi" and "swagger" count as one field.
const (
	msgMissingVersion = "missing required field: openapi or swagger"
	msgMissingInfo    = "missing required field: info"
	msgMissingPaths   = "missing required field: paths"
)

// Validate checks that the document declares a version ("openapi" or
// "swagger"), an "info" object and a "paths" object. Each missing item
// yields exactly one error string. Presence is all that is checked; a
// present but null or empty value passes.
func Validate(doc *parser.Document) Result {
	var errs []string
	if !doc.Has("openapi") && !doc.Has("swagger") {
		errs = append(errs, msgMissingVersion)
	}
	if !doc.Has("info") {
		errs = append(errs, msgMissingInfo)
	}
	if !doc.Has("paths") {
		errs = append(errs, msgMissingPaths)
	}
	return Result{
		Valid:   len(errs) == 0,
		Errors:  errs,
		Version: doc.Version(),
	}
}

// Validator runs the presence check and, in strict mode, a full
// structural validation.
type Validator struct {
	// StrictMode adds a full structural validation of the document
	StrictMode bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{}
}

// ValidateFile parses the file at path and validates it.
func (v *Validator) ValidateFile(ctx context.Context, path string) (*Result, error) {
	res, err := parser.ParseWithOptions(
		parser.WithFilePath(path),
		parser.WithLogger(v.Logger),
	)
	if err != nil {
		return nil, err
	}
	return v.ValidateParsed(ctx, res)
}

// ValidateParsed validates an already parsed document.
func (v *Validator) ValidateParsed(ctx context.Context, res *parser.ParseResult) (*Result, error) {
	if res == nil || res.Document == nil {
		return nil, fmt.Errorf("validator: no document to validate")
	}
	log := parser.OrNop(v.Logger).With("source", res.SourcePath)

	result := Validate(res.Document)
	result.SourcePath = res.SourcePath

	if v.StrictMode {
		result.Strict = true
		if result.Valid {
			strictErrs, err := strictValidate(ctx, res)
			if err != nil {
				return nil, err
			}
			result.Errors = append(result.Errors, strictErrs...)
			result.Valid = len(result.Errors) == 0
		} else {
			log.Debug("skipping strict checks for document missing required fields")
		}
	}

	for _, msg := range result.Errors {
		log.Debug("validation finding", "error", msg)
	}
	return &result, nil
}

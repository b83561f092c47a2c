// Package oaserrors provides structured error types for the oasdocs tool.
//
// Import path: github.com/erraggy/oasdocs/oaserrors
//
// # Error Types
//
//   - [InputError]: the spec file is missing or unreadable
//   - [DecodeError]: the content is not valid for the selected decoder
//   - [ConfigError]: invalid configuration or options
//   - [RenderError]: producing or writing an output file failed
//
// # Sentinel Errors
//
//   - [ErrInput]: matches any [InputError]
//   - [ErrNotFound]: matches [InputError] with NotFound=true
//   - [ErrDecode]: matches any [DecodeError]
//   - [ErrConfig]: matches any [ConfigError]
//   - [ErrRender]: matches any [RenderError]
//
// # Usage
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrNotFound) {
//	    // suggest checking the path
//	}
//
//	var decErr *oaserrors.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("%s is not valid %s (line %d)\n", decErr.Path, decErr.Format, decErr.Line)
//	}
package oaserrors

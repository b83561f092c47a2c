// Package httputil provides HTTP method and media type helpers shared by the
// parser and renderer.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// Methods lists every operation key a Path Item may carry.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

var methodSet = func() map[string]bool {
	m := make(map[string]bool, len(Methods))
	for _, method := range Methods {
		m[method] = true
	}
	return m
}()

// IsHTTPMethod reports whether key names an operation in a Path Item.
// Matching is case-insensitive.
func IsHTTPMethod(key string) bool {
	return methodSet[strings.ToLower(key)]
}

// IsJSONMediaType reports whether mediaType is application/json or a
// structured "+json" type such as application/problem+json. Parameters like
// charset are ignored.
func IsJSONMediaType(mediaType string) bool {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	_, subtype, ok := strings.Cut(mt, "/")
	if !ok {
		return false
	}
	return subtype == "json" || strings.HasSuffix(subtype, "+json")
}

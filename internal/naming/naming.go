// Package naming provides slug and label helpers shared by the renderer
// and the CLI.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slug lowercases s and replaces every character outside [a-z0-9] with '-'.
// Distinct inputs may produce the same slug; callers get no de-duplication.
// Example: "/users/{id}" -> "-users--id-"
func Slug(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Upper returns s in upper case. Used for method badges.
// Example: "get" -> "GET"
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

var locationLabels = map[string]string{
	"path":     "Path",
	"query":    "Query",
	"header":   "Header",
	"cookie":   "Cookie",
	"body":     "Body",
	"formData": "Form data",
}

// Location returns the display label for a parameter's "in" value.
// Values outside OpenAPI 3.x and Swagger 2.0 are returned unchanged.
// Example: "formData" -> "Form data"
func Location(in string) string {
	if label, ok := locationLabels[in]; ok {
		return label
	}
	return in
}

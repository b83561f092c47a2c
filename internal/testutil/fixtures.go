// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// Spec is a loosely typed OpenAPI document used to build test inputs.
type Spec map[string]any

// NewOAS3Spec creates a minimal OAS 3.0 document with an empty paths object.
func NewOAS3Spec(title string) Spec {
	return Spec{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   title,
			"version": "1.0.0",
		},
		"paths": map[string]any{},
	}
}

// NewOAS2Spec creates a minimal Swagger 2.0 document with an empty paths object.
func NewOAS2Spec(title string) Spec {
	return Spec{
		"swagger": "2.0",
		"info": map[string]any{
			"title":   title,
			"version": "1.0.0",
		},
		"paths": map[string]any{},
	}
}

// WithOperation adds a method under path with a summary and a single 200
// response. It returns s for chaining.
func (s Spec) WithOperation(path, method, summary string) Spec {
	paths, _ := s["paths"].(map[string]any)
	if paths == nil {
		paths = map[string]any{}
		s["paths"] = paths
	}
	item, _ := paths[path].(map[string]any)
	if item == nil {
		item = map[string]any{}
		paths[path] = item
	}
	item[method] = map[string]any{
		"summary": summary,
		"responses": map[string]any{
			"200": map[string]any{"description": "OK"},
		},
	}
	return s
}

// Without removes top-level keys. It returns s for chaining.
func (s Spec) Without(keys ...string) Spec {
	for _, k := range keys {
		delete(s, k)
	}
	return s
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}

// WriteTempFile writes content to name inside a fresh temporary directory.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON_KeepsSourceOrder(t *testing.T) {
	src := `
openapi: 3.0.0
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        zeta:
          type: string
          nullable: true
        alpha:
          type: integer
          minimum: 1
          example: 5
        html:
          type: string
          example: "<b>&</b>"
`
	res, err := New().ParseBytes([]byte(src))
	require.NoError(t, err)
	pet, ok := res.Document.Schemas().Get("Pet")
	require.True(t, ok)

	got, err := pet.JSON()
	require.NoError(t, err)

	want := `{
  "type": "object",
  "required": [
    "name"
  ],
  "properties": {
    "zeta": {
      "type": "string",
      "nullable": true
    },
    "alpha": {
      "type": "integer",
      "minimum": 1,
      "example": 5
    },
    "html": {
      "type": "string",
      "example": "<b>&</b>"
    }
  }
}`
	assert.Equal(t, want, got)
}

func TestSchemaJSON_FromTypedFields(t *testing.T) {
	props := NewOrderedMap[*Schema](2)
	props.Set("id", &Schema{Type: "integer", Format: "int64"})
	props.Set("tags", &Schema{Type: "array", Items: &Schema{Type: "string"}})
	s := &Schema{Type: "object", Properties: props, Required: []string{"id"}}

	got, err := s.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"id": {"type": "integer", "format": "int64"},
			"tags": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["id"]
	}`, got)
	assert.Less(t, strings.Index(got, `"type"`), strings.Index(got, `"properties"`))
}

func TestSchemaJSON_Nil(t *testing.T) {
	var s *Schema
	got, err := s.JSON()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSchemaTypeName(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		want   string
	}{
		{"nil", nil, ""},
		{"plain", &Schema{Type: "string"}, "string"},
		{"oas3 ref", &Schema{Ref: "#/components/schemas/Pet"}, "Pet"},
		{"oas2 ref", &Schema{Ref: "#/definitions/Pet"}, "Pet"},
		{"external ref", &Schema{Ref: "other.yaml#/Pet"}, ""},
		{"array of refs", &Schema{Type: "array", Items: &Schema{Ref: "#/definitions/Pet"}}, "array[Pet]"},
		{"array without items type", &Schema{Type: "array", Items: &Schema{}}, "array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.schema.TypeName())
		})
	}
}

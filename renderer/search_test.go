package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchIndex_Search(t *testing.T) {
	idx := SearchIndex{
		{Path: "/users", Method: "get", Title: "List users"},
		{Path: "/users", Method: "post", Title: "Create user"},
		{Path: "/users/{id}", Method: "get", Title: "Get user"},
		{Path: "/users/{id}", Method: "put", Title: "Replace user"},
		{Path: "/users/{id}", Method: "delete", Title: "Delete user"},
		{Path: "/users/{id}", Method: "patch", Title: "Update user"},
		{Path: "/orders", Method: "get", Title: "List orders"},
	}

	t.Run("blank query matches nothing", func(t *testing.T) {
		assert.Empty(t, idx.Search("   ", 0))
	})

	t.Run("default limit", func(t *testing.T) {
		got := idx.Search("user", 0)
		assert.Len(t, got, DefaultSearchLimit)
		assert.Equal(t, "List users", got[0].Title)
	})

	t.Run("case-insensitive title match", func(t *testing.T) {
		got := idx.Search("ORDERS", 10)
		if assert.Len(t, got, 1) {
			assert.Equal(t, "/orders", got[0].Path)
		}
	})

	t.Run("path match", func(t *testing.T) {
		assert.Len(t, idx.Search("{id}", 10), 4)
	})

	t.Run("explicit limit", func(t *testing.T) {
		assert.Len(t, idx.Search("user", 2), 2)
	})
}

func TestSearchIndex_MarshalFileNeverNull(t *testing.T) {
	var idx SearchIndex
	data, err := idx.MarshalFile()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"index": []}`, string(data))
}

func TestStatusClass(t *testing.T) {
	tests := map[string]string{
		"200":     "success",
		"204":     "success",
		"2XX":     "success",
		"301":     "server",
		"404":     "client",
		"4XX":     "client",
		"500":     "server",
		"default": "server",
	}
	for code, want := range tests {
		assert.Equal(t, want, StatusClass(code), code)
	}
}

func TestResolveTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, ok := ResolveTheme(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, theme.Name)
	}

	theme, ok := ResolveTheme("Dark")
	assert.True(t, ok)
	assert.Equal(t, "dark", theme.Name)

	for _, name := range []string{"", "solarized", "monokai"} {
		theme, ok := ResolveTheme(name)
		assert.False(t, ok, name)
		assert.Equal(t, DefaultTheme, theme.Name)
	}
}

func TestMethodColor(t *testing.T) {
	assert.Equal(t, "#16a34a", MethodColor("get"))
	assert.Equal(t, "#2563eb", MethodColor("POST"))
	assert.Equal(t, "#d97706", MethodColor("put"))
	assert.Equal(t, "#dc2626", MethodColor("delete"))
	assert.Equal(t, "#9333ea", MethodColor("patch"))
	assert.Equal(t, "#6b7280", MethodColor("options"))
	assert.Equal(t, "#6b7280", MethodColor("head"))
}

func TestSlugs(t *testing.T) {
	assert.Equal(t, "-users-get", OperationSlug("/users", "get"))
	assert.Equal(t, "-users--id--delete", OperationSlug("/users/{id}", "delete"))
	assert.Equal(t, "schema-pet", SchemaSlug("Pet"))
	assert.Equal(t, "schema-user-profile", SchemaSlug("User.Profile"))
}

func TestBuildIndex(t *testing.T) {
	doc := parseFixture(t, "petstore-3.0.yaml")

	idx, err := BuildIndex(doc, nil)
	assert.NoError(t, err)
	assert.Len(t, idx, 4)

	hits := idx.Search("pet", 0)
	assert.Len(t, hits, 4)
	assert.Equal(t, "-pets-get", hits[0].Slug)

	_, err = BuildIndex(nil, nil)
	assert.Error(t, err)
}

func TestEscapeQuotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escaped quote", `{"a":"x\"y"}`, `{"a":"x\u0022y"}`},
		{"trailing backslash", `["trail\\"]`, `["trail\\"]`},
		{"backslash then quote", `["a\\\"b"]`, `["a\\\u0022b"]`},
		{"apostrophe", `["it's"]`, `["it\u0027s"]`},
		{"structure untouched", `{"k":1,"v":[true,null]}`, `{"k":1,"v":[true,null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeQuotes([]byte(tt.in)))
		})
	}
}

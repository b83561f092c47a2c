package renderer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdocs/oaserrors"
	"github.com/erraggy/oasdocs/parser"
)

func parseFixture(t *testing.T, name string) *parser.Document {
	t.Helper()
	res, err := parser.New().Parse(filepath.Join("..", "testdata", name))
	require.NoError(t, err)
	return res.Document
}

func TestRender_UsersEndToEnd(t *testing.T) {
	doc := parseFixture(t, "users.json")

	res, err := RenderWithOptions(doc)
	require.NoError(t, err)

	assert.Contains(t, res.HTML, "List users")
	assert.Contains(t, res.HTML, `id="-users-get"`)
	assert.Contains(t, res.HTML, "My API")
	assert.Contains(t, res.HTML, `id="search-index"`)
	assert.Contains(t, res.HTML, `href="assets/style.css"`)
	assert.Contains(t, res.HTML, `src="assets/app.js"`)

	require.Len(t, res.Index, 1)
	assert.Equal(t, SearchEntry{
		Path:   "/users",
		Method: "get",
		Title:  "List users",
		Slug:   "-users-get",
	}, res.Index[0])

	out := t.TempDir()
	written, err := res.WriteFiles(out)
	require.NoError(t, err)
	assert.Len(t, written, 4)

	for _, name := range []string{IndexFile, SearchFile, StyleFile, ScriptFile} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(out, SearchFile))
	require.NoError(t, err)
	var file struct {
		Index []SearchEntry `json:"index"`
	}
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, []SearchEntry(res.Index), file.Index)
}

func TestRender_EscapesDocumentText(t *testing.T) {
	doc := parseFixture(t, "xss.yaml")

	res, err := RenderWithOptions(doc, WithTryItOut(true))
	require.NoError(t, err)

	for _, raw := range []string{
		"<script>alert",
		"<evil>",
		"<b>tags</b>",
		"<things>",
		"<ok>",
		"/search/<q>",
		"'quoted'",
	} {
		assert.NotContains(t, res.HTML, raw)
	}
	assert.Contains(t, res.HTML, "&lt;script&gt;")
	assert.Contains(t, res.HTML, "&lt;evil&gt;")

	// The inline index must not be able to close its script element.
	start := strings.Index(res.HTML, `<script type="application/json" id="search-index">`)
	require.GreaterOrEqual(t, start, 0)
	inline := res.HTML[start:]
	end := strings.Index(inline, "</script>")
	require.Positive(t, end)
	body := inline[len(`<script type="application/json" id="search-index">`):end]
	assert.NotContains(t, body, "<")
	assert.NotContains(t, body, "'")

	var entries []SearchEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, `Find <things> & "stuff"`, entries[0].Title)
	assert.Equal(t, "/search/<q>", entries[0].Path)
}

func TestRender_IndexCoversEveryOperation(t *testing.T) {
	for _, name := range []string{"petstore-3.0.yaml", "petstore-2.0.json", "users.json"} {
		t.Run(name, func(t *testing.T) {
			doc := parseFixture(t, name)
			res, err := RenderWithOptions(doc)
			require.NoError(t, err)

			var want, got []string
			for path, item := range doc.Paths.All() {
				for method := range item.Operations.All() {
					want = append(want, method+" "+path)
				}
			}
			for _, e := range res.Index {
				got = append(got, e.Method+" "+e.Path)
				assert.Contains(t, res.HTML, `id="`+e.Slug+`"`)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("index mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_Petstore3(t *testing.T) {
	doc := parseFixture(t, "petstore-3.0.yaml")

	b, err := build(doc, parser.NopLogger{})
	require.NoError(t, err)

	require.Len(t, b.groups, 2)
	assert.Equal(t, "/pets", b.groups[0].Path)
	assert.Equal(t, "-pets", b.groups[0].Slug)
	assert.Equal(t, "/pets/{petId}", b.groups[1].Path)

	titles := make([]string, 0, len(b.index))
	for _, e := range b.index {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{
		"List all pets",
		"Create a pet",
		"Info for a specific pet",
		"Removes a pet from the store",
	}, titles)

	t.Run("status classes", func(t *testing.T) {
		post := b.groups[0].Operations[1]
		require.Equal(t, "post", post.Method)
		classes := map[string]string{}
		for _, r := range post.Responses {
			classes[r.Code] = r.Class
		}
		assert.Equal(t, map[string]string{
			"201": "success",
			"301": "server",
			"404": "client",
			"500": "server",
		}, classes)
	})

	t.Run("request body links schema", func(t *testing.T) {
		post := b.groups[0].Operations[1]
		require.NotNil(t, post.Body)
		assert.Equal(t, "application/json", post.Body.MediaType)
		assert.True(t, post.Body.Required)
		assert.Equal(t, "Pet", post.Body.RefName)
		assert.Equal(t, "schema-pet", post.Body.RefSlug)
		assert.Contains(t, post.Body.JSON, `"$ref": "#/components/schemas/Pet"`)
	})

	t.Run("path parameters are inherited", func(t *testing.T) {
		get := b.groups[1].Operations[0]
		assert.Equal(t, "-pets--petid--get", get.Slug)
		require.Len(t, get.Params, 1)
		assert.Equal(t, paramView{
			Name:        "petId",
			In:          "path",
			Type:        "string",
			Required:    true,
			Description: "The id of the pet to retrieve",
		}, get.Params[0])
	})

	t.Run("array response links item schema", func(t *testing.T) {
		list := b.groups[0].Operations[0]
		require.Len(t, list.Responses, 2)
		assert.Equal(t, "Pet", list.Responses[0].RefName)
		assert.Equal(t, "Error", list.Responses[1].RefName)
		assert.Equal(t, "server", list.Responses[1].Class)
	})

	t.Run("schemas in source order", func(t *testing.T) {
		require.Len(t, b.schemas, 2)
		assert.Equal(t, "Pet", b.schemas[0].Name)
		assert.Equal(t, "schema-pet", b.schemas[0].Slug)
		assert.Equal(t, "object", b.schemas[0].Type)
		assert.Equal(t, "Error", b.schemas[1].Name)
	})

	res, err := RenderWithOptions(doc)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, "badge-deprecated")
	assert.Contains(t, res.HTML, `id="schema-pet"`)
	assert.Contains(t, res.HTML, `href="#schema-pet"`)
	assert.Contains(t, res.HTML, `class="response client"`)
	assert.Contains(t, res.HTML, "Petstore Team")
	assert.Contains(t, res.HTML, "mailto:team@petstore.example.com")
}

func TestRender_Swagger2Body(t *testing.T) {
	doc := parseFixture(t, "petstore-2.0.json")

	b, err := build(doc, parser.NopLogger{})
	require.NoError(t, err)
	require.Len(t, b.groups, 1)

	post := b.groups[0].Operations[0]
	require.Equal(t, "post", post.Method)
	require.Len(t, post.Params, 1, "the body parameter is not listed as a parameter")
	assert.Equal(t, "X-Request-ID", post.Params[0].Name)

	require.NotNil(t, post.Body)
	assert.Equal(t, "Pet", post.Body.RefName)
	assert.True(t, post.Body.Required)

	require.Len(t, post.Responses, 2)
	assert.Equal(t, "Pet", post.Responses[0].RefName)
	assert.Equal(t, "client", post.Responses[1].Class)

	get := b.groups[0].Operations[1]
	assert.Nil(t, get.Body)
	require.Len(t, get.Params, 1)
	assert.Equal(t, "array", get.Params[0].Type)

	require.Len(t, b.schemas, 1)
	assert.Equal(t, "Pet", b.schemas[0].Name)
}

func TestRender_EmptyPaths(t *testing.T) {
	doc := parseFixture(t, "empty-paths.yaml")

	res, err := RenderWithOptions(doc)
	require.NoError(t, err)
	assert.Empty(t, res.Index)
	assert.Contains(t, res.HTML, "No endpoints are documented.")

	data, err := res.Index.MarshalFile()
	require.NoError(t, err)
	assert.JSONEq(t, `{"index": []}`, string(data))
}

func TestRender_NoPathsKey(t *testing.T) {
	res, err := RenderWithOptions(&parser.Document{OpenAPI: "3.0.0"})
	require.NoError(t, err)
	assert.Empty(t, res.Index)
	assert.Contains(t, res.HTML, "<title>API Documentation</title>")
}

func TestRender_NilDocument(t *testing.T) {
	_, err := Render(nil, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrRender)
}

func TestRender_SearchDisabled(t *testing.T) {
	doc := parseFixture(t, "users.json")

	res, err := RenderWithOptions(doc, WithSearch(false))
	require.NoError(t, err)
	assert.False(t, res.SearchEnabled())
	assert.NotContains(t, res.HTML, `id="search-index"`)
	assert.NotContains(t, res.HTML, `id="search-input"`)

	out := t.TempDir()
	_, err = res.WriteFiles(out)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, SearchFile))
	assert.True(t, os.IsNotExist(err))
}

func TestRender_Toggles(t *testing.T) {
	doc := parseFixture(t, "users.json")

	t.Run("toc off", func(t *testing.T) {
		res, err := RenderWithOptions(doc, WithTOC(false))
		require.NoError(t, err)
		assert.NotContains(t, res.HTML, `class="toc"`)
	})

	t.Run("try it out on", func(t *testing.T) {
		res, err := RenderWithOptions(doc, WithTryItOut(true))
		require.NoError(t, err)
		assert.Contains(t, res.HTML, "try-it-out-button")
		assert.Contains(t, res.HTML, `id="try--users-get"`)
	})

	t.Run("try it out off by default", func(t *testing.T) {
		res, err := RenderWithOptions(doc)
		require.NoError(t, err)
		assert.NotContains(t, res.HTML, "try-it-out-button")
	})

	t.Run("title override", func(t *testing.T) {
		res, err := RenderWithOptions(doc, WithTitle("Internal API"))
		require.NoError(t, err)
		assert.Contains(t, res.HTML, "<title>Internal API 1.0.0</title>")
	})
}

func TestRender_Themes(t *testing.T) {
	doc := parseFixture(t, "users.json")

	for _, name := range ThemeNames() {
		t.Run(name, func(t *testing.T) {
			res, err := RenderWithOptions(doc, WithTheme(name))
			require.NoError(t, err)
			assert.Equal(t, name, res.Theme)
			theme, ok := ResolveTheme(name)
			require.True(t, ok)
			assert.Contains(t, res.CSS, theme.Background)
			assert.Contains(t, res.HTML, `data-theme="`+name+`"`)
		})
	}

	t.Run("unknown theme falls back", func(t *testing.T) {
		res, err := RenderWithOptions(doc, WithTheme("solarized"))
		require.NoError(t, err)
		assert.Equal(t, DefaultTheme, res.Theme)
	})

	t.Run("method colours", func(t *testing.T) {
		res, err := RenderWithOptions(doc)
		require.NoError(t, err)
		assert.Contains(t, res.CSS, ".method-get { background: #16a34a; }")
		assert.Contains(t, res.CSS, ".method-delete { background: #dc2626; }")
	})
}

func TestRender_Assets(t *testing.T) {
	doc := parseFixture(t, "users.json")
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(logo, []byte("png"), 0o600))

	res, err := RenderWithOptions(doc,
		WithLogo(logo),
		WithFavicon("https://example.com/favicon.ico"),
	)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, `src="assets/logo.png"`)
	assert.Contains(t, res.HTML, `href="https://example.com/favicon.ico"`)
	require.Len(t, res.Assets, 1)

	out := filepath.Join(dir, "site")
	written, err := res.WriteFiles(out)
	require.NoError(t, err)
	assert.Contains(t, written, filepath.Join(out, "assets", "logo.png"))

	data, err := os.ReadFile(filepath.Join(out, "assets", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}

func TestRender_NonLocalAssetsReferencedAsIs(t *testing.T) {
	doc := parseFixture(t, "users.json")
	const pixel = "data:image/png;base64,iVBORw0KGgo="

	tests := []struct {
		name string
		opts []Option
		want []string
		omit []string
	}{
		{
			name: "data URI logo",
			opts: []Option{WithLogo(pixel)},
			want: []string{`src="` + pixel + `"`},
		},
		{
			name: "server path favicon",
			opts: []Option{WithFavicon("/static/favicon.ico")},
			want: []string{`href="/static/favicon.ico"`},
		},
		{
			name: "missing local file",
			opts: []Option{WithLogo("images/missing.png")},
			want: []string{`src="images/missing.png"`},
		},
		{
			name: "script scheme dropped",
			opts: []Option{WithLogo("javascript:alert(1)")},
			omit: []string{"javascript:", `class="logo"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := RenderWithOptions(doc, tt.opts...)
			require.NoError(t, err)
			assert.Empty(t, res.Assets)
			for _, w := range tt.want {
				assert.Contains(t, res.HTML, w)
			}
			for _, o := range tt.omit {
				assert.NotContains(t, res.HTML, o)
			}

			out := t.TempDir()
			_, err = res.WriteFiles(out)
			require.NoError(t, err)
			assert.FileExists(t, filepath.Join(out, IndexFile))
		})
	}
}

func TestRender_AssetCopyFailureWritesNoPage(t *testing.T) {
	doc := parseFixture(t, "users.json")
	logo := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(logo, []byte("png"), 0o600))

	res, err := RenderWithOptions(doc, WithLogo(logo))
	require.NoError(t, err)
	require.Len(t, res.Assets, 1)
	require.NoError(t, os.Remove(logo))

	out := t.TempDir()
	written, err := res.WriteFiles(out)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrRender)
	assert.Empty(t, written)
	assert.NoFileExists(t, filepath.Join(out, IndexFile))
}

func TestRender_ContactEmail(t *testing.T) {
	doc := &parser.Document{
		OpenAPI: "3.0.0",
		Info: &parser.Info{
			Title:   "Contact API",
			Contact: &parser.Contact{Name: "Ops", Email: "not an email"},
		},
	}

	res, err := RenderWithOptions(doc)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, `<span class="contact-email">not an email</span>`)
	assert.NotContains(t, res.HTML, "mailto:")
}

func TestRender_InlineIndexHasNoRawQuotes(t *testing.T) {
	src := "openapi: 3.0.0\n" +
		"info: {title: Q, version: '1'}\n" +
		"paths:\n" +
		"  /q:\n" +
		"    get:\n" +
		"      summary: '\"onclick=x'\n" +
		"      description: 'say \"hi\" then trail\\'\n" +
		"      responses: {}\n"
	parsed, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)

	res, err := RenderWithOptions(parsed.Document)
	require.NoError(t, err)
	require.Len(t, res.Index, 1)

	start := strings.Index(res.HTML, `<script type="application/json" id="search-index">`)
	require.GreaterOrEqual(t, start, 0)
	inline := res.HTML[start+len(`<script type="application/json" id="search-index">`):]
	body := inline[:strings.Index(inline, "</script>")]

	entry := res.Index[0]
	for _, field := range []string{entry.Title, entry.Description} {
		require.Contains(t, field, `"`)
		assert.NotContains(t, res.HTML, field)
	}

	var entries []SearchEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, `"onclick=x`, entries[0].Title)
	assert.Equal(t, `say "hi" then trail\`, entries[0].Description)
}

func TestRender_ParameterLocationLabels(t *testing.T) {
	src := "swagger: '2.0'\n" +
		"info: {title: Upload, version: '1'}\n" +
		"paths:\n" +
		"  /files:\n" +
		"    post:\n" +
		"      parameters:\n" +
		"        - {name: file, in: formData, type: file}\n" +
		"        - {name: dry_run, in: query, type: boolean}\n" +
		"      responses:\n" +
		"        '204': {description: stored}\n"
	parsed, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)

	res, err := RenderWithOptions(parsed.Document)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, "<td>Form data</td>")
	assert.Contains(t, res.HTML, "<td>Query</td>")
	assert.NotContains(t, res.HTML, "Formdata")
}

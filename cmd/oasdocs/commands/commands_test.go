package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdocs/config"
	"github.com/erraggy/oasdocs/internal/testutil"
	"github.com/erraggy/oasdocs/renderer"
)

var (
	usersSpec    = filepath.Join("..", "..", "..", "testdata", "users.json")
	petstoreSpec = filepath.Join("..", "..", "..", "testdata", "petstore-3.0.yaml")
	pathsOnly    = filepath.Join("..", "..", "..", "testdata", "paths-only.yaml")
)

// clearEnv unsets every OASDOCS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvOutput, config.EnvTheme, config.EnvTitle,
		config.EnvTryItOut, config.EnvSearch, config.EnvTOC,
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func readIndex(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, renderer.IndexFile))
	require.NoError(t, err)
	return string(data)
}

func TestExecute_GeneratesSite(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	code, stdout, stderr := run(t, "-o", dir, usersSpec)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "✓")
	assert.Contains(t, stdout, "1 operations, light theme")

	html := readIndex(t, dir)
	assert.Contains(t, html, `id="-users-get"`)
	assert.Contains(t, html, "List users")

	for _, name := range []string{renderer.SearchFile, renderer.StyleFile, renderer.ScriptFile} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(name)))
	}
}

func TestExecute_NoInput(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := run(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no input specification given")
	assert.Contains(t, stdout, "Usage:")
}

func TestExecute_MissingFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	code, _, stderr := run(t, "-o", dir, filepath.Join(dir, "nope.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗")
	assert.Contains(t, stderr, "input not found")
	assert.Contains(t, stderr, "hint:")
	assert.NoFileExists(t, filepath.Join(dir, renderer.IndexFile))
}

func TestExecute_SuggestsCommand(t *testing.T) {
	clearEnv(t)

	code, _, stderr := run(t, "-o", t.TempDir(), "valiate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `Did you mean the "validate" command?`)
}

func TestExecute_BatchStopsAtFirstFailure(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	code, stdout, stderr := run(t, "-o", dir, usersSpec, filepath.Join(dir, "missing.yaml"), petstoreSpec)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.yaml")

	// The first site stays; the third spec is never rendered.
	html := readIndex(t, dir)
	assert.Contains(t, html, "My API")
	assert.NotContains(t, html, "Swagger Petstore")
	assert.NotContains(t, stdout, "petstore-3.0.yaml")
}

func TestExecute_LastInputWins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	code, _, stderr := run(t, "-o", dir, usersSpec, petstoreSpec)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, readIndex(t, dir), "Swagger Petstore")
}

func TestExecute_NoSearch(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	code, _, stderr := run(t, "-o", dir, "--no-search", "--no-toc", usersSpec)
	require.Equal(t, 0, code, stderr)
	assert.NoFileExists(t, filepath.Join(dir, renderer.SearchFile))

	html := readIndex(t, dir)
	assert.NotContains(t, html, `id="search-input"`)
	assert.NotContains(t, html, `id="search-index"`)
	assert.NotContains(t, html, `class="toc"`)
}

func TestExecute_SettingsPrecedence(t *testing.T) {
	writeConfig := func(t *testing.T, out string) string {
		t.Helper()
		return testutil.WriteTempFile(t, "oasdocs.yaml",
			"output: "+strconv.Quote(out)+"\ntheme: dracula\ntitle: From Config\n")
	}

	t.Run("config file", func(t *testing.T) {
		clearEnv(t)
		out := t.TempDir()
		code, _, stderr := run(t, "--config", writeConfig(t, out), usersSpec)
		require.Equal(t, 0, code, stderr)
		html := readIndex(t, out)
		assert.Contains(t, html, `data-theme="dracula"`)
		assert.Contains(t, html, "<title>From Config 1.0.0</title>")
	})

	t.Run("environment overrides config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvTheme, "github")
		out := t.TempDir()
		code, _, stderr := run(t, "--config", writeConfig(t, out), usersSpec)
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, readIndex(t, out), `data-theme="github"`)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvTheme, "github")
		t.Setenv(config.EnvTitle, "From Env")
		out := t.TempDir()
		code, _, stderr := run(t, "--config", writeConfig(t, out), "-t", "dark", usersSpec)
		require.Equal(t, 0, code, stderr)
		html := readIndex(t, out)
		assert.Contains(t, html, `data-theme="dark"`)
		assert.Contains(t, html, "<title>From Env 1.0.0</title>")
	})

	t.Run("unchanged flag default does not override", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvOutput, t.TempDir())
		out := os.Getenv(config.EnvOutput)
		code, _, stderr := run(t, usersSpec)
		require.Equal(t, 0, code, stderr)
		assert.FileExists(t, filepath.Join(out, renderer.IndexFile))
	})
}

func TestExecute_BadConfig(t *testing.T) {
	clearEnv(t)
	path := testutil.WriteTempFile(t, "oasdocs.yaml", "theme: [unclosed\n")

	code, _, stderr := run(t, "--config", path, usersSpec)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗")
}

func TestExecute_UnknownThemeFallsBack(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	code, stdout, stderr := run(t, "-o", dir, "-t", "solarized", usersSpec)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "light theme")
	assert.Contains(t, stderr, "unknown theme")
	assert.Contains(t, readIndex(t, dir), `data-theme="light"`)
}

func TestValidateCommand(t *testing.T) {
	clearEnv(t)

	t.Run("valid", func(t *testing.T) {
		code, stdout, stderr := run(t, "validate", usersSpec)
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "is valid (3.0.0)")
	})

	t.Run("invalid", func(t *testing.T) {
		code, stdout, stderr := run(t, "validate", usersSpec, pathsOnly)
		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "missing required field: openapi or swagger")
		assert.Contains(t, stdout, "missing required field: info")
		assert.Contains(t, stderr, "1 of 2 document(s) invalid")
	})

	t.Run("requires an argument", func(t *testing.T) {
		code, _, stderr := run(t, "validate")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "requires at least 1 arg")
	})
}

func TestVersion(t *testing.T) {
	clearEnv(t)

	code, stdout, _ := run(t, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "oasdocs dev\n")
	assert.Contains(t, stdout, "commit: unknown")

	code, stdout, _ = run(t, "--version")
	require.Equal(t, 0, code)
	assert.Equal(t, "oasdocs dev\n", stdout)
}

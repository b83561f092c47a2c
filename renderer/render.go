package renderer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdocs"
	"github.com/erraggy/oasdocs/internal/fileutil"
	"github.com/erraggy/oasdocs/oaserrors"
	"github.com/erraggy/oasdocs/parser"
)

// Output file names, relative to the output directory.
const (
	IndexFile  = "index.html"
	SearchFile = "search.json"
	AssetsDir  = "assets"
	StyleFile  = "assets/style.css"
	ScriptFile = "assets/app.js"
)

// Asset is a local file copied into the assets directory.
type Asset struct {
	// Source is the path on disk
	Source string
	// Name is the path relative to the output directory
	Name string
}

// Result holds everything produced for one document.
type Result struct {
	// HTML is the complete index.html page
	HTML string
	// Index lists every operation in document order
	Index SearchIndex
	// CSS is the themed stylesheet
	CSS string
	// JS is the page behaviour script
	JS string
	// Assets are local logo and favicon files to copy
	Assets []Asset
	// Theme is the name of the theme actually applied
	Theme string

	search bool
}

// RenderWithOptions renders doc with DefaultOptions adjusted by opts.
func RenderWithOptions(doc *parser.Document, opts ...Option) (*Result, error) {
	return Render(doc, NewOptions(opts...))
}

// Render turns doc into a page, a search index, a stylesheet and a script.
// It never consults validation results: a document without paths renders
// with an empty endpoint list.
func Render(doc *parser.Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, &oaserrors.RenderError{Stage: "model", Cause: fmt.Errorf("nil document")}
	}
	log := parser.OrNop(opts.Logger)

	theme, known := ResolveTheme(opts.Theme)
	if !known && opts.Theme != "" {
		log.Warn("unknown theme, using default", "theme", opts.Theme, "default", DefaultTheme)
	}

	b, err := build(doc, log)
	if err != nil {
		return nil, &oaserrors.RenderError{Stage: "model", Cause: err}
	}

	res := &Result{
		Index:  b.index,
		JS:     appJS,
		Theme:  theme.Name,
		search: opts.Search,
	}

	page := pageView{
		Theme:     theme.Name,
		Generator: "oasdocs " + oasdocs.Version(),
		TOC:       opts.TOC,
		Search:    opts.Search,
		TryItOut:  opts.TryItOut,
		Groups:    b.groups,
		Schemas:   b.schemas,
	}
	if info := doc.Info; info != nil {
		page.Title = info.Title
		page.Version = info.Version
		page.Description = info.Description
		page.Contact = newContactView(info.Contact)
	}
	if opts.Title != "" {
		page.Title = opts.Title
	}
	if page.Title == "" {
		page.Title = "API Documentation"
	}
	page.Logo = res.addAsset(opts.Logo, log)
	page.Favicon = res.addAsset(opts.Favicon, log)

	if opts.Search {
		js, err := b.index.inlineJSON()
		if err != nil {
			return nil, &oaserrors.RenderError{Stage: "search", Cause: err}
		}
		page.IndexJSON = htmltemplate.JS(js) //nolint:gosec // json.Marshal output with <, >, & and ' escaped
	}

	opCount := len(b.index)
	buf := getPageBuffer(opCount)
	defer putPageBuffer(buf, opCount)
	if err := pageTemplate.Execute(buf, page); err != nil {
		return nil, &oaserrors.RenderError{Stage: "html", Cause: err}
	}
	res.HTML = buf.String()

	var css bytes.Buffer
	if err := styleTemplate.Execute(&css, newStyleView(theme)); err != nil {
		return nil, &oaserrors.RenderError{Stage: "css", Cause: err}
	}
	res.CSS = css.String()

	log.Debug("rendered document",
		"paths", len(b.groups),
		"operations", opCount,
		"schemas", len(b.schemas),
		"theme", theme.Name,
	)
	return res, nil
}

// addAsset returns the page reference for a logo or favicon. A regular file
// on disk is recorded for copying and referenced under assets/. URLs,
// data:image URIs and paths that are not local files are referenced as-is;
// any other URL scheme is dropped.
func (r *Result) addAsset(ref string, log parser.Logger) htmltemplate.URL {
	if ref == "" {
		return ""
	}
	if info, err := os.Stat(ref); err == nil && info.Mode().IsRegular() {
		name := AssetsDir + "/" + filepath.Base(ref)
		r.Assets = append(r.Assets, Asset{Source: ref, Name: name})
		return htmltemplate.URL(name) //nolint:gosec // fixed relative path
	}
	if !isAssetURL(ref) {
		log.Warn("unsupported asset reference, omitting it", "ref", ref)
		return ""
	}
	log.Debug("asset is not a local file, referencing as-is", "ref", ref)
	return htmltemplate.URL(ref) //nolint:gosec // scheme checked by isAssetURL
}

// isAssetURL accepts http(s), protocol-relative, data:image and scheme-less
// references.
func isAssetURL(s string) bool {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "data:image/") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme == ""
}

// WriteFiles writes the site into outDir, creating it if needed:
// index.html, search.json (only when search is enabled), assets/style.css,
// assets/app.js and any local logo or favicon. Existing files are overwritten.
func (r *Result) WriteFiles(outDir string) ([]string, error) {
	files := []struct {
		name    string
		content []byte
	}{
		{IndexFile, []byte(r.HTML)},
		{StyleFile, []byte(r.CSS)},
		{ScriptFile, []byte(r.JS)},
	}
	if r.search {
		data, err := r.Index.MarshalFile()
		if err != nil {
			return nil, &oaserrors.RenderError{Stage: "search", Path: SearchFile, Cause: err}
		}
		files = append(files, struct {
			name    string
			content []byte
		}{SearchFile, data})
	}

	// Assets go first so a failed copy leaves no page pointing at them.
	written := make([]string, 0, len(files)+len(r.Assets))
	for _, a := range r.Assets {
		path := filepath.Join(outDir, filepath.FromSlash(a.Name))
		if err := fileutil.CopyFile(a.Source, path); err != nil {
			return written, &oaserrors.RenderError{Stage: "asset", Path: path, Cause: err}
		}
		written = append(written, path)
	}
	for _, f := range files {
		path := filepath.Join(outDir, filepath.FromSlash(f.name))
		if err := fileutil.WriteFile(path, f.content); err != nil {
			return written, &oaserrors.RenderError{Stage: "write", Path: path, Cause: err}
		}
		written = append(written, path)
	}
	return written, nil
}

// SearchEnabled reports whether search.json is part of the output.
func (r *Result) SearchEnabled() bool {
	return r.search
}

// BuildIndex returns the search index for doc without rendering the page.
func BuildIndex(doc *parser.Document, log parser.Logger) (SearchIndex, error) {
	if doc == nil {
		return nil, &oaserrors.RenderError{Stage: "model", Cause: fmt.Errorf("nil document")}
	}
	b, err := build(doc, parser.OrNop(log))
	if err != nil {
		return nil, &oaserrors.RenderError{Stage: "model", Cause: err}
	}
	return b.index, nil
}

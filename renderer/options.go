package renderer

import "github.com/erraggy/oasdocs/parser"

// Options controls how a document is rendered.
type Options struct {
	// Theme selects the colour table. Unknown names fall back to DefaultTheme.
	Theme string
	// Logo is a local file path or URL shown at the top of the sidebar.
	Logo string
	// Favicon is a local file path or URL used as the page icon.
	Favicon string
	// TryItOut adds a placeholder "Try it out" panel to every operation.
	TryItOut bool
	// Search adds the search box and writes search.json.
	Search bool
	// TOC adds the endpoint table of contents to the sidebar.
	TOC bool
	// Title overrides info.title.
	Title string
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// DefaultOptions returns the options used when no flag or config overrides them:
// light theme, search and table of contents enabled, Try It Out disabled.
func DefaultOptions() Options {
	return Options{
		Theme:  DefaultTheme,
		Search: true,
		TOC:    true,
	}
}

// Option is a function that adjusts Options.
type Option func(*Options)

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTheme selects a theme by name.
func WithTheme(name string) Option {
	return func(o *Options) { o.Theme = name }
}

// WithLogo sets the logo path or URL.
func WithLogo(logo string) Option {
	return func(o *Options) { o.Logo = logo }
}

// WithFavicon sets the favicon path or URL.
func WithFavicon(favicon string) Option {
	return func(o *Options) { o.Favicon = favicon }
}

// WithTryItOut enables or disables the Try It Out placeholder.
// Default: false
func WithTryItOut(enabled bool) Option {
	return func(o *Options) { o.TryItOut = enabled }
}

// WithSearch enables or disables search.
// Default: true
func WithSearch(enabled bool) Option {
	return func(o *Options) { o.Search = enabled }
}

// WithTOC enables or disables the table of contents.
// Default: true
func WithTOC(enabled bool) Option {
	return func(o *Options) { o.TOC = enabled }
}

// WithTitle overrides the page title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithLogger sets the structured logger.
func WithLogger(l parser.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

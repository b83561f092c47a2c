package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/erraggy/oasdocs/config"
	"github.com/erraggy/oasdocs/parser"
	"github.com/erraggy/oasdocs/renderer"
)

// renderFlags holds the flags shared by the root and serve commands.
type renderFlags struct {
	configPath string
	output     string
	theme      string
	logo       string
	favicon    string
	title      string
	tryItOut   bool
	noSearch   bool
	noTOC      bool
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "config file (YAML or JSON)")
	fs.StringVarP(&f.output, "output", "o", config.DefaultOutput, "output directory")
	fs.StringVarP(&f.theme, "theme", "t", renderer.DefaultTheme, "theme: light, dark, dracula or github")
	fs.StringVar(&f.logo, "logo", "", "logo file path or URL")
	fs.StringVar(&f.favicon, "favicon", "", "favicon file path or URL")
	fs.StringVar(&f.title, "title", "", "page title (defaults to info.title)")
	fs.BoolVar(&f.tryItOut, "try-it-out", false, "add a Try It Out placeholder to each operation")
	fs.BoolVar(&f.noSearch, "no-search", false, "omit the search box and search.json")
	fs.BoolVar(&f.noTOC, "no-toc", false, "omit the table of contents")
}

// settings merges defaults, the config file, the environment and the flags
// the user actually set, in that order. Positional args replace any inputs
// named in the config file.
func (f *renderFlags) settings(cmd *cobra.Command, args []string, log parser.Logger) (config.Settings, error) {
	s := config.Defaults()

	if f.configPath != "" {
		cfg, err := config.Load(f.configPath, log)
		if err != nil {
			return s, err
		}
		cfg.Apply(&s)
	}
	config.FromEnv(log).Apply(&s)

	fs := cmd.Flags()
	if fs.Changed("output") {
		s.Output = f.output
	}
	if fs.Changed("theme") {
		s.Render.Theme = f.theme
	}
	if fs.Changed("logo") {
		s.Render.Logo = f.logo
	}
	if fs.Changed("favicon") {
		s.Render.Favicon = f.favicon
	}
	if fs.Changed("title") {
		s.Render.Title = f.title
	}
	if fs.Changed("try-it-out") {
		s.Render.TryItOut = f.tryItOut
	}
	if fs.Changed("no-search") {
		s.Render.Search = !f.noSearch
	}
	if fs.Changed("no-toc") {
		s.Render.TOC = !f.noTOC
	}

	if len(args) > 0 {
		s.Inputs = args
	}
	s.Render.Logger = log
	return s, nil
}

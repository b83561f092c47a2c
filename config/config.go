package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdocs/oaserrors"
	"github.com/erraggy/oasdocs/parser"
	"github.com/erraggy/oasdocs/renderer"
)

// DefaultOutput is the output directory used when nothing else sets one.
const DefaultOutput = "docs"

// Config is the decoded config file.
//
//	input: openapi.yaml
//	output: site
//	theme: dracula
//	options:
//	  logo: ./logo.png
//	  tryItOut: true
//	  search: true
//	  toc: false
type Config struct {
	// Input is one spec path or a list of them
	Input StringList `yaml:"input"`
	// Output is the output directory
	Output string `yaml:"output"`
	Theme  string `yaml:"theme"`
	Title  string `yaml:"title"`

	Options Options `yaml:"options"`
}

// Options is the "options" block of the config file. Boolean fields are
// pointers so an absent key leaves the lower-precedence value in place.
type Options struct {
	Logo     string `yaml:"logo"`
	Favicon  string `yaml:"favicon"`
	TryItOut *bool  `yaml:"tryItOut"`
	Search   *bool  `yaml:"search"`
	TOC      *bool  `yaml:"toc"`
	// CodeSamples is accepted for compatibility and not used
	CodeSamples any `yaml:"codeSamples"`
}

// StringList decodes from either a single scalar or a sequence of scalars.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" || value.Value == "" {
			*l = nil
			return nil
		}
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: input must be a string or a list of strings", value.Line)
	}
}

// Load reads and decodes the config file at path. YAML and JSON are both
// accepted; JSON is decoded as YAML.
func Load(path string, log parser.Logger) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: config path is user-supplied by design
	if err != nil {
		ie := &oaserrors.InputError{Path: path, Cause: err}
		if errors.Is(err, fs.ErrNotExist) {
			ie.NotFound = true
			ie.Hint = "check the --config path"
		}
		return nil, ie
	}
	cfg, err := Parse(data, log)
	if err != nil {
		var ce *oaserrors.ConfigError
		if errors.As(err, &ce) {
			ce.Value = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes config file content.
func Parse(data []byte, log parser.Logger) (*Config, error) {
	log = parser.OrNop(log)
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &oaserrors.ConfigError{
			Option:  "config",
			Message: "failed to decode config file",
			Cause:   err,
		}
	}
	if cfg.Options.CodeSamples != nil {
		log.Debug("config option is not supported and was ignored", "option", "codeSamples")
	}
	return cfg, nil
}

// Apply copies every field set in the config file onto s.
func (c *Config) Apply(s *Settings) {
	if c == nil {
		return
	}
	if len(c.Input) > 0 {
		s.Inputs = append([]string(nil), c.Input...)
	}
	setString(&s.Output, c.Output)
	setString(&s.Render.Theme, c.Theme)
	setString(&s.Render.Title, c.Title)
	setString(&s.Render.Logo, c.Options.Logo)
	setString(&s.Render.Favicon, c.Options.Favicon)
	setBool(&s.Render.TryItOut, c.Options.TryItOut)
	setBool(&s.Render.Search, c.Options.Search)
	setBool(&s.Render.TOC, c.Options.TOC)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

package config

import "github.com/erraggy/oasdocs/renderer"

// Settings is the merged result of defaults, the config file, the
// environment and command-line flags, applied in that order.
type Settings struct {
	Inputs []string
	Output string
	Render renderer.Options
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Output: DefaultOutput,
		Render: renderer.DefaultOptions(),
	}
}

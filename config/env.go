package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/erraggy/oasdocs/parser"
)

// Environment variable names.
const (
	EnvOutput   = "OASDOCS_OUTPUT"
	EnvTheme    = "OASDOCS_THEME"
	EnvTryItOut = "OASDOCS_TRY_IT_OUT"
	EnvSearch   = "OASDOCS_SEARCH"
	EnvTOC      = "OASDOCS_TOC"
	EnvTitle    = "OASDOCS_TITLE"
)

// Env holds the settings read from OASDOCS_* variables. Unset variables
// leave their field empty or nil.
type Env struct {
	Output   string
	Theme    string
	Title    string
	TryItOut *bool
	Search   *bool
	TOC      *bool
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error. Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// FromEnv reads OASDOCS_* variables. Invalid booleans log a warning and are
// treated as unset.
func FromEnv(log parser.Logger) Env {
	log = parser.OrNop(log)
	return Env{
		Output:   os.Getenv(EnvOutput),
		Theme:    os.Getenv(EnvTheme),
		Title:    os.Getenv(EnvTitle),
		TryItOut: envBool(log, EnvTryItOut),
		Search:   envBool(log, EnvSearch),
		TOC:      envBool(log, EnvTOC),
	}
}

// Apply copies every variable that was set onto s.
func (e Env) Apply(s *Settings) {
	setString(&s.Output, e.Output)
	setString(&s.Render.Theme, e.Theme)
	setString(&s.Render.Title, e.Title)
	setBool(&s.Render.TryItOut, e.TryItOut)
	setBool(&s.Render.Search, e.Search)
	setBool(&s.Render.TOC, e.TOC)
}

func envBool(log parser.Logger, key string) *bool {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn("invalid bool env var, ignoring", "key", key, "value", v)
		return nil
	}
	return &b
}

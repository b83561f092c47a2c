// Package config loads oasdocs settings from a config file and OASDOCS_*
// environment variables, and merges them with the built-in defaults.
//
// Precedence, lowest first: [Defaults], the config file ([Config.Apply]), the
// environment ([Env.Apply]), then explicit command-line flags.
package config

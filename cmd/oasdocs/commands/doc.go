// Package commands provides the cobra command tree for the oasdocs CLI:
// the root command renders documentation sites, and the validate, serve,
// mcp and version subcommands cover checking, previewing and tool access.
package commands

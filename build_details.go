package oasdocs

import "fmt"

// Set via ldflags at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// UserAgent returns the User-Agent string used by the preview server and MCP
// server implementation info.
func UserAgent() string {
	return fmt.Sprintf("oasdocs/%s", version)
}

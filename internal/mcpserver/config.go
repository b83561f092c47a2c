package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasdocs/renderer"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64

	// Search tool defaults.
	SearchLimit int
	MaxLimit    int

	// Validate tool defaults.
	ValidateStrict bool

	// Generate tool defaults.
	Theme string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASDOCS_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASDOCS_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASDOCS_MCP_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASDOCS_MCP_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OASDOCS_MCP_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASDOCS_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      envInt64("OASDOCS_MCP_MAX_INLINE_SIZE", 10*1024*1024),
		SearchLimit:        envInt("OASDOCS_MCP_SEARCH_LIMIT", renderer.DefaultSearchLimit),
		MaxLimit:           envInt("OASDOCS_MCP_MAX_LIMIT", 100),
		ValidateStrict:     envBool("OASDOCS_MCP_VALIDATE_STRICT", false),
		Theme:              envTheme("OASDOCS_MCP_THEME"),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int64 env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

// envTheme returns the named theme, or DefaultTheme when unset or unknown.
func envTheme(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return renderer.DefaultTheme
	}
	theme, ok := renderer.ResolveTheme(v)
	if !ok {
		slog.Warn("unknown theme env var, using default", "key", key, "value", v, "default", renderer.DefaultTheme) //nolint:gosec // G706: values are structured log fields, not format strings
	}
	return theme.Name
}

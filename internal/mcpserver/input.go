package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdocs/internal/options"
	"github.com/erraggy/oasdocs/parser"
)

// specInput is the document argument shared by every tool: a path on disk
// or inline JSON/YAML, never both.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// key reports the session cache key for s. A file that cannot be
// stat'ed is not cached so the parse reports the real error.
func (s specInput) key() (cacheKey, bool) {
	if s.Content != "" {
		sum := sha256.Sum256([]byte(s.Content))
		return cacheKey{kind: "content", id: hex.EncodeToString(sum[:])}, true
	}
	abs, err := filepath.Abs(s.File)
	if err != nil {
		return cacheKey{}, false
	}
	info, err := os.Stat(abs)
	if err != nil {
		return cacheKey{}, false
	}
	return cacheKey{kind: "file", id: abs, stamp: info.ModTime().UnixNano()}, true
}

func (s specInput) parse() (*parser.ParseResult, error) {
	if s.File != "" {
		return parser.ParseWithOptions(parser.WithFilePath(s.File))
	}
	return parser.ParseWithOptions(parser.WithBytes([]byte(s.Content)))
}

// resolve checks the input and returns its parsed document, going through
// the session cache when caching is enabled.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if err := options.ValidateSingleInputSource(
		"mcpserver",
		[]string{"file", "content"},
		s.File != "", s.Content != "",
	); err != nil {
		return nil, err
	}
	if n := int64(len(s.Content)); n > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content is %d bytes, over the %d byte limit; pass a file or raise OASDOCS_MCP_MAX_INLINE_SIZE",
			n, cfg.MaxInlineSize)
	}
	if !cfg.CacheEnabled {
		return s.parse()
	}
	key, ok := s.key()
	if !ok {
		return s.parse()
	}
	ttl := cfg.CacheContentTTL
	if key.kind == "file" {
		ttl = cfg.CacheFileTTL
	}
	return sessionCache.load(key, ttl, s.parse)
}

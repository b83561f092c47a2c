package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was decoded as YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was decoded as JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown lets the parser choose a decoder
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseSourceFormat converts a user-supplied name into a SourceFormat.
// Empty and "auto" map to SourceFormatUnknown.
func ParseSourceFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto", string(SourceFormatUnknown):
		return SourceFormatUnknown, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	case "json":
		return SourceFormatJSON, nil
	default:
		return SourceFormatUnknown, fmt.Errorf("parser: unknown format %q (expected yaml or json)", name)
	}
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath picks the decoder for a file: ".yaml" and ".yml"
// decode as YAML, every other extension (or none) decodes as JSON.
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatJSON
	}
}

// detectFormatFromContent guesses the format of in-memory data.
// JSON starts with '{' or '[', anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

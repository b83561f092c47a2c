package renderer

import (
	"encoding/json"
	"strings"
)

// DefaultSearchLimit is the number of results shown by the search box.
const DefaultSearchLimit = 5

// SearchEntry is one (path, method) pair in the search index.
type SearchEntry struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// SearchIndex lists every operation in document order.
type SearchIndex []SearchEntry

// Search returns up to limit entries whose title or path contains query,
// ignoring case. A blank query matches nothing. A non-positive limit means
// DefaultSearchLimit. This mirrors the matching done by app.js.
func (idx SearchIndex) Search(query string, limit int) []SearchEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	var out []SearchEntry
	for _, e := range idx {
		if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Path), q) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

type searchFile struct {
	Index SearchIndex `json:"index"`
}

// MarshalFile returns the search.json content: {"index": [...]}.
func (idx SearchIndex) MarshalFile() ([]byte, error) {
	if idx == nil {
		idx = SearchIndex{}
	}
	data, err := json.MarshalIndent(searchFile{Index: idx}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// inlineJSON encodes the index for embedding in a <script> element. json
// already escapes <, > and &. Quotes and apostrophes inside string values
// become \u0022 and \u0027 so no document text appears verbatim.
func (idx SearchIndex) inlineJSON() (string, error) {
	if idx == nil {
		idx = SearchIndex{}
	}
	data, err := json.Marshal(idx)
	if err != nil {
		return "", err
	}
	return escapeQuotes(data), nil
}

// escapeQuotes rewrites escaped quotes and raw apostrophes inside the string
// literals of encoded JSON. Structural quotes are left alone.
func escapeQuotes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case !inString:
			if c == '"' {
				inString = true
			}
			b.WriteByte(c)
		case c == '\\' && i+1 < len(data):
			i++
			if data[i] == '"' {
				b.WriteString(`\u0022`)
			} else {
				b.WriteByte(c)
				b.WriteByte(data[i])
			}
		case c == '"':
			inString = false
			b.WriteByte(c)
		case c == '\'':
			b.WriteString(`\u0027`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
